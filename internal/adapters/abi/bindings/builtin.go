package bindings

import (
	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/kleek-protocol/kleek-deploy/internal/domain"
)

// Builtin returns the bundled interface for a well-known contract name, or nil
// when the name has no bundled binding.
func Builtin(name string) *abi.ABI {
	switch name {
	case domain.ContractKleek:
		return NewKleek().ABI()
	case domain.ContractShareDeposit:
		return NewShareDeposit().ABI()
	case domain.ContractERC1967Proxy:
		return NewERC1967Proxy().ABI()
	default:
		return nil
	}
}

// UnpackKnownError decodes revert data against the custom errors of the bundled
// contracts. A proxy deploy that fails inside Kleek.initialize reverts with Kleek's
// errors even though the transaction targets ERC1967Proxy.
func UnpackKnownError(raw []byte) (any, error) {
	return NewKleek().UnpackError(raw)
}
