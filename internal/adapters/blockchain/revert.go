package blockchain

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/kleek-protocol/kleek-deploy/internal/adapters/abi/bindings"
)

const revertMessage = "execution reverted"

// Panic(uint256), raised by the compiler for assertion failures and arithmetic errors
var (
	panicSelector = crypto.Keccak256([]byte("Panic(uint256)"))[:4]
	panicArgs     = abi.Arguments{{Type: mustType("uint256")}}
)

func mustType(t string) abi.Type {
	typ, err := abi.NewType(t, "", nil)
	if err != nil {
		panic(err)
	}
	return typ
}

// revertData pulls the raw revert payload out of a JSON-RPC error, if the node sent one
func revertData(err error) []byte {
	var dataErr rpc.DataError
	if !errors.As(err, &dataErr) {
		return nil
	}
	switch data := dataErr.ErrorData().(type) {
	case string:
		decoded, decodeErr := hexutil.Decode(data)
		if decodeErr != nil {
			return nil
		}
		return decoded
	case []byte:
		return data
	}
	return nil
}

// isRevert reports whether a node error means the EVM reverted, as opposed to the
// request being rejected
func isRevert(err error) bool {
	if err == nil {
		return false
	}
	if len(revertData(err)) > 0 {
		return true
	}
	return strings.Contains(err.Error(), revertMessage)
}

// revertReason renders a revert the way the contract produced it. Panic(uint256) and
// Error(string) come first, then custom errors declared in the contract ABI, then the
// errors of the bundled Kleek binding, then raw hex.
func revertReason(contractABI *abi.ABI, data []byte, err error) string {
	if len(data) == 0 {
		if err != nil {
			if _, tail, found := strings.Cut(err.Error(), revertMessage+": "); found {
				return tail
			}
		}
		return revertMessage
	}

	if len(data) >= 4 && bytes.Equal(data[:4], panicSelector) {
		if values, unpackErr := panicArgs.Unpack(data[4:]); unpackErr == nil {
			return fmt.Sprintf("Panic(%#x)", values[0])
		}
	}

	if reason, unpackErr := abi.UnpackRevert(data); unpackErr == nil {
		return reason
	}

	if contractABI != nil && len(data) >= 4 {
		if reason, ok := customError(contractABI, data); ok {
			return reason
		}
	}

	if reason, ok := knownError(data); ok {
		return reason
	}

	return hexutil.Encode(data)
}

// knownError covers reverts raised by a contract other than the one called, such as
// Kleek.initialize failing inside the ERC1967Proxy constructor
func knownError(data []byte) (string, bool) {
	decoded, err := bindings.UnpackKnownError(data)
	if err != nil {
		return "", false
	}
	switch e := decoded.(type) {
	case *bindings.KleekOwnableUnauthorizedAccount:
		return fmt.Sprintf("OwnableUnauthorizedAccount(%s)", e.Account.Hex()), true
	case *bindings.KleekInvalidInitialization:
		return "InvalidInitialization()", true
	}
	return "", false
}

func customError(contractABI *abi.ABI, data []byte) (string, bool) {
	names := make([]string, 0, len(contractABI.Errors))
	for name := range contractABI.Errors {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		abiErr := contractABI.Errors[name]
		if !bytes.Equal(abiErr.ID[:4], data[:4]) {
			continue
		}
		values, err := abiErr.Inputs.Unpack(data[4:])
		if err != nil {
			return "", false
		}
		args := make([]string, len(values))
		for i, v := range values {
			args[i] = fmt.Sprint(v)
		}
		return fmt.Sprintf("%s(%s)", abiErr.Name, strings.Join(args, ", ")), true
	}
	return "", false
}
