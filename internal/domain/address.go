package domain

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ParseAddress parses a strict 0x-prefixed, 40 hex digit address.
// Mixed-case input must carry a valid EIP-55 checksum.
func ParseAddress(s string) (common.Address, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return common.Address{}, fmt.Errorf("%w: %q is missing the 0x prefix", ErrInvalidAddress, s)
	}
	digits := s[2:]
	if len(digits) != 2*common.AddressLength {
		return common.Address{}, fmt.Errorf("%w: %q has %d hex digits, want %d", ErrInvalidAddress, s, len(digits), 2*common.AddressLength)
	}
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q is not hex", ErrInvalidAddress, s)
	}

	addr := common.HexToAddress(s)
	if digits != strings.ToLower(digits) && digits != strings.ToUpper(digits) && addr.Hex()[2:] != digits {
		return common.Address{}, fmt.Errorf("%w: %q fails checksum validation", ErrInvalidAddress, s)
	}
	return addr, nil
}
