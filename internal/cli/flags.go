package cli

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"
)

// parseTimestamp accepts unix seconds or an RFC3339 date
func parseTimestamp(flag, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("--%s is required", flag)
	}
	var t time.Time
	if secs, err := strconv.ParseInt(value, 10, 64); err == nil {
		t = time.Unix(secs, 0).UTC()
	} else if t, err = time.Parse(time.RFC3339, value); err != nil {
		return time.Time{}, fmt.Errorf("--%s: %q is neither unix seconds nor RFC3339", flag, value)
	}
	// uint256 on chain
	if t.Unix() < 0 {
		return time.Time{}, fmt.Errorf("--%s: %q is before the unix epoch", flag, value)
	}
	return t, nil
}

// parseUint parses a non-negative decimal or 0x integer
func parseUint(flag, value string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(value), 0)
	if !ok || n.Sign() < 0 {
		return nil, fmt.Errorf("--%s: %q is not a non-negative integer", flag, value)
	}
	return n, nil
}
