package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")

	// ErrNetworkMismatch is returned when the endpoint serves a different chain than configured
	ErrNetworkMismatch = errors.New("network mismatch")

	// ErrUnknownInterface is returned when no ABI is known for a contract name
	ErrUnknownInterface = errors.New("unknown contract interface")

	// ErrMissingBytecode is returned when a deploy is attempted from an ABI-only artifact
	ErrMissingBytecode = errors.New("artifact has no bytecode")

	// ErrNoSigner is returned when a state-changing call is attempted without a private key
	ErrNoSigner = errors.New("no signing key configured")
)

// ResolutionError is returned when a contract handle cannot be built locally.
type ResolutionError struct {
	Contract string
	Address  string
	Err      error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve %s at %q: %v", e.Contract, e.Address, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// EncodingRangeError is returned when a numeric parameter does not fit its declared width.
type EncodingRangeError struct {
	Field string
	Type  string
	Value string
}

func (e *EncodingRangeError) Error() string {
	return fmt.Sprintf("parameter %s: value %s out of range for %s", e.Field, e.Value, e.Type)
}

// EncodingFormatError is returned when a parameter value has the wrong shape for its type,
// or when a schema itself is malformed.
type EncodingFormatError struct {
	Field  string
	Type   string
	Reason string
}

func (e *EncodingFormatError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid parameters: %s", e.Reason)
	}
	return fmt.Sprintf("parameter %s (%s): %s", e.Field, e.Type, e.Reason)
}

// SubmissionError is returned when a transaction was rejected before reaching the pending pool.
type SubmissionError struct {
	Method string
	Err    error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("failed to submit %s: %v", e.Method, e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// RemoteCallError is returned when the contract reverted. Reason holds the decoded
// revert reason exactly as the contract produced it.
type RemoteCallError struct {
	Method string
	TxHash *common.Hash // nil when the revert was detected before broadcast
	Reason string
	Data   []byte
}

func (e *RemoteCallError) Error() string {
	if e.TxHash != nil {
		return fmt.Sprintf("%s reverted in tx %s: %s", e.Method, e.TxHash.Hex(), e.Reason)
	}
	return fmt.Sprintf("%s reverted: %s", e.Method, e.Reason)
}

// TimeoutError is returned when a submitted transaction was not confirmed in time.
// The transaction may still be mined later.
type TimeoutError struct {
	Method string
	TxHash common.Hash
	Waited time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s: no confirmation for tx %s after %s", e.Method, e.TxHash.Hex(), e.Waited)
}
