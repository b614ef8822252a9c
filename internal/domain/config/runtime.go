package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string `validate:"required"`
	DataDir     string `validate:"required"`

	// NetworkName is the selected network; Network is its resolved form, nil for
	// commands that never dial
	NetworkName string
	Network     *Network

	// PrivateKey signs state-changing calls. It is parsed when a transaction is
	// signed, so read-only commands run with a malformed key.
	PrivateKey string

	// EtherscanAPIKey is handed to the verification tool. Never logged.
	EtherscanAPIKey string

	// Execution settings
	Debug          bool
	NonInteractive bool
	Timeout        time.Duration
	ConfirmTimeout time.Duration `validate:"gt=0"`
	Confirmations  uint64        `validate:"gte=1"`

	// Resolved project configuration
	Project *ProjectConfig `validate:"required"`
}

// Network represents network configuration
type Network struct {
	Name        string `json:"name" validate:"required"`
	ChainID     uint64 `json:"chainId" validate:"gt=0"`
	RPCURL      string `json:"rpcUrl" validate:"required,url"`
	ExplorerURL string `json:"explorerUrl,omitempty" validate:"omitempty,url"`
	VerifierURL string `json:"verifierUrl,omitempty" validate:"omitempty,url"`
}

// AddressURL returns the explorer page for a contract's code, or "" when no explorer is known
func (n *Network) AddressURL(address string) string {
	if n == nil || n.ExplorerURL == "" {
		return ""
	}
	return n.ExplorerURL + "/address/" + address + "#code"
}

// TxURL returns the explorer link for a transaction, or "" when no explorer is known
func (n *Network) TxURL(txHash string) string {
	if n == nil || n.ExplorerURL == "" {
		return ""
	}
	return n.ExplorerURL + "/tx/" + txHash
}
