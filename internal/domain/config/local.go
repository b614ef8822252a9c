package config

import (
	"slices"
	"strings"
)

// LocalConfig holds per-checkout overrides kept in .kleek/config.local.json.
// Keys match the viper keys so the file is read back as a config source.
type LocalConfig struct {
	Network        string `json:"network,omitempty"`
	Confirmations  uint64 `json:"confirmations,omitempty"`
	ConfirmTimeout string `json:"confirm_timeout,omitempty"`
}

// ConfigKey represents a configuration key
type ConfigKey string

const (
	ConfigKeyNetwork        ConfigKey = "network"
	ConfigKeyConfirmations  ConfigKey = "confirmations"
	ConfigKeyConfirmTimeout ConfigKey = "confirm_timeout"
)

// ValidConfigKeys returns all valid configuration keys
func ValidConfigKeys() []ConfigKey {
	return []ConfigKey{
		ConfigKeyNetwork,
		ConfigKeyConfirmations,
		ConfigKeyConfirmTimeout,
	}
}

// NormalizeConfigKey accepts the flag spelling (confirm-timeout) as well as the file key
func NormalizeConfigKey(key string) (ConfigKey, bool) {
	normalized := ConfigKey(strings.ReplaceAll(strings.ToLower(key), "-", "_"))
	return normalized, slices.Contains(ValidConfigKeys(), normalized)
}
