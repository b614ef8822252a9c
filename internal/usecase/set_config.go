package usecase

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/kleek-protocol/kleek-deploy/internal/domain/config"
)

// SetConfigParams contains parameters for setting configuration
type SetConfigParams struct {
	Key   string
	Value string
}

// SetConfigResult contains the result of setting configuration
type SetConfigResult struct {
	UpdatedConfig *config.LocalConfig
	ConfigPath    string
	Key           config.ConfigKey
	Value         string
}

// SetConfig is a use case for setting configuration values
type SetConfig struct {
	store    LocalConfigRepository
	networks NetworkResolver
}

// NewSetConfig creates a new SetConfig use case
func NewSetConfig(store LocalConfigRepository, networks NetworkResolver) *SetConfig {
	return &SetConfig{
		store:    store,
		networks: networks,
	}
}

// Run validates the value for its key and saves it
func (uc *SetConfig) Run(ctx context.Context, params SetConfigParams) (*SetConfigResult, error) {
	key, err := parseConfigKey(params.Key)
	if err != nil {
		return nil, err
	}

	localConfig, err := uc.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	switch key {
	case config.ConfigKeyNetwork:
		names := uc.networks.GetNetworks(ctx)
		if !slices.Contains(names, params.Value) {
			return nil, fmt.Errorf("unknown network %q (available: %s)", params.Value, strings.Join(names, ", "))
		}
		localConfig.Network = params.Value
	case config.ConfigKeyConfirmations:
		n, err := strconv.ParseUint(params.Value, 10, 64)
		if err != nil || n == 0 {
			return nil, fmt.Errorf("confirmations must be a positive integer, got %q", params.Value)
		}
		localConfig.Confirmations = n
	case config.ConfigKeyConfirmTimeout:
		d, err := time.ParseDuration(params.Value)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("confirm_timeout must be a positive duration like 90s or 5m, got %q", params.Value)
		}
		localConfig.ConfirmTimeout = d.String()
	}

	if err := uc.store.Save(ctx, localConfig); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	return &SetConfigResult{
		UpdatedConfig: localConfig,
		ConfigPath:    uc.store.GetPath(),
		Key:           key,
		Value:         params.Value,
	}, nil
}

func parseConfigKey(raw string) (config.ConfigKey, error) {
	key, ok := config.NormalizeConfigKey(raw)
	if !ok {
		valid := lo.Map(config.ValidConfigKeys(), func(k config.ConfigKey, _ int) string { return string(k) })
		return "", fmt.Errorf("unknown config key: %s\nAvailable keys: %s", raw, strings.Join(valid, ", "))
	}
	return key, nil
}
