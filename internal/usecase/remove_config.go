package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/kleek-protocol/kleek-deploy/internal/domain/config"
)

// RemoveConfigParams contains parameters for removing configuration
type RemoveConfigParams struct {
	Key string
}

// RemoveConfigResult contains the result of removing configuration
type RemoveConfigResult struct {
	UpdatedConfig *config.LocalConfig
	ConfigPath    string
	Key           config.ConfigKey
	RemovedValue  string
}

// RemoveConfig is a use case for removing configuration values
type RemoveConfig struct {
	store LocalConfigRepository
}

// NewRemoveConfig creates a new RemoveConfig use case
func NewRemoveConfig(store LocalConfigRepository) *RemoveConfig {
	return &RemoveConfig{
		store: store,
	}
}

// Run clears the key so the default (or env/flag value) applies again
func (uc *RemoveConfig) Run(ctx context.Context, params RemoveConfigParams) (*RemoveConfigResult, error) {
	if !uc.store.Exists() {
		return nil, fmt.Errorf("no config file found at %s", uc.store.GetPath())
	}

	key, err := parseConfigKey(params.Key)
	if err != nil {
		return nil, err
	}

	localConfig, err := uc.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var removedValue string
	switch key {
	case config.ConfigKeyNetwork:
		removedValue = localConfig.Network
		localConfig.Network = ""
	case config.ConfigKeyConfirmations:
		if localConfig.Confirmations > 0 {
			removedValue = strconv.FormatUint(localConfig.Confirmations, 10)
		}
		localConfig.Confirmations = 0
	case config.ConfigKeyConfirmTimeout:
		removedValue = localConfig.ConfirmTimeout
		localConfig.ConfirmTimeout = ""
	}

	if err := uc.store.Save(ctx, localConfig); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	return &RemoveConfigResult{
		UpdatedConfig: localConfig,
		ConfigPath:    uc.store.GetPath(),
		Key:           key,
		RemovedValue:  removedValue,
	}, nil
}
