package usecase

import (
	"context"

	"github.com/kleek-protocol/kleek-deploy/internal/domain/config"
)

// ShowConfigResult contains the result of showing configuration
type ShowConfigResult struct {
	Config     *config.LocalConfig
	ConfigPath string
	Exists     bool

	// Effective values after env vars, flags and defaults are applied
	ActiveNetwork  string
	Confirmations  uint64
	ConfirmTimeout string
}

// ShowConfig is a use case for showing configuration
type ShowConfig struct {
	runtime *config.RuntimeConfig
	store   LocalConfigRepository
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(cfg *config.RuntimeConfig, store LocalConfigRepository) *ShowConfig {
	return &ShowConfig{
		runtime: cfg,
		store:   store,
	}
}

// Run executes the show config use case
func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	localConfig, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &ShowConfigResult{
		Config:         localConfig,
		ConfigPath:     uc.store.GetPath(),
		Exists:         uc.store.Exists(),
		ActiveNetwork:  uc.runtime.NetworkName,
		Confirmations:  uc.runtime.Confirmations,
		ConfirmTimeout: uc.runtime.ConfirmTimeout.String(),
	}, nil
}
