package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/kleek-protocol/kleek-deploy/internal/domain"
	"github.com/kleek-protocol/kleek-deploy/internal/domain/config"
)

// contractAddress picks the address to use for a contract: an explicit override,
// then the kleek.toml [contracts] entry, then the latest recorded deployment on the
// active chain.
func contractAddress(ctx context.Context, cfg *config.RuntimeConfig, repo DeploymentRepository, contract, override, configured string) (string, error) {
	if override != "" {
		return override, nil
	}
	if configured != "" {
		return configured, nil
	}
	if cfg.Network == nil {
		return "", &domain.ResolutionError{Contract: contract, Err: fmt.Errorf("no address given and no network selected")}
	}

	latest, err := repo.Latest(ctx, cfg.Network.ChainID, contract)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", &domain.ResolutionError{
				Contract: contract,
				Err:      fmt.Errorf("no address given, none configured and %w", err),
			}
		}
		return "", err
	}
	return latest.Address.Hex(), nil
}

// kleekAddress resolves the Kleek proxy address
func kleekAddress(ctx context.Context, cfg *config.RuntimeConfig, repo DeploymentRepository, override string) (string, error) {
	return contractAddress(ctx, cfg, repo, domain.ContractKleek, override, cfg.Project.Contracts.Kleek)
}

// activeNetwork returns the network state-changing commands act on. It is nil
// when the network name is empty or the command tolerated an unresolvable one.
func activeNetwork(cfg *config.RuntimeConfig, contract string) (*config.Network, error) {
	if cfg.Network == nil {
		return nil, &domain.ResolutionError{Contract: contract, Err: fmt.Errorf("no network selected (use --network)")}
	}
	return cfg.Network, nil
}
