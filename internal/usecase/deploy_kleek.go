package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/kleek-protocol/kleek-deploy/internal/domain"
	"github.com/kleek-protocol/kleek-deploy/internal/domain/config"
)

// DeployKleekParams contains parameters for deploying Kleek behind an ERC-1967 proxy
type DeployKleekParams struct {
	// Owner is passed to initialize. Defaults to the deploying account.
	Owner string
}

// DeployKleekResult contains both recorded deployments
type DeployKleekResult struct {
	Proxy          *domain.Deployment
	Implementation *domain.Deployment
	Receipts       []*domain.Receipt
}

// DeployKleekProxy deploys the Kleek implementation, then an ERC1967Proxy that
// initializes it, and records both.
type DeployKleekProxy struct {
	config    *config.RuntimeConfig
	deployer  ContractDeployer
	artifacts ArtifactStore
	repo      DeploymentRepository
	progress  ProgressSink
	log       *slog.Logger
}

// NewDeployKleekProxy creates a new DeployKleekProxy use case
func NewDeployKleekProxy(
	cfg *config.RuntimeConfig,
	deployer ContractDeployer,
	artifacts ArtifactStore,
	repo DeploymentRepository,
	progress ProgressSink,
	log *slog.Logger,
) *DeployKleekProxy {
	return &DeployKleekProxy{
		config:    cfg,
		deployer:  deployer,
		artifacts: artifacts,
		repo:      repo,
		progress:  progress,
		log:       log.With("usecase", "deploy-kleek"),
	}
}

// Run executes the use case
func (uc *DeployKleekProxy) Run(ctx context.Context, params DeployKleekParams) (*DeployKleekResult, error) {
	network, err := activeNetwork(uc.config, domain.ContractKleek)
	if err != nil {
		return nil, err
	}

	owner, err := uc.owner(ctx, params.Owner)
	if err != nil {
		return nil, err
	}

	// The initializer is encoded before anything is sent so a bad interface costs no gas
	kleek, err := uc.artifacts.Get(ctx, domain.ContractKleek)
	if err != nil {
		return nil, &domain.ResolutionError{Contract: domain.ContractKleek, Err: err}
	}
	initData, err := kleek.ABI.Pack("initialize", owner)
	if err != nil {
		return nil, &domain.SubmissionError{Method: "initialize", Err: err}
	}

	uc.progress.Info(fmt.Sprintf("Deploying %s implementation to %s", domain.ContractKleek, network.Name))
	impl, err := uc.deployer.Deploy(ctx, domain.ContractKleek)
	if err != nil {
		return nil, err
	}

	implementation := &domain.Deployment{
		Network:     network.Name,
		ChainID:     network.ChainID,
		Contract:    domain.ContractKleek,
		Address:     impl.Address,
		Kind:        domain.ImplementationDeployment,
		TxHash:      impl.Receipt.TxHash,
		BlockNumber: impl.Receipt.BlockNumber,
		CreatedAt:   time.Now().UTC(),

		Source:          impl.Source,
		ConstructorArgs: impl.ConstructorArgs,
	}
	// Recorded right away so a failed proxy step still leaves a trace of the implementation
	if err := uc.repo.Save(ctx, implementation); err != nil {
		return nil, fmt.Errorf("deployed %s implementation at %s but failed to record it: %w", domain.ContractKleek, impl.Address.Hex(), err)
	}

	uc.progress.Info(fmt.Sprintf("Deploying %s for %s (owner %s)", domain.ContractERC1967Proxy, impl.Address.Hex(), owner.Hex()))
	proxy, err := uc.deployer.Deploy(ctx, domain.ContractERC1967Proxy, impl.Address, initData)
	if err != nil {
		return nil, err
	}

	implAddress := impl.Address
	proxyDeployment := &domain.Deployment{
		Network:        network.Name,
		ChainID:        network.ChainID,
		Contract:       domain.ContractKleek,
		Address:        proxy.Address,
		Kind:           domain.ProxyDeployment,
		Implementation: &implAddress,
		Owner:          owner,
		TxHash:         proxy.Receipt.TxHash,
		BlockNumber:    proxy.Receipt.BlockNumber,
		CreatedAt:      time.Now().UTC(),

		Artifact:        domain.ContractERC1967Proxy,
		Source:          proxy.Source,
		ConstructorArgs: proxy.ConstructorArgs,
	}
	if err := uc.repo.Save(ctx, proxyDeployment); err != nil {
		return nil, fmt.Errorf("deployed %s proxy at %s but failed to record it: %w", domain.ContractKleek, proxy.Address.Hex(), err)
	}
	uc.log.Debug("recorded deployments", "proxy", proxyDeployment.ID, "implementation", implementation.ID)

	return &DeployKleekResult{
		Proxy:          proxyDeployment,
		Implementation: implementation,
		Receipts:       []*domain.Receipt{impl.Receipt, proxy.Receipt},
	}, nil
}

// owner parses the requested owner or falls back to the signer
func (uc *DeployKleekProxy) owner(ctx context.Context, requested string) (common.Address, error) {
	if requested == "" {
		return uc.deployer.Sender(ctx)
	}
	owner, err := domain.ParseAddress(requested)
	if err != nil {
		return common.Address{}, &domain.ResolutionError{Contract: "owner", Address: requested, Err: err}
	}
	return owner, nil
}
