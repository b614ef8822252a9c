package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kleek-protocol/kleek-deploy/internal/domain"
	"github.com/kleek-protocol/kleek-deploy/internal/domain/config"
)

// DeployShareDepositParams contains parameters for deploying the ShareDeposit module
type DeployShareDepositParams struct {
	// Owner is the constructor argument. Defaults to the Kleek proxy address.
	Owner string
}

// DeployShareDepositResult contains the recorded deployment
type DeployShareDepositResult struct {
	Deployment *domain.Deployment
	Receipt    *domain.Receipt
}

// DeployShareDeposit deploys the ShareDeposit condition module and records it
type DeployShareDeposit struct {
	config   *config.RuntimeConfig
	deployer ContractDeployer
	repo     DeploymentRepository
	progress ProgressSink
	log      *slog.Logger
}

// NewDeployShareDeposit creates a new DeployShareDeposit use case
func NewDeployShareDeposit(
	cfg *config.RuntimeConfig,
	deployer ContractDeployer,
	repo DeploymentRepository,
	progress ProgressSink,
	log *slog.Logger,
) *DeployShareDeposit {
	return &DeployShareDeposit{
		config:   cfg,
		deployer: deployer,
		repo:     repo,
		progress: progress,
		log:      log.With("usecase", "deploy-share-deposit"),
	}
}

// Run executes the use case
func (uc *DeployShareDeposit) Run(ctx context.Context, params DeployShareDepositParams) (*DeployShareDepositResult, error) {
	network, err := activeNetwork(uc.config, domain.ContractShareDeposit)
	if err != nil {
		return nil, err
	}

	ownerInput, err := kleekAddress(ctx, uc.config, uc.repo, params.Owner)
	if err != nil {
		return nil, err
	}
	owner, err := domain.ParseAddress(ownerInput)
	if err != nil {
		return nil, &domain.ResolutionError{Contract: "owner", Address: ownerInput, Err: err}
	}

	uc.progress.Info(fmt.Sprintf("Deploying %s (owner %s) to %s", domain.ContractShareDeposit, owner.Hex(), network.Name))

	deployed, err := uc.deployer.Deploy(ctx, domain.ContractShareDeposit, owner)
	if err != nil {
		return nil, err
	}

	deployment := &domain.Deployment{
		Network:     network.Name,
		ChainID:     network.ChainID,
		Contract:    domain.ContractShareDeposit,
		Address:     deployed.Address,
		Kind:        domain.SingletonDeployment,
		Owner:       owner,
		TxHash:      deployed.Receipt.TxHash,
		BlockNumber: deployed.Receipt.BlockNumber,
		CreatedAt:   time.Now().UTC(),

		Source:          deployed.Source,
		ConstructorArgs: deployed.ConstructorArgs,
	}
	if err := uc.repo.Save(ctx, deployment); err != nil {
		return nil, fmt.Errorf("deployed %s at %s but failed to record it: %w", deployment.Contract, deployment.Address.Hex(), err)
	}
	uc.log.Debug("recorded deployment", "id", deployment.ID)

	return &DeployShareDepositResult{
		Deployment: deployment,
		Receipt:    deployed.Receipt,
	}, nil
}
