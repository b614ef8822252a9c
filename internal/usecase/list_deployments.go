package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/kleek-protocol/kleek-deploy/internal/domain"
	"github.com/kleek-protocol/kleek-deploy/internal/domain/config"
)

// ListDeploymentsParams contains parameters for listing deployments
type ListDeploymentsParams struct {
	Contract string
	// AllChains lists every chain instead of the active network's
	AllChains bool
	// Check looks for code at every address recorded on the active network
	Check bool
}

// DeploymentListResult contains the listed deployments and a summary
type DeploymentListResult struct {
	Deployments []*domain.Deployment
	Summary     DeploymentSummary

	// OnChain maps deployment IDs to whether code was found. Only deployments
	// on the active network are checked.
	OnChain map[string]bool
}

// DeploymentSummary counts deployments per contract, chain and kind
type DeploymentSummary struct {
	Total      int
	ByContract map[string]int
	ByChain    map[uint64]int
	ByKind     map[domain.DeploymentKind]int
}

// ListDeployments is the use case for listing recorded deployments
type ListDeployments struct {
	config  *config.RuntimeConfig
	repo    DeploymentRepository
	checker BlockchainChecker
}

// NewListDeployments creates a new ListDeployments use case
func NewListDeployments(cfg *config.RuntimeConfig, repo DeploymentRepository, checker BlockchainChecker) *ListDeployments {
	return &ListDeployments{
		config:  cfg,
		repo:    repo,
		checker: checker,
	}
}

// Run executes the list deployments use case
func (uc *ListDeployments) Run(ctx context.Context, params ListDeploymentsParams) (*DeploymentListResult, error) {
	filter := domain.DeploymentFilter{Contract: params.Contract}
	if !params.AllChains && uc.config.Network != nil {
		filter.ChainID = uc.config.Network.ChainID
	}

	deployments, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	// Sort deployments for consistent output
	sortDeployments(deployments)

	result := &DeploymentListResult{
		Deployments: deployments,
		Summary:     calculateSummary(deployments),
	}

	if params.Check {
		if result.OnChain, err = uc.checkOnChain(ctx, deployments); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (uc *ListDeployments) checkOnChain(ctx context.Context, deployments []*domain.Deployment) (map[string]bool, error) {
	network := uc.config.Network
	if network == nil {
		return nil, fmt.Errorf("checking deployments needs a configured network")
	}

	if _, err := uc.checker.Connect(ctx, network.RPCURL, network.ChainID); err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", network.Name, err)
	}
	defer uc.checker.Close()

	onChain := make(map[string]bool)
	for _, dep := range deployments {
		if dep.ChainID != network.ChainID {
			continue
		}
		exists, err := uc.checker.CheckDeploymentExists(ctx, dep.Address)
		if err != nil {
			return nil, err
		}
		onChain[dep.ID] = exists
	}
	return onChain, nil
}

// sortDeployments sorts by chain ID, contract name, then creation time
func sortDeployments(deployments []*domain.Deployment) {
	sort.SliceStable(deployments, func(i, j int) bool {
		if deployments[i].ChainID != deployments[j].ChainID {
			return deployments[i].ChainID < deployments[j].ChainID
		}
		if deployments[i].Contract != deployments[j].Contract {
			return deployments[i].Contract < deployments[j].Contract
		}
		return deployments[i].CreatedAt.Before(deployments[j].CreatedAt)
	})
}

func calculateSummary(deployments []*domain.Deployment) DeploymentSummary {
	summary := DeploymentSummary{
		Total:      len(deployments),
		ByContract: make(map[string]int),
		ByChain:    make(map[uint64]int),
		ByKind:     make(map[domain.DeploymentKind]int),
	}

	for _, dep := range deployments {
		summary.ByContract[dep.Contract]++
		summary.ByChain[dep.ChainID]++
		summary.ByKind[dep.Kind]++
	}

	return summary
}
