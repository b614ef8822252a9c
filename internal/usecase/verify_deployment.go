package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kleek-protocol/kleek-deploy/internal/domain"
	"github.com/kleek-protocol/kleek-deploy/internal/domain/config"
)

// localChainID is the hardhat and anvil default; it has no block explorer
const localChainID = 31337

// VerifyDeploymentParams selects the deployments to verify
type VerifyDeploymentParams struct {
	// Deployment is a deployment ID, an address or a contract name (its latest deployment)
	Deployment string
	// All verifies every deployment recorded on the active network
	All bool
	// Force re-verifies deployments already marked verified
	Force bool
	// Tool is hardhat or forge; empty detects it from the project files
	Tool string
}

// VerifyOutcome is the result for one deployment. Skipped is set when nothing was
// submitted; Err when the submission could not be made or was rejected.
type VerifyOutcome struct {
	Deployment *domain.Deployment
	Skipped    string
	Err        error
}

// VerifyDeploymentResult contains one outcome per selected deployment
type VerifyDeploymentResult struct {
	Network  *config.Network
	Outcomes []*VerifyOutcome
}

// Failed counts outcomes with an error
func (r *VerifyDeploymentResult) Failed() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}

// VerifyDeployment submits recorded deployments to the network's block explorer
// and records the outcome in the registry
type VerifyDeployment struct {
	config   *config.RuntimeConfig
	repo     DeploymentRepository
	verifier ContractVerifier
	progress ProgressSink
	log      *slog.Logger
}

// NewVerifyDeployment creates a new VerifyDeployment use case
func NewVerifyDeployment(
	cfg *config.RuntimeConfig,
	repo DeploymentRepository,
	verifier ContractVerifier,
	progress ProgressSink,
	log *slog.Logger,
) *VerifyDeployment {
	return &VerifyDeployment{
		config:   cfg,
		repo:     repo,
		verifier: verifier,
		progress: progress,
		log:      log.With("usecase", "verify-deployment"),
	}
}

// Run executes the use case
func (uc *VerifyDeployment) Run(ctx context.Context, params VerifyDeploymentParams) (*VerifyDeploymentResult, error) {
	network, err := activeNetwork(uc.config, "deployment")
	if err != nil {
		return nil, err
	}
	if network.ChainID == localChainID {
		return nil, fmt.Errorf("%s (chain %d) is a local chain with no block explorer", network.Name, network.ChainID)
	}
	if params.All == (params.Deployment != "") {
		return nil, fmt.Errorf("give either a deployment or --all")
	}

	targets, err := uc.selectDeployments(ctx, network, params)
	if err != nil {
		return nil, err
	}

	result := &VerifyDeploymentResult{Network: network}
	for _, deployment := range targets {
		outcome := &VerifyOutcome{Deployment: deployment}
		result.Outcomes = append(result.Outcomes, outcome)

		if deployment.IsVerified() && !params.Force {
			outcome.Skipped = "already verified"
			continue
		}
		outcome.Err = uc.verify(ctx, deployment, network, params.Tool)
	}

	return result, nil
}

func (uc *VerifyDeployment) verify(ctx context.Context, deployment *domain.Deployment, network *config.Network, tool string) error {
	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   "verify",
		Message: fmt.Sprintf("Verifying %s at %s", deployment.ArtifactName(), deployment.Address.Hex()),
		Spinner: true,
	})

	record, err := uc.verifier.Verify(ctx, deployment, network, tool)
	done := ProgressEvent{}
	if err == nil && record.Status == domain.VerificationVerified {
		done.Stage = "verified " + deployment.ArtifactName()
	}
	uc.progress.OnProgress(ctx, done)
	if err != nil {
		return err
	}

	deployment.Verification = record
	if err := uc.repo.Save(ctx, deployment); err != nil {
		return fmt.Errorf("failed to record verification: %w", err)
	}
	uc.log.Debug("verification recorded", "id", deployment.ID, "status", record.Status, "tool", record.Tool)

	if record.Status != domain.VerificationVerified {
		return fmt.Errorf("%s rejected %s: %s", record.Tool, deployment.ArtifactName(), record.Reason)
	}
	return nil
}

// selectDeployments resolves the identifier against the active chain's deployments
func (uc *VerifyDeployment) selectDeployments(ctx context.Context, network *config.Network, params VerifyDeploymentParams) ([]*domain.Deployment, error) {
	deployments, err := uc.repo.List(ctx, domain.DeploymentFilter{ChainID: network.ChainID})
	if err != nil {
		return nil, err
	}
	if params.All {
		return deployments, nil
	}

	id := params.Deployment
	if strings.HasPrefix(id, "0x") {
		address, err := domain.ParseAddress(id)
		if err != nil {
			return nil, &domain.ResolutionError{Contract: "deployment", Address: id, Err: err}
		}
		for _, d := range deployments {
			if d.Address == address {
				return []*domain.Deployment{d}, nil
			}
		}
		return nil, fmt.Errorf("%w: no deployment at %s on %s", domain.ErrNotFound, address.Hex(), network.Name)
	}

	for _, d := range deployments {
		if d.ID == id {
			return []*domain.Deployment{d}, nil
		}
	}

	latest, err := uc.repo.Latest(ctx, network.ChainID, id)
	if err != nil {
		return nil, err
	}
	return []*domain.Deployment{latest}, nil
}
