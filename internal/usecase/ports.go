package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/kleek-protocol/kleek-deploy/internal/domain"
	"github.com/kleek-protocol/kleek-deploy/internal/domain/config"
)

// ParameterEncoder serializes condition-module parameters with a named, versioned schema
type ParameterEncoder interface {
	Encode(schemaID string, values ...any) (domain.EncodedParams, error)
	Decode(schemaID string, data []byte) ([]any, error)
	SchemaIDs() []string
}

// ArtifactStore provides compiled contract interfaces and bytecode
type ArtifactStore interface {
	Get(ctx context.Context, name string) (*domain.Artifact, error)
}

// ContractResolver binds a contract interface to a deployed address
type ContractResolver interface {
	Resolve(ctx context.Context, name, address string) (*domain.ContractHandle, error)
}

// TransactionInvoker submits state-changing calls and waits for confirmation
type TransactionInvoker interface {
	Invoke(ctx context.Context, handle *domain.ContractHandle, method string, args ...any) (*domain.Receipt, error)
}

// ContractDeployer deploys contracts from artifact bytecode
type ContractDeployer interface {
	Deploy(ctx context.Context, name string, constructorArgs ...any) (*DeployResult, error)
	Sender(ctx context.Context) (common.Address, error)
}

// DeploymentRepository persists recorded deployments
type DeploymentRepository interface {
	Save(ctx context.Context, deployment *domain.Deployment) error
	List(ctx context.Context, filter domain.DeploymentFilter) ([]*domain.Deployment, error)
	Latest(ctx context.Context, chainID uint64, contract string) (*domain.Deployment, error)
}

// NetworkResolver resolves network names to configurations
type NetworkResolver interface {
	GetNetworks(ctx context.Context) []string
	ResolveNetwork(ctx context.Context, networkName string) (*config.Network, error)
}

// LocalConfigRepository persists per-checkout overrides
type LocalConfigRepository interface {
	Exists() bool
	Load(ctx context.Context) (*config.LocalConfig, error)
	Save(ctx context.Context, config *config.LocalConfig) error
	GetPath() string
}

// BlockchainChecker checks a network endpoint and the code at recorded addresses
type BlockchainChecker interface {
	Connect(ctx context.Context, rpcURL string, chainID uint64) (uint64, error)
	CheckDeploymentExists(ctx context.Context, address common.Address) (bool, error)
	Close()
}

// ContractVerifier submits a deployment's source to the network's block explorer.
// A rejected submission comes back as a FAILED record; an error means nothing was submitted.
type ContractVerifier interface {
	Verify(ctx context.Context, deployment *domain.Deployment, network *config.Network, tool string) (*domain.Verification, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// Use case result types

// DeployResult describes one confirmed contract creation
type DeployResult struct {
	Contract string
	Address  common.Address
	Receipt  *domain.Receipt

	// Source and ConstructorArgs are kept for explorer verification
	Source          string
	ConstructorArgs []byte
}

// EventDecoder decodes receipt logs with a contract interface
type EventDecoder interface {
	DecodeLogs(contractABI *abi.ABI, logs []*types.Log) []domain.DecodedEvent
}
