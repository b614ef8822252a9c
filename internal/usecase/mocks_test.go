package usecase_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"

	"github.com/kleek-protocol/kleek-deploy/internal/domain"
	"github.com/kleek-protocol/kleek-deploy/internal/domain/config"
	"github.com/kleek-protocol/kleek-deploy/internal/usecase"
)

// MockDeploymentRepository is a mock implementation of DeploymentRepository
type MockDeploymentRepository struct {
	mock.Mock
}

func (m *MockDeploymentRepository) Save(ctx context.Context, deployment *domain.Deployment) error {
	args := m.Called(ctx, deployment)
	return args.Error(0)
}

func (m *MockDeploymentRepository) List(ctx context.Context, filter domain.DeploymentFilter) ([]*domain.Deployment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Deployment), args.Error(1)
}

func (m *MockDeploymentRepository) Latest(ctx context.Context, chainID uint64, contract string) (*domain.Deployment, error) {
	args := m.Called(ctx, chainID, contract)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deployment), args.Error(1)
}

// MockContractResolver is a mock implementation of ContractResolver
type MockContractResolver struct {
	mock.Mock
}

func (m *MockContractResolver) Resolve(ctx context.Context, name, address string) (*domain.ContractHandle, error) {
	args := m.Called(ctx, name, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContractHandle), args.Error(1)
}

// MockParameterEncoder is a mock implementation of ParameterEncoder
type MockParameterEncoder struct {
	mock.Mock
}

func (m *MockParameterEncoder) Encode(schemaID string, values ...any) (domain.EncodedParams, error) {
	args := m.Called(schemaID, values)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.EncodedParams), args.Error(1)
}

func (m *MockParameterEncoder) Decode(schemaID string, data []byte) ([]any, error) {
	args := m.Called(schemaID, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]any), args.Error(1)
}

func (m *MockParameterEncoder) SchemaIDs() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

// MockTransactionInvoker is a mock implementation of TransactionInvoker
type MockTransactionInvoker struct {
	mock.Mock
}

func (m *MockTransactionInvoker) Invoke(ctx context.Context, handle *domain.ContractHandle, method string, args ...any) (*domain.Receipt, error) {
	ret := m.Called(ctx, handle, method, args)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).(*domain.Receipt), ret.Error(1)
}

// MockContractDeployer is a mock implementation of ContractDeployer
type MockContractDeployer struct {
	mock.Mock
}

func (m *MockContractDeployer) Deploy(ctx context.Context, name string, constructorArgs ...any) (*usecase.DeployResult, error) {
	args := m.Called(ctx, name, constructorArgs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.DeployResult), args.Error(1)
}

func (m *MockContractDeployer) Sender(ctx context.Context) (common.Address, error) {
	args := m.Called(ctx)
	return args.Get(0).(common.Address), args.Error(1)
}

// MockArtifactStore is a mock implementation of ArtifactStore
type MockArtifactStore struct {
	mock.Mock
}

func (m *MockArtifactStore) Get(ctx context.Context, name string) (*domain.Artifact, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artifact), args.Error(1)
}

// MockNetworkResolver is a mock implementation of NetworkResolver
type MockNetworkResolver struct {
	mock.Mock
}

func (m *MockNetworkResolver) GetNetworks(ctx context.Context) []string {
	args := m.Called(ctx)
	return args.Get(0).([]string)
}

func (m *MockNetworkResolver) ResolveNetwork(ctx context.Context, networkName string) (*config.Network, error) {
	args := m.Called(ctx, networkName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*config.Network), args.Error(1)
}

// MockBlockchainChecker is a mock implementation of BlockchainChecker
type MockBlockchainChecker struct {
	mock.Mock
}

func (m *MockBlockchainChecker) Connect(ctx context.Context, rpcURL string, chainID uint64) (uint64, error) {
	args := m.Called(ctx, rpcURL, chainID)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockBlockchainChecker) CheckDeploymentExists(ctx context.Context, address common.Address) (bool, error) {
	args := m.Called(ctx, address)
	return args.Bool(0), args.Error(1)
}

func (m *MockBlockchainChecker) Close() {
	m.Called()
}

// stubEventDecoder returns fixed events regardless of the logs
type stubEventDecoder struct {
	events []domain.DecodedEvent
}

func (s *stubEventDecoder) DecodeLogs(contractABI *abi.ABI, logs []*types.Log) []domain.DecodedEvent {
	return s.events
}

// MockContractVerifier is a mock implementation of ContractVerifier
type MockContractVerifier struct {
	mock.Mock
}

func (m *MockContractVerifier) Verify(ctx context.Context, deployment *domain.Deployment, network *config.Network, tool string) (*domain.Verification, error) {
	args := m.Called(ctx, deployment, network, tool)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Verification), args.Error(1)
}

// MockProgressSink records progress events and messages
type MockProgressSink struct {
	events   []usecase.ProgressEvent
	messages []string
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(message string) {
	m.messages = append(m.messages, message)
}

func (m *MockProgressSink) Error(message string) {
	m.messages = append(m.messages, message)
}

var (
	testChainID = uint64(84532)
	testKleek   = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	testModule  = common.HexToAddress("0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512")
	testSender  = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	testTxHash  = common.HexToHash("0xabc1")
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRuntimeConfig() *config.RuntimeConfig {
	return &config.RuntimeConfig{
		ProjectRoot: "/project",
		DataDir:     "/project/.kleek",
		NetworkName: "base_sepolia",
		Network: &config.Network{
			Name:        "base_sepolia",
			ChainID:     testChainID,
			RPCURL:      "https://base-sepolia.example",
			ExplorerURL: "https://sepolia.basescan.org",
		},
		Confirmations: 1,
		Project:       &config.ProjectConfig{},
	}
}
