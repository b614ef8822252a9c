package adapters

import (
	"github.com/google/wire"

	"github.com/kleek-protocol/kleek-deploy/internal/adapters/abi"
	"github.com/kleek-protocol/kleek-deploy/internal/adapters/artifacts"
	"github.com/kleek-protocol/kleek-deploy/internal/adapters/blockchain"
	internalconfig "github.com/kleek-protocol/kleek-deploy/internal/adapters/config"
	"github.com/kleek-protocol/kleek-deploy/internal/adapters/fs"
	"github.com/kleek-protocol/kleek-deploy/internal/adapters/params"
	"github.com/kleek-protocol/kleek-deploy/internal/adapters/verification"
	"github.com/kleek-protocol/kleek-deploy/internal/config"
	"github.com/kleek-protocol/kleek-deploy/internal/usecase"
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewDeploymentStore,
	wire.Bind(new(usecase.DeploymentRepository), new(*fs.DeploymentStore)),

	artifacts.NewStore,
	wire.Bind(new(usecase.ArtifactStore), new(*artifacts.Store)),

	fs.NewLocalConfigStoreAdapter,
	wire.Bind(new(usecase.LocalConfigRepository), new(*fs.LocalConfigStoreAdapter)),
)

// EncodingSet provides ABI encoding and decoding implementations
var EncodingSet = wire.NewSet(
	params.NewEncoder,
	wire.Bind(new(usecase.ParameterEncoder), new(*params.Encoder)),

	abi.NewEventDecoder,
	wire.Bind(new(usecase.EventDecoder), new(*abi.EventDecoder)),
)

// ConfigSet provides configuration-based implementations
var ConfigSet = wire.NewSet(
	config.ProvideNetworkResolver,
	internalconfig.NewNetworkResolverAdapter,
	wire.Bind(new(usecase.NetworkResolver), new(*internalconfig.NetworkResolverAdapter)),
)

// BlockchainSet provides blockchain-based implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewClient,

	blockchain.NewResolver,
	wire.Bind(new(usecase.ContractResolver), new(*blockchain.Resolver)),

	blockchain.NewInvoker,
	wire.Bind(new(usecase.TransactionInvoker), new(*blockchain.Invoker)),

	blockchain.NewDeployer,
	wire.Bind(new(usecase.ContractDeployer), new(*blockchain.Deployer)),

	blockchain.NewCheckerAdapter,
	wire.Bind(new(usecase.BlockchainChecker), new(*blockchain.CheckerAdapter)),
)

// VerificationSet provides block explorer verification
var VerificationSet = wire.NewSet(
	verification.NewVerifier,
	wire.Bind(new(usecase.ContractVerifier), new(*verification.Verifier)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	EncodingSet,
	ConfigSet,
	BlockchainSet,
	VerificationSet,
)
