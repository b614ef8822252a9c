package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"strconv"
	"time"

	"github.com/kleek-protocol/kleek-deploy/internal/domain"
	"github.com/kleek-protocol/kleek-deploy/internal/domain/config"
)

// CreateConditionParams contains parameters for creating a condition on Kleek
type CreateConditionParams struct {
	Kleek        string // optional override of the Kleek address
	MetadataURI  string
	Start        time.Time
	End          time.Time
	Limit        *big.Int
	Module       string // optional override of the condition module address
	Schema       string
	ModuleParams []any
}

// CreateConditionResult contains the submitted record and its receipt
type CreateConditionResult struct {
	Kleek   *domain.ContractHandle
	Record  domain.ConditionRecord
	Receipt *domain.Receipt
	Events  []domain.DecodedEvent
}

// CreateCondition resolves Kleek and the condition module, encodes the module
// parameters and submits Kleek.create.
type CreateCondition struct {
	config   *config.RuntimeConfig
	resolver ContractResolver
	encoder  ParameterEncoder
	invoker  TransactionInvoker
	repo     DeploymentRepository
	decoder  EventDecoder
	progress ProgressSink
	log      *slog.Logger
}

// NewCreateCondition creates a new CreateCondition use case
func NewCreateCondition(
	cfg *config.RuntimeConfig,
	resolver ContractResolver,
	encoder ParameterEncoder,
	invoker TransactionInvoker,
	repo DeploymentRepository,
	decoder EventDecoder,
	progress ProgressSink,
	log *slog.Logger,
) *CreateCondition {
	return &CreateCondition{
		config:   cfg,
		resolver: resolver,
		encoder:  encoder,
		invoker:  invoker,
		repo:     repo,
		decoder:  decoder,
		progress: progress,
		log:      log.With("usecase", "create"),
	}
}

// Run executes the use case. Nothing is sent when resolution or encoding fails.
func (uc *CreateCondition) Run(ctx context.Context, params CreateConditionParams) (*CreateConditionResult, error) {
	if _, err := activeNetwork(uc.config, domain.ContractKleek); err != nil {
		return nil, err
	}

	address, err := kleekAddress(ctx, uc.config, uc.repo, params.Kleek)
	if err != nil {
		return nil, err
	}
	kleek, err := uc.resolver.Resolve(ctx, domain.ContractKleek, address)
	if err != nil {
		return nil, err
	}

	moduleAddress, err := uc.moduleAddress(ctx, params.Module)
	if err != nil {
		return nil, err
	}
	module, err := uc.resolver.Resolve(ctx, domain.ContractShareDeposit, moduleAddress)
	if err != nil {
		return nil, err
	}

	schema := params.Schema
	if schema == "" {
		schema = DefaultParamSchema
	}
	encoded, err := uc.encoder.Encode(schema, params.ModuleParams...)
	if err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit == nil {
		limit = new(big.Int)
	}
	if err := checkUint256Args(params.Start, params.End, limit); err != nil {
		return nil, err
	}

	record := domain.ConditionRecord{
		MetadataURI:         params.MetadataURI,
		Start:               params.Start,
		End:                 params.End,
		Limit:               limit,
		ConditionModule:     module.Address,
		ConditionModuleData: encoded,
	}

	uc.log.Debug("creating condition", "kleek", kleek.Address, "module", module.Address, "schema", schema, "params", encoded.Hex())
	uc.progress.Info(fmt.Sprintf("Creating condition on Kleek at %s", kleek.Address.Hex()))

	receipt, err := uc.invoker.Invoke(ctx, kleek, "create",
		record.MetadataURI,
		big.NewInt(record.Start.Unix()),
		big.NewInt(record.End.Unix()),
		record.Limit,
		record.ConditionModule,
		[]byte(record.ConditionModuleData),
	)
	if err != nil {
		return nil, err
	}

	return &CreateConditionResult{
		Kleek:   kleek,
		Record:  record,
		Receipt: receipt,
		Events:  uc.decoder.DecodeLogs(kleek.ABI, receipt.Logs),
	}, nil
}

// moduleAddress falls back from the flag to [contracts].condition_module, then
// [contracts].share_deposit, then the latest recorded ShareDeposit.
func (uc *CreateCondition) moduleAddress(ctx context.Context, override string) (string, error) {
	configured := uc.config.Project.Contracts.ConditionModule
	if configured == "" {
		configured = uc.config.Project.Contracts.ShareDeposit
	}
	return contractAddress(ctx, uc.config, uc.repo, domain.ContractShareDeposit, override, configured)
}

// checkUint256Args rejects values the ABI packer would wrap into huge uint256 words
func checkUint256Args(start, end time.Time, limit *big.Int) error {
	if start.Unix() < 0 {
		return &domain.EncodingRangeError{Field: "startDate", Type: "uint256", Value: strconv.FormatInt(start.Unix(), 10)}
	}
	if end.Unix() < 0 {
		return &domain.EncodingRangeError{Field: "endDate", Type: "uint256", Value: strconv.FormatInt(end.Unix(), 10)}
	}
	if limit.Sign() < 0 || limit.BitLen() > 256 {
		return &domain.EncodingRangeError{Field: "limit", Type: "uint256", Value: limit.String()}
	}
	return nil
}
