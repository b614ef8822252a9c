package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"

	"github.com/kleek-protocol/kleek-deploy/internal/domain"
	"github.com/kleek-protocol/kleek-deploy/internal/domain/config"
)

// WhitelistedEvent is emitted by Kleek when a module is enabled or disabled
const WhitelistedEvent = "ConditionModuleWhitelisted"

// WhitelistModuleParams contains parameters for (un)whitelisting a condition module
type WhitelistModuleParams struct {
	Kleek  string // optional override of the Kleek address
	Module string
	Enable bool
}

// WhitelistModuleResult contains the receipt and the whitelist event, if emitted
type WhitelistModuleResult struct {
	Kleek   *domain.ContractHandle
	Module  common.Address
	Enabled bool
	Receipt *domain.Receipt
	Event   *domain.DecodedEvent
}

// WhitelistModule toggles a condition module on the Kleek contract
type WhitelistModule struct {
	config   *config.RuntimeConfig
	resolver ContractResolver
	invoker  TransactionInvoker
	repo     DeploymentRepository
	decoder  EventDecoder
	progress ProgressSink
	log      *slog.Logger
}

// NewWhitelistModule creates a new WhitelistModule use case
func NewWhitelistModule(
	cfg *config.RuntimeConfig,
	resolver ContractResolver,
	invoker TransactionInvoker,
	repo DeploymentRepository,
	decoder EventDecoder,
	progress ProgressSink,
	log *slog.Logger,
) *WhitelistModule {
	return &WhitelistModule{
		config:   cfg,
		resolver: resolver,
		invoker:  invoker,
		repo:     repo,
		decoder:  decoder,
		progress: progress,
		log:      log.With("usecase", "whitelist"),
	}
}

// Run executes the use case
func (uc *WhitelistModule) Run(ctx context.Context, params WhitelistModuleParams) (*WhitelistModuleResult, error) {
	module, err := domain.ParseAddress(params.Module)
	if err != nil {
		return nil, &domain.ResolutionError{Contract: "condition module", Address: params.Module, Err: err}
	}

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

	action := "Disabling"
	if params.Enable {
		action = "Whitelisting"
	}
	uc.log.Debug("whitelisting condition module", "kleek", kleek.Address, "module", module, "enable", params.Enable)
	uc.progress.Info(fmt.Sprintf("%s condition module %s on Kleek at %s", action, module.Hex(), kleek.Address.Hex()))

	receipt, err := uc.invoker.Invoke(ctx, kleek, "whitelistConditionModule", module, params.Enable)
	if err != nil {
		return nil, err
	}

	result := &WhitelistModuleResult{
		Kleek:   kleek,
		Module:  module,
		Enabled: params.Enable,
		Receipt: receipt,
	}
	for _, event := range uc.decoder.DecodeLogs(kleek.ABI, receipt.Logs) {
		if event.Name == WhitelistedEvent && event.Address == kleek.Address {
			result.Event = &event
			break
		}
	}
	if result.Event == nil {
		uc.log.Debug("no whitelist event in receipt", "tx", receipt.TxHash)
	}

	return result, nil
}
