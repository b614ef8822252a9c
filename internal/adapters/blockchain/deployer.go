package blockchain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/kleek-protocol/kleek-deploy/internal/domain"
	"github.com/kleek-protocol/kleek-deploy/internal/usecase"
)

// Deployer creates contracts from compiled artifact bytecode
type Deployer struct {
	client    *Client
	invoker   *Invoker
	artifacts usecase.ArtifactStore
	log       *slog.Logger
}

// NewDeployer creates a new contract deployer
func NewDeployer(client *Client, invoker *Invoker, artifacts usecase.ArtifactStore, log *slog.Logger) *Deployer {
	return &Deployer{
		client:    client,
		invoker:   invoker,
		artifacts: artifacts,
		log:       log.With("component", "deployer"),
	}
}

// Deploy sends a creation transaction for the named artifact and waits for confirmation
func (d *Deployer) Deploy(ctx context.Context, name string, constructorArgs ...any) (*usecase.DeployResult, error) {
	artifact, err := d.artifacts.Get(ctx, name)
	if err != nil {
		return nil, &domain.ResolutionError{Contract: name, Err: err}
	}
	if len(artifact.Bytecode) == 0 {
		return nil, &domain.ResolutionError{Contract: name, Err: domain.ErrMissingBytecode}
	}

	label := "deploy " + name
	input, err := artifact.ABI.Pack("", constructorArgs...)
	if err != nil {
		return nil, &domain.SubmissionError{Method: label, Err: fmt.Errorf("invalid constructor arguments: %w", err)}
	}

	d.log.Debug("deploying", "contract", name, "artifact", artifact.Path, "bytecode", len(artifact.Bytecode))

	data := append(append([]byte{}, artifact.Bytecode...), input...)
	receipt, err := d.invoker.submit(ctx, label, artifact.ABI, nil, data, func(opts *bind.TransactOpts, backend ChainBackend) (*types.Transaction, error) {
		_, tx, err := bind.DeployContract(opts, append([]byte{}, artifact.Bytecode...), backend, input)
		return tx, err
	})
	if err != nil {
		return nil, err
	}

	return &usecase.DeployResult{
		Contract:        name,
		Address:         *receipt.ContractAddress,
		Receipt:         receipt,
		Source:          artifact.Source,
		ConstructorArgs: input,
	}, nil
}

// Sender returns the deploying account
func (d *Deployer) Sender(ctx context.Context) (common.Address, error) {
	return d.client.Sender()
}

// Ensure the adapter implements the interface
var _ usecase.ContractDeployer = (*Deployer)(nil)
