package blockchain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/kleek-protocol/kleek-deploy/internal/domain"
	"github.com/kleek-protocol/kleek-deploy/internal/domain/config"
	"github.com/kleek-protocol/kleek-deploy/internal/usecase"
)

// Invoker submits signed transactions and waits for their confirmation
type Invoker struct {
	client       *Client
	cfg          *config.RuntimeConfig
	progress     usecase.ProgressSink
	log          *slog.Logger
	pollInterval time.Duration
}

// NewInvoker creates a new transaction invoker
func NewInvoker(client *Client, cfg *config.RuntimeConfig, progress usecase.ProgressSink, log *slog.Logger) *Invoker {
	return &Invoker{
		client:       client,
		cfg:          cfg,
		progress:     progress,
		log:          log.With("component", "invoker"),
		pollInterval: time.Second,
	}
}

// Invoke calls a state-changing method on a resolved contract and blocks until the
// transaction is confirmed, reverted, or the confirmation wait times out.
func (i *Invoker) Invoke(ctx context.Context, handle *domain.ContractHandle, method string, args ...any) (*domain.Receipt, error) {
	if _, ok := handle.ABI.Methods[method]; !ok {
		return nil, &domain.SubmissionError{
			Method: method,
			Err:    fmt.Errorf("method not found in %s interface", handle.Name),
		}
	}

	calldata, err := handle.ABI.Pack(method, args...)
	if err != nil {
		return nil, &domain.SubmissionError{Method: method, Err: fmt.Errorf("invalid arguments: %w", err)}
	}

	to := handle.Address
	return i.submit(ctx, method, handle.ABI, &to, calldata, func(opts *bind.TransactOpts, backend ChainBackend) (*types.Transaction, error) {
		contract := bind.NewBoundContract(handle.Address, *handle.ABI, backend, backend, backend)
		return contract.RawTransact(opts, calldata)
	})
}

type sendFunc func(opts *bind.TransactOpts, backend ChainBackend) (*types.Transaction, error)

// submit runs the shared estimate, sign, send and wait sequence. to is nil for contract creation.
func (i *Invoker) submit(ctx context.Context, label string, contractABI *abi.ABI, to *common.Address, data []byte, send sendFunc) (*domain.Receipt, error) {
	// The key is checked before dialing so a bad credential never touches the network
	opts, err := i.client.TransactOpts(ctx)
	if err != nil {
		return nil, &domain.SubmissionError{Method: label, Err: err}
	}

	backend, err := i.client.Backend(ctx)
	if err != nil {
		return nil, &domain.SubmissionError{Method: label, Err: err}
	}

	// Estimating first surfaces reverts with their data; bind wraps estimate errors with %v
	gas, err := backend.EstimateGas(ctx, ethereum.CallMsg{From: opts.From, To: to, Data: data})
	if err != nil {
		if isRevert(err) {
			revert := revertData(err)
			return nil, &domain.RemoteCallError{
				Method: label,
				Reason: revertReason(contractABI, revert, err),
				Data:   revert,
			}
		}
		return nil, &domain.SubmissionError{Method: label, Err: fmt.Errorf("gas estimation failed: %w", err)}
	}
	opts.GasLimit = gas

	tx, err := send(opts, backend)
	if err != nil {
		return nil, &domain.SubmissionError{Method: label, Err: err}
	}
	i.log.Debug("transaction sent", "method", label, "tx", tx.Hash().Hex(), "nonce", tx.Nonce(), "gas", gas)

	i.progress.OnProgress(ctx, usecase.ProgressEvent{
		Stage:   "confirming",
		Message: fmt.Sprintf("Waiting for %s (%s)", label, tx.Hash().Hex()),
		Spinner: true,
	})
	receipt, err := i.waitConfirmed(ctx, label, backend, tx.Hash())
	i.progress.OnProgress(ctx, usecase.ProgressEvent{Stage: "confirmed"})
	if err != nil {
		return nil, err
	}
	i.log.Debug("transaction mined", "method", label, "tx", tx.Hash().Hex(), "block", receipt.BlockNumber, "status", receipt.Status)

	result := i.toReceipt(receipt, opts.From, tx)
	if receipt.Status == types.ReceiptStatusFailed {
		txHash := tx.Hash()
		revert, replayErr := i.replay(ctx, backend, opts.From, tx, receipt.BlockNumber)
		return result, &domain.RemoteCallError{
			Method: label,
			TxHash: &txHash,
			Reason: revertReason(contractABI, revert, replayErr),
			Data:   revert,
		}
	}
	return result, nil
}

// waitConfirmed waits for inclusion plus the configured number of confirmations
func (i *Invoker) waitConfirmed(ctx context.Context, label string, backend ChainBackend, txHash common.Hash) (*types.Receipt, error) {
	started := time.Now()
	waitCtx, cancel := context.WithTimeout(ctx, i.cfg.ConfirmTimeout)
	defer cancel()

	timedOut := func(err error) error {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return &domain.TimeoutError{Method: label, TxHash: txHash, Waited: time.Since(started).Round(time.Second)}
		}
		return fmt.Errorf("waiting for %s: %w", txHash.Hex(), err)
	}

	receipt, err := bind.WaitMined(waitCtx, backend, txHash)
	if err != nil {
		return nil, timedOut(err)
	}

	if i.cfg.Confirmations <= 1 || receipt.BlockNumber == nil {
		return receipt, nil
	}

	target := receipt.BlockNumber.Uint64() + i.cfg.Confirmations - 1
	ticker := time.NewTicker(i.pollInterval)
	defer ticker.Stop()
	for {
		head, err := backend.BlockNumber(waitCtx)
		if err == nil && head >= target {
			return receipt, nil
		}
		if err != nil {
			i.log.Debug("failed to read head block", "error", err)
		}
		select {
		case <-waitCtx.Done():
			return nil, timedOut(waitCtx.Err())
		case <-ticker.C:
		}
	}
}

// replay re-executes a failed transaction at its inclusion block to recover the revert data
func (i *Invoker) replay(ctx context.Context, backend ChainBackend, from common.Address, tx *types.Transaction, block *big.Int) ([]byte, error) {
	_, err := backend.CallContract(ctx, ethereum.CallMsg{
		From:  from,
		To:    tx.To(),
		Gas:   tx.Gas(),
		Value: tx.Value(),
		Data:  tx.Data(),
	}, block)
	if err == nil {
		return nil, nil
	}
	return revertData(err), err
}

func (i *Invoker) toReceipt(receipt *types.Receipt, from common.Address, tx *types.Transaction) *domain.Receipt {
	result := &domain.Receipt{
		TxHash:      receipt.TxHash,
		GasUsed:     receipt.GasUsed,
		Status:      receipt.Status,
		ExplorerURL: i.cfg.Network.TxURL(receipt.TxHash.Hex()),
		Logs:        receipt.Logs,
	}
	if receipt.BlockNumber != nil {
		result.BlockNumber = receipt.BlockNumber.Uint64()
	}
	if tx.To() == nil {
		created := receipt.ContractAddress
		if created == (common.Address{}) {
			created = crypto.CreateAddress(from, tx.Nonce())
		}
		result.ContractAddress = &created
	}
	return result
}

// Ensure the adapter implements the interface
var _ usecase.TransactionInvoker = (*Invoker)(nil)
