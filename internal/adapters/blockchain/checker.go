package blockchain

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/kleek-protocol/kleek-deploy/internal/domain"
	"github.com/kleek-protocol/kleek-deploy/internal/usecase"
)

// checkTimeout bounds every individual check so one dead endpoint cannot stall a listing
const checkTimeout = 5 * time.Second

// dialFunc is swapped out in tests
type dialFunc func(ctx context.Context, rpcURL string) (ChainBackend, error)

// CheckerAdapter checks endpoints and addresses for the listing commands. It is
// read-only: nothing is signed or sent.
type CheckerAdapter struct {
	dial    dialFunc
	backend ChainBackend
	chainID uint64
}

// NewCheckerAdapter creates a new blockchain checker adapter
func NewCheckerAdapter() *CheckerAdapter {
	return &CheckerAdapter{
		dial: func(ctx context.Context, rpcURL string) (ChainBackend, error) {
			return ethclient.DialContext(ctx, rpcURL)
		},
	}
}

// Connect dials the endpoint and verifies it serves the expected chain.
// It returns the current head block.
func (c *CheckerAdapter) Connect(ctx context.Context, rpcURL string, chainID uint64) (uint64, error) {
	c.Close()

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	backend, err := c.dial(ctx, rpcURL)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to RPC: %w", err)
	}

	networkChainID, err := backend.ChainID(ctx)
	if err != nil {
		closeBackend(backend)
		return 0, fmt.Errorf("failed to get chain ID: %w", err)
	}
	if networkChainID.Uint64() != chainID {
		closeBackend(backend)
		return 0, fmt.Errorf("%w: expected chain %d, endpoint serves %d", domain.ErrNetworkMismatch, chainID, networkChainID.Uint64())
	}

	head, err := backend.BlockNumber(ctx)
	if err != nil {
		closeBackend(backend)
		return 0, fmt.Errorf("failed to get head block: %w", err)
	}

	c.backend = backend
	c.chainID = chainID
	return head, nil
}

// CheckDeploymentExists reports whether code is deployed at the address
func (c *CheckerAdapter) CheckDeploymentExists(ctx context.Context, address common.Address) (bool, error) {
	if c.backend == nil {
		return false, fmt.Errorf("not connected to blockchain")
	}

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	code, err := c.backend.CodeAt(ctx, address, nil)
	if err != nil {
		return false, fmt.Errorf("failed to check code at %s: %w", address.Hex(), err)
	}
	return len(code) > 0, nil
}

// Close releases the current connection, if any
func (c *CheckerAdapter) Close() {
	if c.backend != nil {
		closeBackend(c.backend)
		c.backend = nil
	}
}

func closeBackend(backend ChainBackend) {
	if closer, ok := backend.(interface{ Close() }); ok {
		closer.Close()
	}
}

// Ensure the adapter implements the interface
var _ usecase.BlockchainChecker = (*CheckerAdapter)(nil)
