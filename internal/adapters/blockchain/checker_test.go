package blockchain

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleek-protocol/kleek-deploy/internal/domain"
)

func newTestChecker(backend *fakeBackend, dialErr error) *CheckerAdapter {
	return &CheckerAdapter{
		dial: func(ctx context.Context, rpcURL string) (ChainBackend, error) {
			if dialErr != nil {
				return nil, dialErr
			}
			return backend, nil
		},
	}
}

func TestCheckerConnect(t *testing.T) {
	t.Run("matching chain returns head", func(t *testing.T) {
		checker := newTestChecker(newFakeBackend(), nil)
		head, err := checker.Connect(context.Background(), "http://127.0.0.1:8545", 31337)
		require.NoError(t, err)
		assert.Equal(t, uint64(100), head)
	})

	t.Run("wrong chain", func(t *testing.T) {
		backend := newFakeBackend()
		backend.chainID = big.NewInt(8453)
		checker := newTestChecker(backend, nil)

		_, err := checker.Connect(context.Background(), "http://127.0.0.1:8545", 31337)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNetworkMismatch)

		_, err = checker.CheckDeploymentExists(context.Background(), common.HexToAddress(testKleek))
		assert.EqualError(t, err, "not connected to blockchain")
	})

	t.Run("dial failure", func(t *testing.T) {
		checker := newTestChecker(nil, errors.New("connection refused"))
		_, err := checker.Connect(context.Background(), "http://127.0.0.1:1", 31337)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestCheckerDeploymentExists(t *testing.T) {
	backend := newFakeBackend()
	missing := common.HexToAddress("0x00000000000000000000000000000000000000ee")
	backend.empty = map[common.Address]bool{missing: true}

	checker := newTestChecker(backend, nil)
	_, err := checker.Connect(context.Background(), "http://127.0.0.1:8545", 31337)
	require.NoError(t, err)
	defer checker.Close()

	exists, err := checker.CheckDeploymentExists(context.Background(), common.HexToAddress(testKleek))
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = checker.CheckDeploymentExists(context.Background(), missing)
	require.NoError(t, err)
	assert.False(t, exists)
}
