package blockchain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleek-protocol/kleek-deploy/internal/adapters/abi/bindings"
	"github.com/kleek-protocol/kleek-deploy/internal/domain"
	"github.com/kleek-protocol/kleek-deploy/internal/usecase"
)

var fakeCreationCode = []byte{0x60, 0x80, 0x60, 0x40, 0x52, 0x34, 0x80, 0x15}

func newTestDeployer(backend *fakeBackend, store *staticArtifacts) *Deployer {
	cfg := testConfig()
	client := NewClientWithBackend(cfg, backend, discard)
	invoker := NewInvoker(client, cfg, usecase.NopProgress{}, discard)
	invoker.pollInterval = time.Millisecond
	return NewDeployer(client, invoker, store, discard)
}

func TestDeployShareDeposit(t *testing.T) {
	backend := newFakeBackend()
	store := &staticArtifacts{bytecode: map[string][]byte{domain.ContractShareDeposit: fakeCreationCode}}
	deployer := newTestDeployer(backend, store)

	kleek := common.HexToAddress(testKleek)
	result, err := deployer.Deploy(context.Background(), domain.ContractShareDeposit, kleek)
	require.NoError(t, err)

	sender := common.HexToAddress(testSender)
	expected := crypto.CreateAddress(sender, 0)
	assert.Equal(t, domain.ContractShareDeposit, result.Contract)
	assert.Equal(t, expected, result.Address)
	require.NotNil(t, result.Receipt.ContractAddress)
	assert.Equal(t, expected, *result.Receipt.ContractAddress)

	require.Len(t, backend.sent, 1)
	tx := backend.sent[0]
	assert.Nil(t, tx.To())
	wantData := append(append([]byte{}, fakeCreationCode...), bindings.NewShareDeposit().PackConstructor(kleek)...)
	assert.Equal(t, wantData, tx.Data())
	assert.Equal(t, bindings.NewShareDeposit().PackConstructor(kleek), result.ConstructorArgs)
	assert.Equal(t, fakeCreationCode, store.bytecode[domain.ContractShareDeposit], "artifact bytecode must not be mutated")
}

func TestDeploySequentialNonces(t *testing.T) {
	backend := newFakeBackend()
	store := &staticArtifacts{bytecode: map[string][]byte{
		domain.ContractKleek:        fakeCreationCode,
		domain.ContractERC1967Proxy: fakeCreationCode,
	}}
	deployer := newTestDeployer(backend, store)
	ctx := context.Background()

	impl, err := deployer.Deploy(ctx, domain.ContractKleek)
	require.NoError(t, err)

	sender := common.HexToAddress(testSender)
	initData := bindings.NewKleek().PackInitialize(sender)
	proxy, err := deployer.Deploy(ctx, domain.ContractERC1967Proxy, impl.Address, initData)
	require.NoError(t, err)

	assert.Equal(t, crypto.CreateAddress(sender, 0), impl.Address)
	assert.Equal(t, crypto.CreateAddress(sender, 1), proxy.Address)
	require.Len(t, backend.sent, 2)
	assert.Equal(t, uint64(1), backend.sent[1].Nonce())
}

func TestDeployErrors(t *testing.T) {
	t.Run("no bytecode", func(t *testing.T) {
		backend := newFakeBackend()
		deployer := newTestDeployer(backend, &staticArtifacts{})

		_, err := deployer.Deploy(context.Background(), domain.ContractShareDeposit, common.Address{})
		var resolutionErr *domain.ResolutionError
		require.True(t, errors.As(err, &resolutionErr))
		assert.ErrorIs(t, err, domain.ErrMissingBytecode)
		assert.Empty(t, backend.sent)
	})

	t.Run("unknown contract", func(t *testing.T) {
		deployer := newTestDeployer(newFakeBackend(), &staticArtifacts{})

		_, err := deployer.Deploy(context.Background(), "Registry")
		assert.ErrorIs(t, err, domain.ErrUnknownInterface)
	})

	t.Run("wrong constructor arguments", func(t *testing.T) {
		store := &staticArtifacts{bytecode: map[string][]byte{domain.ContractShareDeposit: fakeCreationCode}}
		deployer := newTestDeployer(newFakeBackend(), store)

		_, err := deployer.Deploy(context.Background(), domain.ContractShareDeposit)
		var submissionErr *domain.SubmissionError
		require.True(t, errors.As(err, &submissionErr))
		assert.Equal(t, "deploy ShareDeposit", submissionErr.Method)
	})

	t.Run("constructor reverts", func(t *testing.T) {
		backend := newFakeBackend()
		backend.estimate = func(ethereum.CallMsg) (uint64, error) {
			return 0, revertWithData(errorString("Ownable: zero owner"))
		}
		store := &staticArtifacts{bytecode: map[string][]byte{domain.ContractShareDeposit: fakeCreationCode}}
		deployer := newTestDeployer(backend, store)

		_, err := deployer.Deploy(context.Background(), domain.ContractShareDeposit, common.Address{})
		var remoteErr *domain.RemoteCallError
		require.True(t, errors.As(err, &remoteErr))
		assert.Equal(t, "Ownable: zero owner", remoteErr.Reason)
		assert.Empty(t, backend.sent)
	})
}

func TestDeployerSender(t *testing.T) {
	deployer := newTestDeployer(newFakeBackend(), &staticArtifacts{})
	sender, err := deployer.Sender(context.Background())
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(testSender), sender)
}
