package blockchain

import (
	"context"
	"io"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/event"
	"github.com/kleek-protocol/kleek-deploy/internal/adapters/abi/bindings"
	"github.com/kleek-protocol/kleek-deploy/internal/domain"
	"github.com/kleek-protocol/kleek-deploy/internal/domain/config"
)

// anvil's first dev account
const (
	testKey    = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testSender = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	testKleek  = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func testConfig() *config.RuntimeConfig {
	return &config.RuntimeConfig{
		ProjectRoot: "/tmp/kleek",
		DataDir:     "/tmp/kleek/.kleek",
		Network: &config.Network{
			Name:        "localhost",
			ChainID:     31337,
			RPCURL:      "http://127.0.0.1:8545",
			ExplorerURL: "https://explorer.test",
		},
		PrivateKey:     testKey,
		ConfirmTimeout: 2 * time.Second,
		Confirmations:  1,
		Project:        &config.ProjectConfig{},
	}
}

// rpcError mimics a JSON-RPC error carrying revert data
type rpcError struct {
	message string
	data    string
}

func (e *rpcError) Error() string          { return e.message }
func (e *rpcError) ErrorCode() int         { return 3 }
func (e *rpcError) ErrorData() interface{} { return e.data }

func revertWithData(data []byte) error {
	return &rpcError{message: "execution reverted", data: hexutil.Encode(data)}
}

func errorString(reason string) []byte {
	stringType, _ := abi.NewType("string", "", nil)
	packed, err := abi.Arguments{{Type: stringType}}.Pack(reason)
	if err != nil {
		panic(err)
	}
	return append(crypto.Keccak256([]byte("Error(string)"))[:4], packed...)
}

// fakeBackend is an in-memory chain that mines every accepted transaction into the next block.
// Its Kleek.create rejects start dates after end dates the way the contract does.
type fakeBackend struct {
	mu sync.Mutex

	chainID *big.Int
	head    uint64
	nonces  map[common.Address]uint64

	sent     []*types.Transaction
	receipts map[common.Hash]*types.Receipt

	// behaviour switches
	noMine     bool
	failStatus bool
	sendErr    error
	estimate   func(msg ethereum.CallMsg) (uint64, error)
	call       func(msg ethereum.CallMsg, block *big.Int) ([]byte, error)
	advance    bool
	empty      map[common.Address]bool

	blockNumberCalls int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		chainID:  big.NewInt(31337),
		head:     100,
		nonces:   make(map[common.Address]uint64),
		receipts: make(map[common.Hash]*types.Receipt),
	}
}

func (f *fakeBackend) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	if f.empty[contract] {
		return nil, nil
	}
	return []byte{0x60, 0x80}, nil
}

func (f *fakeBackend) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	if f.call != nil {
		return f.call(msg, blockNumber)
	}
	return nil, nil
}

func (f *fakeBackend) PendingCodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	return []byte{0x60, 0x80}, nil
}

func (f *fakeBackend) PendingCallContract(ctx context.Context, msg ethereum.CallMsg) ([]byte, error) {
	return f.CallContract(ctx, msg, nil)
}

func (f *fakeBackend) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &types.Header{Number: new(big.Int).SetUint64(f.head), BaseFee: big.NewInt(1_000_000_000)}, nil
}

func (f *fakeBackend) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.nonces[account], nil
}

func (f *fakeBackend) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return big.NewInt(2_000_000_000), nil
}

func (f *fakeBackend) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	return big.NewInt(1_000_000_000), nil
}

func (f *fakeBackend) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	if f.estimate != nil {
		return f.estimate(msg)
	}
	if err := kleekRules(msg); err != nil {
		return 0, err
	}
	return 150_000, nil
}

func (f *fakeBackend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	if f.sendErr != nil {
		return f.sendErr
	}

	from, err := types.Sender(types.LatestSignerForChainID(f.chainID), tx)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, tx)
	f.nonces[from]++
	if f.noMine {
		return nil
	}

	f.head++
	receipt := &types.Receipt{
		TxHash:      tx.Hash(),
		BlockNumber: new(big.Int).SetUint64(f.head),
		GasUsed:     tx.Gas(),
		Status:      types.ReceiptStatusSuccessful,
	}
	if f.failStatus {
		receipt.Status = types.ReceiptStatusFailed
	}
	if tx.To() == nil {
		receipt.ContractAddress = crypto.CreateAddress(from, tx.Nonce())
	}
	f.receipts[tx.Hash()] = receipt
	return nil
}

func (f *fakeBackend) FilterLogs(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error) {
	return nil, nil
}

func (f *fakeBackend) SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	return event.NewSubscription(func(quit <-chan struct{}) error {
		<-quit
		return nil
	}), nil
}

func (f *fakeBackend) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if receipt, ok := f.receipts[txHash]; ok {
		return receipt, nil
	}
	return nil, ethereum.NotFound
}

func (f *fakeBackend) BlockNumber(ctx context.Context) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.blockNumberCalls++
	if f.advance {
		f.head++
	}
	return f.head, nil
}

func (f *fakeBackend) ChainID(ctx context.Context) (*big.Int, error) {
	return f.chainID, nil
}

// kleekRules applies the create-window check of the Kleek contract to a call
func kleekRules(msg ethereum.CallMsg) error {
	kleekABI := bindings.NewKleek().ABI()
	create := kleekABI.Methods["create"]
	if len(msg.Data) < 4 || string(msg.Data[:4]) != string(create.ID) {
		return nil
	}
	args, err := create.Inputs.Unpack(msg.Data[4:])
	if err != nil {
		return revertWithData(nil)
	}
	start, end := args[1].(*big.Int), args[2].(*big.Int)
	if start.Cmp(end) > 0 {
		return revertWithData(errorString("Kleek: start date after end date"))
	}
	return nil
}

// staticArtifacts serves the built-in ABIs plus optional bytecode
type staticArtifacts struct {
	bytecode map[string][]byte
	calls    int
}

func (s *staticArtifacts) Get(ctx context.Context, name string) (*domain.Artifact, error) {
	s.calls++
	parsed := bindings.Builtin(name)
	if parsed == nil {
		return nil, domain.ErrUnknownInterface
	}
	return &domain.Artifact{Name: name, ABI: parsed, Bytecode: s.bytecode[name]}, nil
}
