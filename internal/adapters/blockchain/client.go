package blockchain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/kleek-protocol/kleek-deploy/internal/domain"
	"github.com/kleek-protocol/kleek-deploy/internal/domain/config"
)

// ChainBackend is the node surface used for submitting and confirming transactions
type ChainBackend interface {
	bind.ContractBackend
	bind.DeployBackend
	BlockNumber(ctx context.Context) (uint64, error)
	ChainID(ctx context.Context) (*big.Int, error)
}

// Client holds the connection to the configured network and the signing key.
// The connection is opened on first use so commands that never transact do not dial.
type Client struct {
	cfg      *config.RuntimeConfig
	log      *slog.Logger
	backend  ChainBackend
	verified bool
	key      *ecdsa.PrivateKey
}

// NewClient creates a client for the configured network
func NewClient(cfg *config.RuntimeConfig, log *slog.Logger) *Client {
	return &Client{
		cfg: cfg,
		log: log.With("component", "chain"),
	}
}

// NewClientWithBackend creates a client over an already connected backend.
// The chain ID check still runs on first use.
func NewClientWithBackend(cfg *config.RuntimeConfig, backend ChainBackend, log *slog.Logger) *Client {
	c := NewClient(cfg, log)
	c.backend = backend
	return c
}

// Backend returns the connected backend, dialing and verifying the chain ID on first call
func (c *Client) Backend(ctx context.Context) (ChainBackend, error) {
	network := c.cfg.Network
	if network == nil {
		return nil, fmt.Errorf("no network configured")
	}
	if c.verified {
		return c.backend, nil
	}

	backend := c.backend
	if backend == nil {
		c.log.Debug("dialing rpc", "network", network.Name)
		client, err := ethclient.DialContext(ctx, network.RPCURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to %s: %w", network.Name, err)
		}
		backend = client
	}

	// Verify chain ID matches
	chainID, err := backend.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID from %s: %w", network.Name, err)
	}
	if chainID.Uint64() != network.ChainID {
		return nil, fmt.Errorf("%w: %s expects chain %d, endpoint serves %d",
			domain.ErrNetworkMismatch, network.Name, network.ChainID, chainID.Uint64())
	}

	c.backend = backend
	c.verified = true
	return backend, nil
}

// Sender returns the address of the configured signing key
func (c *Client) Sender() (common.Address, error) {
	key, err := c.signingKey()
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(key.PublicKey), nil
}

// TransactOpts builds signing options for the configured chain
func (c *Client) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	if c.cfg.Network == nil {
		return nil, fmt.Errorf("no network configured")
	}
	key, err := c.signingKey()
	if err != nil {
		return nil, err
	}

	from := crypto.PubkeyToAddress(key.PublicKey)
	signer := types.LatestSignerForChainID(new(big.Int).SetUint64(c.cfg.Network.ChainID))

	return &bind.TransactOpts{
		From:    from,
		Context: ctx,
		Signer: func(address common.Address, tx *types.Transaction) (*types.Transaction, error) {
			if address != from {
				return nil, fmt.Errorf("not authorized to sign for %s", address.Hex())
			}
			return types.SignTx(tx, signer, key)
		},
	}, nil
}

func (c *Client) signingKey() (*ecdsa.PrivateKey, error) {
	if c.key != nil {
		return c.key, nil
	}
	if c.cfg.PrivateKey == "" {
		return nil, domain.ErrNoSigner
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimPrefix(c.cfg.PrivateKey, "0x"), "0X"))
	if err != nil {
		// never echo the key material
		return nil, errors.New("invalid private key")
	}
	c.key = key
	return key, nil
}
