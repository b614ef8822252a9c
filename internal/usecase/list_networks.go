package usecase

import (
	"context"
	"log/slog"

	"github.com/kleek-protocol/kleek-deploy/internal/domain/config"
)

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	// Check dials every resolvable network and compares its chain ID
	Check bool
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
}

// NetworkStatus represents the status of a network
type NetworkStatus struct {
	Name        string
	ChainID     uint64
	ExplorerURL string
	Current     bool
	Error       error

	// Set only when checked
	Checked   bool
	HeadBlock uint64
}

// ListNetworks is a use case for listing available networks
type ListNetworks struct {
	config   *config.RuntimeConfig
	resolver NetworkResolver
	checker  BlockchainChecker
	log      *slog.Logger
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(cfg *config.RuntimeConfig, resolver NetworkResolver, checker BlockchainChecker, log *slog.Logger) *ListNetworks {
	return &ListNetworks{
		config:   cfg,
		resolver: resolver,
		checker:  checker,
		log:      log.With("component", "ListNetworks"),
	}
}

// Run executes the use case. Networks that fail to resolve (usually an unset
// ${VAR} in the RPC URL) are listed with their error rather than failing the listing.
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	networkNames := uc.resolver.GetNetworks(ctx)

	networks := make([]NetworkStatus, 0, len(networkNames))
	for _, name := range networkNames {
		status := NetworkStatus{
			Name:    name,
			Current: name == uc.config.NetworkName,
		}

		info, err := uc.resolver.ResolveNetwork(ctx, name)
		if err != nil {
			status.Error = err
		} else {
			status.ChainID = info.ChainID
			status.ExplorerURL = info.ExplorerURL
			if params.Check {
				uc.check(ctx, &status, info)
			}
		}

		networks = append(networks, status)
	}

	if params.Check {
		uc.checker.Close()
	}

	return &ListNetworksResult{
		Networks: networks,
	}, nil
}

func (uc *ListNetworks) check(ctx context.Context, status *NetworkStatus, network *config.Network) {
	status.Checked = true
	head, err := uc.checker.Connect(ctx, network.RPCURL, network.ChainID)
	if err != nil {
		uc.log.Debug("network check failed", "network", network.Name, "error", err)
		status.Error = err
		return
	}
	status.HeadBlock = head
}
