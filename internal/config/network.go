package config

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/kleek-protocol/kleek-deploy/internal/domain/config"
)

// builtinNetworks are available without any kleek.toml entry
var builtinNetworks = map[string]config.NetworkConfig{
	"base": {
		RPCURL:      "https://base-mainnet.g.alchemy.com/v2/${ALCHEMY_API_KEY}",
		ChainID:     8453,
		ExplorerURL: "https://basescan.org",
		VerifierURL: "https://api.basescan.org/api",
	},
	"base_sepolia": {
		RPCURL:      "https://base-sepolia.g.alchemy.com/v2/${ALCHEMY_API_KEY}",
		ChainID:     84532,
		ExplorerURL: "https://sepolia.basescan.org",
		VerifierURL: "https://api-sepolia.basescan.org/api",
	},
	"localhost": {
		RPCURL:  "http://127.0.0.1:8545",
		ChainID: 31337,
	},
}

// envVarPattern matches ${VAR_NAME} references in configured values
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// NetworkResolver resolves network names against kleek.toml and the built-in networks
type NetworkResolver struct {
	networks map[string]config.NetworkConfig
}

// NewNetworkResolver creates a resolver; kleek.toml entries override built-ins field by field
func NewNetworkResolver(project *config.ProjectConfig) *NetworkResolver {
	networks := make(map[string]config.NetworkConfig, len(builtinNetworks))
	for name, network := range builtinNetworks {
		networks[name] = network
	}

	if project != nil {
		for name, override := range project.Networks {
			merged := networks[name]
			if override.RPCURL != "" {
				merged.RPCURL = override.RPCURL
			}
			if override.ChainID != 0 {
				merged.ChainID = override.ChainID
			}
			if override.ExplorerURL != "" {
				merged.ExplorerURL = override.ExplorerURL
			}
			if override.VerifierURL != "" {
				merged.VerifierURL = override.VerifierURL
			}
			networks[name] = merged
		}
	}

	return &NetworkResolver{networks: networks}
}

// GetNetworks returns all known network names, sorted
func (r *NetworkResolver) GetNetworks() []string {
	names := lo.Keys(r.networks)
	sort.Strings(names)
	return names
}

// Resolve expands and validates a network's configuration
func (r *NetworkResolver) Resolve(networkName string) (*config.Network, error) {
	raw, ok := r.networks[networkName]
	if !ok {
		return nil, fmt.Errorf("unknown network %q (known: %s)", networkName, strings.Join(r.GetNetworks(), ", "))
	}

	rpcURL, err := expandEnv(raw.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("network %s: rpc_url %w", networkName, err)
	}
	explorerURL, err := expandEnv(raw.ExplorerURL)
	if err != nil {
		return nil, fmt.Errorf("network %s: explorer_url %w", networkName, err)
	}

	verifierURL, err := expandEnv(raw.VerifierURL)
	if err != nil {
		return nil, fmt.Errorf("network %s: verifier_url %w", networkName, err)
	}

	network := &config.Network{
		Name:        networkName,
		ChainID:     raw.ChainID,
		RPCURL:      rpcURL,
		ExplorerURL: strings.TrimSuffix(explorerURL, "/"),
		VerifierURL: verifierURL,
	}
	if err := validate.Struct(network); err != nil {
		return nil, fmt.Errorf("network %s: %w", networkName, validationError(err))
	}
	return network, nil
}

// expandEnv substitutes ${VAR} references and fails on unset variables, so a
// missing API key is reported by name instead of producing a broken URL
func expandEnv(value string) (string, error) {
	var missing []string
	for _, match := range envVarPattern.FindAllStringSubmatch(value, -1) {
		if _, ok := os.LookupEnv(match[1]); !ok {
			missing = append(missing, match[1])
		}
	}
	if len(missing) > 0 {
		return "", fmt.Errorf("references unset environment variable(s): %s", strings.Join(lo.Uniq(missing), ", "))
	}
	return os.ExpandEnv(value), nil
}
