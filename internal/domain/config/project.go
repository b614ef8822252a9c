package config

// ProjectConfig represents kleek.toml
type ProjectConfig struct {
	Networks  map[string]NetworkConfig `toml:"networks"`
	Contracts ContractsConfig          `toml:"contracts"`
	Artifacts ArtifactsConfig          `toml:"artifacts"`
}

// NetworkConfig is a [networks.<name>] table. Values may contain ${VAR} references.
type NetworkConfig struct {
	RPCURL      string `toml:"rpc_url"`
	ChainID     uint64 `toml:"chain_id"`
	ExplorerURL string `toml:"explorer_url,omitempty"`
	VerifierURL string `toml:"verifier_url,omitempty"`
}

// ContractsConfig holds the addresses of already deployed contracts
type ContractsConfig struct {
	Kleek           string `toml:"kleek,omitempty"`
	ShareDeposit    string `toml:"share_deposit,omitempty"`
	ConditionModule string `toml:"condition_module,omitempty"`
	Token           string `toml:"token,omitempty"`
}

// ArtifactsConfig lists directories containing compiled contract artifacts
type ArtifactsConfig struct {
	Paths []string `toml:"paths,omitempty"`
}

// DefaultArtifactPaths are searched when kleek.toml does not set [artifacts].paths
func DefaultArtifactPaths() []string {
	// Hardhat first, then Foundry
	return []string{"artifacts", "out"}
}
