package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/kleek-protocol/kleek-deploy/internal/domain/config"
)

// DataDirName holds the deployment registry and local config, relative to the project root
const DataDirName = ".kleek"

// projectMarkers identify a project root, checked in order in each directory
var projectMarkers = []string{ProjectFile, "hardhat.config.js", "hardhat.config.ts", "foundry.toml"}

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	// Load .env files first for variable expansion
	loadDotEnv(projectRoot)

	project, err := LoadProjectConfig(projectRoot)
	if err != nil {
		return nil, err
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:     projectRoot,
		DataDir:         filepath.Join(projectRoot, DataDirName),
		NetworkName:     v.GetString("network"),
		PrivateKey:      envFallback(v, "private_key", "PRIVATE_KEY"),
		EtherscanAPIKey: envFallback(v, "etherscan_api_key", "ETHERSCAN_API_KEY"),
		Debug:           v.GetBool("debug"),
		NonInteractive:  v.GetBool("non_interactive"),
		Timeout:         v.GetDuration("timeout"),
		ConfirmTimeout:  v.GetDuration("confirm_timeout"),
		Confirmations:   v.GetUint64("confirmations"),
		Project:         project,
	}

	// Offline commands (encode, listings) run without a reachable or even fully configured network
	if cfg.NetworkName != "" {
		network, err := NewNetworkResolver(project).Resolve(cfg.NetworkName)
		if err != nil && !v.GetBool("offline") {
			return nil, fmt.Errorf("failed to resolve network %s: %w", cfg.NetworkName, err)
		}
		cfg.Network = network
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, validationError(err)
	}

	return cfg, nil
}

// envFallback reads a KLEEK_-prefixed setting, falling back to the conventional
// unprefixed variable (PRIVATE_KEY, ETHERSCAN_API_KEY)
func envFallback(v *viper.Viper, key, env string) string {
	if value := v.GetString(key); value != "" {
		return value
	}
	return os.Getenv(env)
}

// ProvideNetworkResolver provides the network resolver for the loaded project
func ProvideNetworkResolver(cfg *config.RuntimeConfig) *NetworkResolver {
	return NewNetworkResolver(cfg.Project)
}

// FindProjectRoot walks up from the current directory to the first directory
// holding kleek.toml or a Hardhat/Foundry project file
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findProjectRootFrom(dir)
}

func findProjectRootFrom(dir string) (string, error) {
	for {
		for _, marker := range projectMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a kleek project (none of %s found)", strings.Join(projectMarkers, ", "))
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up config file
	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, DataDirName))

	// Set up environment variables
	v.SetEnvPrefix("KLEEK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("network", "base_sepolia")
	v.SetDefault("timeout", "5m")
	v.SetDefault("confirm_timeout", "2m")
	v.SetDefault("confirmations", 1)
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("project_root", projectRoot)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if !f.Changed {
				return
			}
			if err := v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f); err != nil {
				panic(err)
			}
		})
	}

	return v
}
