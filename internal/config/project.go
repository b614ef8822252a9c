package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/kleek-protocol/kleek-deploy/internal/domain/config"
)

// ProjectFile is the optional project configuration at the project root
const ProjectFile = "kleek.toml"

// loadDotEnv loads .env.local then .env. godotenv never overrides variables that are
// already set, so the real environment wins, then .env.local, then .env.
func loadDotEnv(projectRoot string) {
	for _, name := range []string{".env.local", ".env"} {
		envFile := filepath.Join(projectRoot, name)
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			// Log warning but don't fail
			fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
		}
	}
}

// LoadProjectConfig reads kleek.toml. A missing file yields the defaults.
func LoadProjectConfig(projectRoot string) (*config.ProjectConfig, error) {
	project := &config.ProjectConfig{
		Networks: make(map[string]config.NetworkConfig),
	}

	path := filepath.Join(projectRoot, ProjectFile)
	if _, err := os.Stat(path); err == nil {
		meta, err := toml.DecodeFile(path, project)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", ProjectFile, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			fmt.Fprintf(os.Stderr, "Warning: unknown keys in %s: %v\n", ProjectFile, undecoded)
		}
	}

	if len(project.Artifacts.Paths) == 0 {
		project.Artifacts.Paths = config.DefaultArtifactPaths()
	}

	// Contract addresses may reference variables too
	contracts := &project.Contracts
	for _, field := range []*string{&contracts.Kleek, &contracts.ShareDeposit, &contracts.ConditionModule, &contracts.Token} {
		expanded, err := expandEnv(*field)
		if err != nil {
			return nil, fmt.Errorf("%s [contracts]: %w", ProjectFile, err)
		}
		*field = expanded
	}

	return project, nil
}
