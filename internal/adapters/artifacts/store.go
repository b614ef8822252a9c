package artifacts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/kleek-protocol/kleek-deploy/internal/adapters/abi/bindings"
	"github.com/kleek-protocol/kleek-deploy/internal/domain/config"
	"github.com/kleek-protocol/kleek-deploy/internal/domain"
	"github.com/kleek-protocol/kleek-deploy/internal/usecase"
)

// Store indexes Hardhat (artifacts/) and Foundry (out/) compilation output by contract name
type Store struct {
	roots   []string
	log     *slog.Logger
	indexed bool
	byName  map[string]*domain.Artifact
}

// NewStore creates a store over the configured artifact directories
func NewStore(cfg *config.RuntimeConfig, log *slog.Logger) *Store {
	paths := cfg.Project.Artifacts.Paths
	if len(paths) == 0 {
		paths = config.DefaultArtifactPaths()
	}

	roots := make([]string, 0, len(paths))
	for _, p := range paths {
		if !filepath.IsAbs(p) {
			p = filepath.Join(cfg.ProjectRoot, p)
		}
		roots = append(roots, p)
	}

	return &Store{
		roots:  roots,
		log:    log.With("component", "artifacts"),
		byName: make(map[string]*domain.Artifact),
	}
}

// Get returns the artifact for a contract name. Compiled artifacts win over the
// bundled ABIs; a bundled ABI has no bytecode.
func (s *Store) Get(ctx context.Context, name string) (*domain.Artifact, error) {
	if err := s.index(); err != nil {
		return nil, err
	}

	if artifact, ok := s.byName[name]; ok {
		return artifact, nil
	}

	if builtin := bindings.Builtin(name); builtin != nil {
		return &domain.Artifact{Name: name, Source: "builtin", ABI: builtin}, nil
	}

	return nil, fmt.Errorf("%w: %s", domain.ErrUnknownInterface, name)
}

// index walks every root once
func (s *Store) index() error {
	if s.indexed {
		return nil
	}
	s.indexed = true

	for _, root := range s.roots {
		if _, err := os.Stat(root); err != nil {
			continue
		}
		err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if d.Name() == "build-info" {
					return filepath.SkipDir
				}
				return nil
			}
			if filepath.Ext(path) != ".json" || strings.HasSuffix(path, ".dbg.json") {
				return nil
			}

			artifact, err := parseArtifact(path)
			if err != nil {
				s.log.Debug("skipping artifact", "path", path, "error", err)
				return nil
			}
			if artifact == nil {
				return nil
			}
			if existing, ok := s.byName[artifact.Name]; ok {
				s.log.Debug("duplicate artifact name, keeping first", "name", artifact.Name, "kept", existing.Path, "skipped", path)
				return nil
			}
			s.byName[artifact.Name] = artifact
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to index artifacts in %s: %w", root, err)
		}
	}

	s.log.Debug("indexed artifacts", "count", len(s.byName), "roots", s.roots)
	return nil
}

// rawArtifact covers both layouts: Hardhat stores bytecode as a hex string,
// Foundry as {"object": "0x..."}.
type rawArtifact struct {
	ContractName string          `json:"contractName"`
	SourceName   string          `json:"sourceName"`
	ABI          json.RawMessage `json:"abi"`
	Bytecode     json.RawMessage `json:"bytecode"`
	Metadata     json.RawMessage `json:"metadata"`
}

// parseArtifact returns nil, nil for JSON files that are not contract artifacts
func parseArtifact(path string) (*domain.Artifact, error) {
	data, err := os.ReadFile(path) //nolint:gosec // artifact path from configured directories
	if err != nil {
		return nil, err
	}

	var raw rawArtifact
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil
	}
	if len(raw.ABI) == 0 {
		return nil, nil
	}

	parsed, err := abi.JSON(bytes.NewReader(raw.ABI))
	if err != nil {
		return nil, fmt.Errorf("invalid ABI: %w", err)
	}

	name := raw.ContractName
	source := raw.SourceName
	if name == "" {
		name, source = foundryTarget(raw.Metadata)
	}
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), ".json")
	}

	code, err := decodeBytecode(raw.Bytecode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return &domain.Artifact{
		Name:     name,
		Source:   source,
		Path:     path,
		ABI:      &parsed,
		Bytecode: code,
	}, nil
}

func foundryTarget(metadata json.RawMessage) (string, string) {
	if len(metadata) == 0 || metadata[0] != '{' {
		return "", ""
	}
	var meta struct {
		Settings struct {
			CompilationTarget map[string]string `json:"compilationTarget"`
		} `json:"settings"`
	}
	if err := json.Unmarshal(metadata, &meta); err != nil {
		return "", ""
	}
	for source, contract := range meta.Settings.CompilationTarget {
		return contract, source
	}
	return "", ""
}

func decodeBytecode(raw json.RawMessage) ([]byte, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var hexCode string
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &hexCode); err != nil {
			return nil, err
		}
	} else {
		var obj struct {
			Object string `json:"object"`
		}
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, err
		}
		hexCode = obj.Object
	}

	if hexCode == "" || hexCode == "0x" {
		return nil, nil
	}
	if !strings.HasPrefix(hexCode, "0x") {
		hexCode = "0x" + hexCode
	}
	if strings.Contains(hexCode, "__") {
		return nil, fmt.Errorf("bytecode has unlinked library references")
	}
	return hexutil.Decode(hexCode)
}

// Ensure the adapter implements the interface
var _ usecase.ArtifactStore = (*Store)(nil)
