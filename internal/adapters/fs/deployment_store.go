package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/samber/lo"

	"github.com/kleek-protocol/kleek-deploy/internal/domain"
	"github.com/kleek-protocol/kleek-deploy/internal/domain/config"
	"github.com/kleek-protocol/kleek-deploy/internal/usecase"
)

const DeploymentsFile = "deployments.json"

// DeploymentStore keeps recorded deployments in <data dir>/deployments.json
type DeploymentStore struct {
	path        string
	mu          sync.Mutex
	loaded      bool
	deployments map[string]*domain.Deployment
}

// NewDeploymentStore creates a store under the configured data directory.
// Nothing is read or created until first use.
func NewDeploymentStore(cfg *config.RuntimeConfig) *DeploymentStore {
	return &DeploymentStore{
		path:        filepath.Join(cfg.DataDir, DeploymentsFile),
		deployments: make(map[string]*domain.Deployment),
	}
}

// DeploymentID builds the registry key for a deployment
func DeploymentID(d *domain.Deployment) string {
	return fmt.Sprintf("%d/%s:%s", d.ChainID, d.Contract, strings.ToLower(d.Address.Hex()))
}

// Save records a deployment, replacing any entry with the same ID
func (s *DeploymentStore) Save(ctx context.Context, deployment *domain.Deployment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return err
	}

	if deployment.ID == "" {
		deployment.ID = DeploymentID(deployment)
	}
	s.deployments[deployment.ID] = deployment

	return s.save()
}

// List returns deployments matching the filter, oldest first
func (s *DeploymentStore) List(ctx context.Context, filter domain.DeploymentFilter) ([]*domain.Deployment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return nil, err
	}

	result := lo.Filter(lo.Values(s.deployments), func(d *domain.Deployment, _ int) bool {
		if filter.ChainID != 0 && d.ChainID != filter.ChainID {
			return false
		}
		if filter.Contract != "" && !strings.EqualFold(d.Contract, filter.Contract) {
			return false
		}
		return true
	})

	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}

// Latest returns the most recent deployment of a contract on a chain. Implementations
// behind a proxy are skipped: the proxy is the address callers use.
func (s *DeploymentStore) Latest(ctx context.Context, chainID uint64, contract string) (*domain.Deployment, error) {
	deployments, err := s.List(ctx, domain.DeploymentFilter{ChainID: chainID, Contract: contract})
	if err != nil {
		return nil, err
	}
	deployments = lo.Reject(deployments, func(d *domain.Deployment, _ int) bool {
		return d.Kind == domain.ImplementationDeployment
	})
	if len(deployments) == 0 {
		return nil, fmt.Errorf("%w: no %s deployment recorded for chain %d", domain.ErrNotFound, contract, chainID)
	}
	return deployments[len(deployments)-1], nil
}

// load reads the registry file once. A missing file is an empty registry.
func (s *DeploymentStore) load() error {
	if s.loaded {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.loaded = true
			return nil
		}
		return fmt.Errorf("failed to read deployments: %w", err)
	}

	if err := json.Unmarshal(data, &s.deployments); err != nil {
		return fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	// a file holding null decodes to a nil map
	if s.deployments == nil {
		s.deployments = make(map[string]*domain.Deployment)
	}
	s.loaded = true
	return nil
}

func (s *DeploymentStore) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(s.deployments, "", "  ")
	if err != nil {
		return err
	}

	// Write to temp file first
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write deployments: %w", err)
	}

	// Atomic rename
	return os.Rename(tmpPath, s.path)
}

// Ensure the adapter implements the interface
var _ usecase.DeploymentRepository = (*DeploymentStore)(nil)
