package blockchain

import (
	"context"

	"github.com/kleek-protocol/kleek-deploy/internal/domain"
	"github.com/kleek-protocol/kleek-deploy/internal/usecase"
)

// Resolver binds contract interfaces to addresses. It never touches the network:
// a wrong address or interface only shows up when a call is made.
type Resolver struct {
	artifacts usecase.ArtifactStore
}

// NewResolver creates a new contract handle resolver
func NewResolver(artifacts usecase.ArtifactStore) *Resolver {
	return &Resolver{artifacts: artifacts}
}

// Resolve validates the address and looks up the named interface
func (r *Resolver) Resolve(ctx context.Context, name, address string) (*domain.ContractHandle, error) {
	addr, err := domain.ParseAddress(address)
	if err != nil {
		return nil, &domain.ResolutionError{Contract: name, Address: address, Err: err}
	}

	artifact, err := r.artifacts.Get(ctx, name)
	if err != nil {
		return nil, &domain.ResolutionError{Contract: name, Address: address, Err: err}
	}

	return &domain.ContractHandle{
		Name:    name,
		Address: addr,
		ABI:     artifact.ABI,
	}, nil
}

// Ensure the adapter implements the interface
var _ usecase.ContractResolver = (*Resolver)(nil)
