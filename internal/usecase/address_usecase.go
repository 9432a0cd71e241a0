// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"homiio/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressUsecase resolves loosely-shaped address submissions to canonical
// address records. Resolution is find-or-create: two submissions describing
// the same place converge to the same record.
type AddressUsecase interface {
	// ResolveAddress normalizes the input, computes its deduplication key
	// and returns the canonical address, creating it on first sight.
	// Coordinates are mandatory; submissions without both components are
	// rejected before any persistence happens.
	ResolveAddress(ctx context.Context, input *entity.AddressInput) (*entity.Address, error)

	// GetAddress retrieves a canonical address by its ID.
	GetAddress(ctx context.Context, id uuid.UUID) (*entity.Address, error)
}
