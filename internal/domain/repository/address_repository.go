// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"homiio/internal/domain/entity"
	"homiio/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for address persistence.
var (
	// ErrAddressNotFound is returned when an address is not found.
	ErrAddressNotFound = errors.New("address not found")
	// ErrDuplicateAddressKey is returned when an insert collides with an
	// existing normalized key. Callers treat it as "someone else just
	// created it" and retry the lookup.
	ErrDuplicateAddressKey = errors.New("address with the same normalized key already exists")
)

// AddressRepository defines the interface for canonical-address database operations.
// The normalized-key unique index is the actual deduplication guarantee; the
// find-before-create in the resolver is only an optimization.
type AddressRepository interface {
	// CreateAddress persists a new canonical address. Returns
	// ErrDuplicateAddressKey when the normalized key is already taken.
	CreateAddress(ctx context.Context, address *entity.Address) error

	// FindAddressByID retrieves an address by its unique ID.
	FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindAddressByNormalizedKey retrieves the canonical address for a
	// deduplication key. Returns ErrAddressNotFound on a miss.
	FindAddressByNormalizedKey(ctx context.Context, key string) (*entity.Address, error)
}
