package usecase

import (
	"context"

	"homiio/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePropertyInput defines the data required to publish a new listing.
// The embedded address submission is resolved to a canonical address as part
// of the same transaction that creates the listing.
type CreatePropertyInput struct {
	Title       string              `json:"title" validate:"required"`
	Description string              `json:"description"`
	RentAmount  float64             `json:"rent_amount" validate:"required,gt=0"`
	Currency    string              `json:"currency" validate:"required,len=3"`
	Address     entity.AddressInput `json:"address"`
}

// PropertyUsecase defines the interface for property-listing use cases.
type PropertyUsecase interface {
	// CreateProperty resolves the submitted address and publishes a listing
	// referencing the canonical record, atomically.
	CreateProperty(ctx context.Context, ownerID uuid.UUID, input *CreatePropertyInput) (*entity.Property, error)

	// GetProperty retrieves a listing by its ID.
	GetProperty(ctx context.Context, id uuid.UUID) (*entity.Property, error)

	// GenerateShareQR renders a QR code pointing at the public share link
	// of an existing listing.
	GenerateShareQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}
