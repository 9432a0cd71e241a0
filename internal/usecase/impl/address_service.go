// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"homiio/internal/domain/entity"
	domainerrors "homiio/internal/domain/errors"
	"homiio/internal/domain/repository"
	"homiio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// AddressServiceParams holds dependencies for addressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

// ResolveAddress normalizes the submission and returns the canonical address,
// creating it on first sight.
func (srv *addressService) ResolveAddress(ctx context.Context, input *entity.AddressInput) (*entity.Address, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("address input is required")
	}
	if !input.HasCoordinates() {
		return nil, domainerrors.ErrCoordinatesRequired
	}

	var resolved *entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		resolved, err = resolveCanonicalAddress(ctx, repoFactory.AddressRepo(), input, srv.logger)

		return err
	})
	if err != nil {
		return nil, err
	}

	return resolved, nil
}

// GetAddress retrieves a canonical address by its ID.
func (srv *addressService) GetAddress(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	var found *entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		found, err = repoFactory.AddressRepo().FindAddressByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return errors.Wrap(domainerrors.ErrAddressNotFound, "address not found")
			}

			return errors.Wrap(err, "failed to find address")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

// resolveCanonicalAddress is the find-or-create core shared with the property
// flow, which resolves addresses inside its own transaction.
//
// The lookup-insert-lookup sequence handles the concurrent-first-save race:
// when two submissions of the same address arrive at once, one insert wins
// and the loser's duplicate-key error is resolved by re-reading the winner's
// record. The unique index on the normalized key is the real guarantee; the
// first lookup only saves an insert attempt in the common case.
func resolveCanonicalAddress(ctx context.Context, addressRepo repository.AddressRepository, input *entity.AddressInput, logger *slog.Logger) (*entity.Address, error) {
	normalized := input.Normalize()
	key := normalized.ComputeNormalizedKey()

	existing, err := addressRepo.FindAddressByNormalizedKey(ctx, key)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrAddressNotFound) {
		return nil, errors.Wrap(err, "failed to find address by normalized key")
	}

	now := time.Now()
	normalized.ID = uuid.New()
	normalized.NormalizedKey = key
	normalized.CreatedAt = now
	normalized.UpdatedAt = now

	err = addressRepo.CreateAddress(ctx, &normalized)
	if err == nil {
		logger.Info("Created canonical address",
			slog.String("addressID", normalized.ID.String()),
			slog.String("city", normalized.City),
		)

		return &normalized, nil
	}
	if !errors.Is(err, repository.ErrDuplicateAddressKey) {
		return nil, errors.Wrap(err, "failed to create address")
	}

	// Lost the insert race; the winner's record is authoritative.
	winner, err := addressRepo.FindAddressByNormalizedKey(ctx, key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find address after duplicate key")
	}

	return winner, nil
}
