package impl

import (
	"context"
	"log/slog"
	"time"

	"homiio/internal/domain/entity"
	domainerrors "homiio/internal/domain/errors"
	"homiio/internal/domain/repository"
	"homiio/internal/domain/service"
	"homiio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// propertyService implements the PropertyUsecase interface.
type propertyService struct {
	txManager     repository.TransactionManager
	qrcodeService service.QRCodeService
	logger        *slog.Logger
}

// PropertyServiceParams holds dependencies for propertyService, injected by Fx.
type PropertyServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewPropertyService is the constructor for propertyService.
func NewPropertyService(params PropertyServiceParams) usecase.PropertyUsecase {
	return &propertyService{
		txManager:     params.TxManager,
		qrcodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

// CreateProperty resolves the submitted address and publishes a listing
// referencing the canonical record. Address resolution and listing creation
// commit or roll back together.
func (srv *propertyService) CreateProperty(ctx context.Context, ownerID uuid.UUID, input *usecase.CreatePropertyInput) (*entity.Property, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("property input is required")
	}

	var created *entity.Property

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if !input.Address.HasCoordinates() {
			return domainerrors.ErrCoordinatesRequired
		}

		address, err := resolveCanonicalAddress(ctx, repoFactory.AddressRepo(), &input.Address, srv.logger)
		if err != nil {
			return err
		}

		now := time.Now()
		property := &entity.Property{
			ID:          uuid.New(),
			OwnerID:     ownerID,
			AddressID:   address.ID,
			Title:       input.Title,
			Description: input.Description,
			RentAmount:  input.RentAmount,
			Currency:    input.Currency,
			Status:      entity.PropertyStatusActive,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		if err := repoFactory.PropertyRepo().CreateProperty(ctx, property); err != nil {
			return errors.Wrap(err, "failed to create property")
		}

		created = property

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Published property listing",
		slog.String("propertyID", created.ID.String()),
		slog.String("ownerID", ownerID.String()),
	)

	return created, nil
}

// GetProperty retrieves a listing by its ID.
func (srv *propertyService) GetProperty(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	var found *entity.Property

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		found, err = repoFactory.PropertyRepo().FindPropertyByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrPropertyNotFound) {
				return errors.Wrap(domainerrors.ErrPropertyNotFound, "property not found")
			}

			return errors.Wrap(err, "failed to find property")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

// GenerateShareQR renders a QR code for an existing listing. The listing is
// verified first so the code never points at a missing property.
func (srv *propertyService) GenerateShareQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := srv.GetProperty(ctx, id); err != nil {
		return nil, err
	}

	qrCode, err := srv.qrcodeService.GenerateShareQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share QR")
	}

	return qrCode, nil
}
