package service

import (
	"context"
	"database/sql"
	"errors"

	appErrors "github.com/aaravmahajanofficial/vendor-marketplace/internal/errors"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	repository "github.com/aaravmahajanofficial/vendor-marketplace/internal/repositories"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/utils"
	"github.com/google/uuid"
)

type AddressService interface {
	CreateAddress(ctx context.Context, userID uuid.UUID, req *models.CreateAddressRequest) (*models.Address, error)
	GetAddress(ctx context.Context, userID, id uuid.UUID) (*models.Address, error)
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]*models.Address, error)
	UpdateAddress(ctx context.Context, userID, id uuid.UUID, req *models.UpdateAddressRequest) (*models.Address, error)
	DeleteAddress(ctx context.Context, userID, id uuid.UUID) error
}

type addressService struct {
	repo repository.AddressRepository
}

func NewAddressService(repo repository.AddressRepository) AddressService {
	return &addressService{repo: repo}
}

func (s *addressService) CreateAddress(ctx context.Context, userID uuid.UUID, req *models.CreateAddressRequest) (*models.Address, error) {

	address := &models.Address{
		UserID:         userID,
		Name:           utils.SanitizeText(req.Name),
		AddressLineOne: utils.SanitizeText(req.AddressLineOne),
		AddressLineTwo: utils.SanitizeText(req.AddressLineTwo),
		City:           utils.SanitizeText(req.City),
		Postcode:       utils.SanitizeText(req.Postcode),
		Country:        utils.SanitizeText(req.Country),
	}

	if err := s.repo.CreateAddress(ctx, address); err != nil {
		return nil, appErrors.FromStore(err, "Failed to create address")
	}

	return address, nil
}

func (s *addressService) GetAddress(ctx context.Context, userID, id uuid.UUID) (*models.Address, error) {

	address, err := s.repo.GetAddressByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Address not found").WithError(err)
		}
		return nil, appErrors.FromStore(err, "Failed to fetch address")
	}

	if address.UserID != userID {
		return nil, appErrors.ForbiddenError("You can only access your own addresses")
	}

	return address, nil
}

func (s *addressService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]*models.Address, error) {

	addresses, err := s.repo.ListAddressesByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.FromStore(err, "Failed to list addresses")
	}

	return addresses, nil
}

func (s *addressService) UpdateAddress(ctx context.Context, userID, id uuid.UUID, req *models.UpdateAddressRequest) (*models.Address, error) {

	if req.Empty() {
		return nil, appErrors.BadRequestError("At least one address field is required")
	}

	address, err := s.GetAddress(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	applyString(&address.Name, req.Name)
	applyString(&address.AddressLineOne, req.AddressLineOne)
	applyString(&address.AddressLineTwo, req.AddressLineTwo)
	applyString(&address.City, req.City)
	applyString(&address.Postcode, req.Postcode)
	applyString(&address.Country, req.Country)

	if err := s.repo.UpdateAddress(ctx, address); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Address not found").WithError(err)
		}
		return nil, appErrors.FromStore(err, "Failed to update address")
	}

	return address, nil
}

func (s *addressService) DeleteAddress(ctx context.Context, userID, id uuid.UUID) error {

	if _, err := s.GetAddress(ctx, userID, id); err != nil {
		return err
	}

	if err := s.repo.DeleteAddress(ctx, id, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFoundError("Address not found").WithError(err)
		}
		return appErrors.FromStore(err, "Failed to delete address")
	}

	return nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = utils.SanitizeText(*src)
	}
}
