package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"dores/internal/models"
	"dores/internal/repositories"
)

// ErrAddressIDRequired signals an address update without a persisted id.
var ErrAddressIDRequired = errors.New("address id is required for updates")

// AddressService manages the user's delivery addresses.
type AddressService struct {
	addressRepo repositories.AddressRepository
	validate    *validator.Validate
}

// NewAddressService creates a new AddressService.
func NewAddressService(addressRepo repositories.AddressRepository) *AddressService {
	return &AddressService{
		addressRepo: addressRepo,
		validate:    validator.New(),
	}
}

// GetAllAddresses lists the user's delivery addresses.
func (s *AddressService) GetAllAddresses(ctx context.Context) ([]models.Address, error) {
	return s.addressRepo.GetAllAddresses(ctx)
}

// DefaultAddress returns the address flagged as default, falling back to
// the first one. At most one address should carry the flag, but the backend
// does not enforce it, so the first flagged one wins.
func (s *AddressService) DefaultAddress(ctx context.Context) (*models.Address, error) {
	addresses, err := s.addressRepo.GetAllAddresses(ctx)
	if err != nil {
		return nil, err
	}
	if len(addresses) == 0 {
		return nil, nil
	}

	for i := range addresses {
		if addresses[i].IsDefault {
			return &addresses[i], nil
		}
	}
	return &addresses[0], nil
}

// AddAddress creates a new delivery address after validating its
// coordinates.
func (s *AddressService) AddAddress(ctx context.Context, data models.AddressData) (*models.Address, error) {
	data.ID = 0
	if err := s.validate.Struct(data); err != nil {
		return nil, fmt.Errorf("invalid address: %w", err)
	}
	return s.addressRepo.CreateOrUpdateAddress(ctx, data)
}

// UpdateAddress updates an existing delivery address; the id must be set.
func (s *AddressService) UpdateAddress(ctx context.Context, data models.AddressData) (*models.Address, error) {
	if data.ID == 0 {
		return nil, ErrAddressIDRequired
	}
	if err := s.validate.Struct(data); err != nil {
		return nil, fmt.Errorf("invalid address: %w", err)
	}
	return s.addressRepo.CreateOrUpdateAddress(ctx, data)
}

// DeleteAddress removes a delivery address.
func (s *AddressService) DeleteAddress(ctx context.Context, addressID int) error {
	return s.addressRepo.DeleteAddress(ctx, addressID)
}
