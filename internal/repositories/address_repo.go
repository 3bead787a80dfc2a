package repositories

import (
	"context"
	"fmt"

	"dores/internal/models"
	"dores/pkg/apiclient"
)

// AddressRepository defines the interface for delivery-address endpoints.
type AddressRepository interface {
	GetAllAddresses(ctx context.Context) ([]models.Address, error)
	CreateOrUpdateAddress(ctx context.Context, data models.AddressData) (*models.Address, error)
	DeleteAddress(ctx context.Context, addressID int) error
}

// APIAddressRepository implements AddressRepository against the remote API.
type APIAddressRepository struct {
	auth *apiclient.AuthClient
}

// NewAPIAddressRepository creates a new APIAddressRepository.
func NewAPIAddressRepository(auth *apiclient.AuthClient) *APIAddressRepository {
	return &APIAddressRepository{auth: auth}
}

// GetAllAddresses lists the user's delivery addresses.
func (r *APIAddressRepository) GetAllAddresses(ctx context.Context) ([]models.Address, error) {
	var addresses []models.Address
	if err := r.auth.GetWithAuth(ctx, "/pedidos/user/v1/get-all-deliverys-address", &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

// CreateOrUpdateAddress creates a delivery address, or updates the one
// identified by data.ID when it is set.
func (r *APIAddressRepository) CreateOrUpdateAddress(ctx context.Context, data models.AddressData) (*models.Address, error) {
	endpoint := "/pedidos/user/v1/update-or-create-deliverys-address"
	if data.ID != 0 {
		endpoint = fmt.Sprintf("%s?id-address=%d", endpoint, data.ID)
	}

	var address models.Address
	if err := r.auth.PutWithAuth(ctx, endpoint, data, &address); err != nil {
		return nil, err
	}
	return &address, nil
}

// DeleteAddress removes a delivery address.
func (r *APIAddressRepository) DeleteAddress(ctx context.Context, addressID int) error {
	endpoint := fmt.Sprintf("/pedidos/user/v1/delete-delivery-address?id-address=%d", addressID)
	return r.auth.DeleteWithAuth(ctx, endpoint, nil)
}
