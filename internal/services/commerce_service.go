package services

import (
	"context"
	"log"

	"dores/internal/models"
	"dores/internal/repositories"
	"dores/pkg/storage"
)

// CommerceService exposes commerce browsing. Lookups that are reachable
// before login pass the stored access token when one exists and fall back
// to an anonymous call otherwise.
type CommerceService struct {
	commerceRepo repositories.CommerceRepository
	store        storage.Store
}

// NewCommerceService creates a new CommerceService.
func NewCommerceService(commerceRepo repositories.CommerceRepository, store storage.Store) *CommerceService {
	return &CommerceService{
		commerceRepo: commerceRepo,
		store:        store,
	}
}

// GetAllCommerces lists commerces for the authenticated user.
func (s *CommerceService) GetAllCommerces(ctx context.Context) ([]models.Commerce, error) {
	return s.commerceRepo.GetAllCommerces(ctx)
}

// GetCommerceByID fetches a single commerce.
func (s *CommerceService) GetCommerceByID(ctx context.Context, commerceID int) (*models.Commerce, error) {
	return s.commerceRepo.GetCommerceByID(ctx, commerceID, s.storedToken())
}

// GetCommercesByProduct lists the commerces offering a product.
func (s *CommerceService) GetCommercesByProduct(ctx context.Context, productID int) ([]models.Commerce, error) {
	return s.commerceRepo.GetCommercesByProduct(ctx, productID, s.storedToken())
}

// SearchCommerces runs a free-text commerce search.
func (s *CommerceService) SearchCommerces(ctx context.Context, query string) ([]models.Commerce, error) {
	return s.commerceRepo.SearchCommerces(ctx, query)
}

// GetCommercesByCategory lists commerces belonging to a category.
func (s *CommerceService) GetCommercesByCategory(ctx context.Context, categoryID int) ([]models.Commerce, error) {
	return s.commerceRepo.GetCommercesByCategory(ctx, categoryID)
}

func (s *CommerceService) storedToken() string {
	token, err := s.store.Get(storage.KeyAccessToken)
	if err != nil {
		log.Printf("Error reading stored token: %v", err)
		return ""
	}
	return token
}
