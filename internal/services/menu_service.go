package services

import (
	"context"
	"log"

	"dores/internal/models"
	"dores/internal/repositories"
	"dores/pkg/storage"
)

// MenuService exposes menu browsing.
type MenuService struct {
	menuRepo repositories.MenuRepository
	store    storage.Store
}

// NewMenuService creates a new MenuService.
func NewMenuService(menuRepo repositories.MenuRepository, store storage.Store) *MenuService {
	return &MenuService{
		menuRepo: menuRepo,
		store:    store,
	}
}

// GetAllMenus lists menus matching filters.
func (s *MenuService) GetAllMenus(ctx context.Context, filters repositories.MenuFilters) (*models.MenuPage, error) {
	return s.menuRepo.GetAllMenus(ctx, filters)
}

// GetMenusByCategory lists menus of a category, anonymously when no token
// is stored.
func (s *MenuService) GetMenusByCategory(ctx context.Context, categoryID int) (*models.MenuPage, error) {
	return s.menuRepo.GetMenusByCategory(ctx, categoryID, s.storedToken())
}

// GetMenusByCommerce lists the menus a commerce offers.
func (s *MenuService) GetMenusByCommerce(ctx context.Context, commerceID int) (*models.MenuPage, error) {
	return s.menuRepo.GetMenusByCommerce(ctx, commerceID)
}

// SearchMenus runs a free-text menu search.
func (s *MenuService) SearchMenus(ctx context.Context, query string) (*models.MenuPage, error) {
	return s.menuRepo.SearchMenus(ctx, query)
}

// GetAllCategories lists the menu categories.
func (s *MenuService) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	return s.menuRepo.GetAllCategories(ctx, s.storedToken())
}

func (s *MenuService) storedToken() string {
	token, err := s.store.Get(storage.KeyAccessToken)
	if err != nil {
		log.Printf("Error reading stored token: %v", err)
		return ""
	}
	return token
}
