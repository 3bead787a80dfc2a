package repositories

import (
	"context"
	"net/url"
	"strconv"

	"dores/internal/models"
	"dores/pkg/apiclient"
)

// MenuFilters narrows the menu listing.
type MenuFilters struct {
	PageNumber    int
	PageSize      int
	SortDirection string
	CommerceID    int
	CategoryID    int
	Search        string
}

func (f MenuFilters) query() url.Values {
	if f.PageSize == 0 {
		f.PageSize = 10
	}
	if f.SortDirection == "" {
		f.SortDirection = "DESC"
	}

	params := url.Values{}
	params.Set("page-number", strconv.Itoa(f.PageNumber))
	params.Set("page-size", strconv.Itoa(f.PageSize))
	params.Set("sort-direction", f.SortDirection)
	if f.CommerceID != 0 {
		params.Set("commerce-id", strconv.Itoa(f.CommerceID))
	}
	if f.CategoryID != 0 {
		params.Set("category-id", strconv.Itoa(f.CategoryID))
	}
	if f.Search != "" {
		params.Set("search", f.Search)
	}
	return params
}

// MenuRepository defines the interface for menu browsing.
type MenuRepository interface {
	GetAllMenus(ctx context.Context, filters MenuFilters) (*models.MenuPage, error)
	GetMenusByCategory(ctx context.Context, categoryID int, token string) (*models.MenuPage, error)
	GetMenusByCommerce(ctx context.Context, commerceID int) (*models.MenuPage, error)
	SearchMenus(ctx context.Context, query string) (*models.MenuPage, error)
	GetAllCategories(ctx context.Context, token string) ([]models.Category, error)
}

// APIMenuRepository implements MenuRepository against the remote API.
type APIMenuRepository struct {
	client *apiclient.Client
	auth   *apiclient.AuthClient
}

// NewAPIMenuRepository creates a new APIMenuRepository.
func NewAPIMenuRepository(client *apiclient.Client, auth *apiclient.AuthClient) *APIMenuRepository {
	return &APIMenuRepository{
		client: client,
		auth:   auth,
	}
}

const menuEndpoint = "/menus/user/v1/get-all-menus"

// GetAllMenus lists menus matching filters.
func (r *APIMenuRepository) GetAllMenus(ctx context.Context, filters MenuFilters) (*models.MenuPage, error) {
	var page models.MenuPage
	endpoint := menuEndpoint + "?" + filters.query().Encode()
	if err := r.auth.GetWithAuth(ctx, endpoint, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetMenusByCategory lists menus of a category. An empty token performs the
// call anonymously.
func (r *APIMenuRepository) GetMenusByCategory(ctx context.Context, categoryID int, token string) (*models.MenuPage, error) {
	var page models.MenuPage
	endpoint := menuEndpoint + "?" + MenuFilters{CategoryID: categoryID, PageSize: 3}.query().Encode()
	if err := r.client.Get(ctx, endpoint, token, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetMenusByCommerce lists the menus a commerce offers.
func (r *APIMenuRepository) GetMenusByCommerce(ctx context.Context, commerceID int) (*models.MenuPage, error) {
	var page models.MenuPage
	endpoint := menuEndpoint + "?" + MenuFilters{CommerceID: commerceID, PageSize: 1}.query().Encode()
	if err := r.auth.GetWithAuth(ctx, endpoint, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// SearchMenus runs a free-text menu search.
func (r *APIMenuRepository) SearchMenus(ctx context.Context, query string) (*models.MenuPage, error) {
	var page models.MenuPage
	endpoint := menuEndpoint + "?" + MenuFilters{Search: query, SortDirection: "ASC"}.query().Encode()
	if err := r.auth.GetWithAuth(ctx, endpoint, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetAllCategories lists the menu categories.
func (r *APIMenuRepository) GetAllCategories(ctx context.Context, token string) ([]models.Category, error) {
	var categories []models.Category
	if err := r.client.Get(ctx, "/menus/user/v1/get-all-categories", token, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
