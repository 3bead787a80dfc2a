package repositories

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"dores/internal/models"
	"dores/pkg/apiclient"
)

// CommerceFilters narrows the commerce listing.
type CommerceFilters struct {
	PageNumber    int
	PageSize      int
	SortDirection string
	CommerceID    int
	ProductID     int
	CategoryID    int
	Search        string
	Latitude      string
	Longitude     string
	MinPrice      string
	MaxPrice      string
}

func (f CommerceFilters) query() url.Values {
	if f.PageSize == 0 {
		f.PageSize = 10
	}
	if f.SortDirection == "" {
		f.SortDirection = "ASC"
	}

	params := url.Values{}
	params.Set("page-number", strconv.Itoa(f.PageNumber))
	params.Set("page-size", strconv.Itoa(f.PageSize))
	params.Set("sort-direction", f.SortDirection)
	if f.CommerceID != 0 {
		params.Set("commerce-id", strconv.Itoa(f.CommerceID))
	}
	if f.ProductID != 0 {
		params.Set("product-id", strconv.Itoa(f.ProductID))
	}
	if f.CategoryID != 0 {
		params.Set("category-id", strconv.Itoa(f.CategoryID))
	}
	if f.Search != "" {
		params.Set("search", f.Search)
	}
	if f.Latitude != "" {
		params.Set("latitude", f.Latitude)
	}
	if f.Longitude != "" {
		params.Set("longitude", f.Longitude)
	}
	if f.MinPrice != "" {
		params.Set("min-price", f.MinPrice)
	}
	if f.MaxPrice != "" {
		params.Set("max-price", f.MaxPrice)
	}
	return params
}

// CommerceRepository defines the interface for commerce browsing.
// Lookup by id and by product accept an optional token because they are
// also reachable before login.
type CommerceRepository interface {
	GetAllCommerces(ctx context.Context) ([]models.Commerce, error)
	GetCommerceByID(ctx context.Context, commerceID int, token string) (*models.Commerce, error)
	GetCommercesByProduct(ctx context.Context, productID int, token string) ([]models.Commerce, error)
	SearchCommerces(ctx context.Context, query string) ([]models.Commerce, error)
	GetCommercesByCategory(ctx context.Context, categoryID int) ([]models.Commerce, error)
}

// APICommerceRepository implements CommerceRepository against the remote
// API.
type APICommerceRepository struct {
	client *apiclient.Client
	auth   *apiclient.AuthClient
}

// NewAPICommerceRepository creates a new APICommerceRepository.
func NewAPICommerceRepository(client *apiclient.Client, auth *apiclient.AuthClient) *APICommerceRepository {
	return &APICommerceRepository{
		client: client,
		auth:   auth,
	}
}

const commerceEndpoint = "/pedidos/user/v1/get-all-commerce"

// GetAllCommerces lists commerces for the authenticated user.
func (r *APICommerceRepository) GetAllCommerces(ctx context.Context) ([]models.Commerce, error) {
	var page models.CommercePage
	endpoint := commerceEndpoint + "?" + CommerceFilters{}.query().Encode()
	if err := r.auth.GetWithAuth(ctx, endpoint, &page); err != nil {
		return nil, err
	}
	return page.Content, nil
}

// GetCommerceByID fetches one commerce. An empty token performs the call
// anonymously.
func (r *APICommerceRepository) GetCommerceByID(ctx context.Context, commerceID int, token string) (*models.Commerce, error) {
	var page models.CommercePage
	endpoint := commerceEndpoint + "?" + CommerceFilters{CommerceID: commerceID}.query().Encode()
	if err := r.client.Get(ctx, endpoint, token, &page); err != nil {
		return nil, err
	}
	if len(page.Content) == 0 {
		return nil, fmt.Errorf("commerce with ID %d not found", commerceID)
	}
	return &page.Content[0], nil
}

// GetCommercesByProduct lists the commerces offering a product.
func (r *APICommerceRepository) GetCommercesByProduct(ctx context.Context, productID int, token string) ([]models.Commerce, error) {
	var page models.CommercePage
	endpoint := commerceEndpoint + "?" + CommerceFilters{ProductID: productID}.query().Encode()
	if err := r.client.Get(ctx, endpoint, token, &page); err != nil {
		return nil, err
	}
	return page.Content, nil
}

// SearchCommerces runs a free-text commerce search.
func (r *APICommerceRepository) SearchCommerces(ctx context.Context, query string) ([]models.Commerce, error) {
	var page models.CommercePage
	endpoint := commerceEndpoint + "?" + CommerceFilters{Search: query}.query().Encode()
	if err := r.auth.GetWithAuth(ctx, endpoint, &page); err != nil {
		return nil, err
	}
	return page.Content, nil
}

// GetCommercesByCategory lists commerces belonging to a category.
func (r *APICommerceRepository) GetCommercesByCategory(ctx context.Context, categoryID int) ([]models.Commerce, error) {
	var page models.CommercePage
	endpoint := commerceEndpoint + "?" + CommerceFilters{CategoryID: categoryID}.query().Encode()
	if err := r.auth.GetWithAuth(ctx, endpoint, &page); err != nil {
		return nil, err
	}
	return page.Content, nil
}
