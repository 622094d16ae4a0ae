package client

import (
	"context"
	"sync"

	"cyber-shop/models"
)

// CatalogStore holds the last fetched catalog page and the query parameters
// that produced it.
type CatalogStore struct {
	mu            sync.Mutex
	api           *Client
	products      []models.Product
	productDetail *models.Product
	total         int
	page          int
	pageSize      int
}

func NewCatalogStore(api *Client) *CatalogStore {
	return &CatalogStore{
		api:      api,
		page:     1,
		pageSize: 12,
	}
}

// FetchProducts merges the supplied params over the stored ones, queries the
// catalog and replaces the held page on success. Concurrent calls are not
// deduplicated: the last response to resolve wins.
func (s *CatalogStore) FetchProducts(ctx context.Context, params ProductParams) error {
	s.mu.Lock()
	if params.Page == 0 {
		params.Page = s.page
	}
	if params.Limit == 0 {
		params.Limit = s.pageSize
	}
	s.mu.Unlock()

	page, err := s.api.ListProducts(ctx, params)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.products = page.List
	s.total = page.Total
	s.page = params.Page
	s.pageSize = params.Limit
	s.mu.Unlock()
	return nil
}

func (s *CatalogStore) FetchProductDetail(ctx context.Context, id int) error {
	product, err := s.api.GetProduct(ctx, id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.productDetail = product
	s.mu.Unlock()
	return nil
}

func (s *CatalogStore) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *CatalogStore) ProductDetail() *models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.productDetail
}

func (s *CatalogStore) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

func (s *CatalogStore) Page() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

func (s *CatalogStore) PageSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pageSize
}
