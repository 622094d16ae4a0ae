package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"cyber-shop/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func catalogServer(t *testing.T, queries *[]url.Values) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/products":
			*queries = append(*queries, r.URL.Query())
			json.NewEncoder(w).Encode(models.ProductPage{
				Total: 42,
				List:  []models.Product{product(1, "Widget", "10", "")},
			})
		case "/api/products/1":
			json.NewEncoder(w).Encode(product(1, "Widget", "10", ""))
		default:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "product not found"})
		}
	}))
}

func TestCatalogFetchUsesStoredDefaults(t *testing.T) {
	var queries []url.Values
	srv := catalogServer(t, &queries)
	defer srv.Close()

	catalog := NewCatalogStore(New(srv.URL))

	require.NoError(t, catalog.FetchProducts(context.Background(), ProductParams{}))

	require.Len(t, queries, 1)
	assert.Equal(t, "1", queries[0].Get("page"))
	assert.Equal(t, "12", queries[0].Get("limit"))
	assert.Equal(t, 42, catalog.Total())
	assert.Len(t, catalog.Products(), 1)
}

func TestCatalogFetchRemembersPage(t *testing.T) {
	var queries []url.Values
	srv := catalogServer(t, &queries)
	defer srv.Close()

	catalog := NewCatalogStore(New(srv.URL))

	require.NoError(t, catalog.FetchProducts(context.Background(), ProductParams{Page: 3, Limit: 24}))
	assert.Equal(t, 3, catalog.Page())
	assert.Equal(t, 24, catalog.PageSize())

	// a follow-up fetch without explicit paging reuses the stored values
	require.NoError(t, catalog.FetchProducts(context.Background(), ProductParams{SortBy: "price-asc"}))
	require.Len(t, queries, 2)
	assert.Equal(t, "3", queries[1].Get("page"))
	assert.Equal(t, "24", queries[1].Get("limit"))
	assert.Equal(t, "price-asc", queries[1].Get("sortBy"))
}

func TestCatalogFetchDetail(t *testing.T) {
	var queries []url.Values
	srv := catalogServer(t, &queries)
	defer srv.Close()

	catalog := NewCatalogStore(New(srv.URL))

	require.NoError(t, catalog.FetchProductDetail(context.Background(), 1))
	require.NotNil(t, catalog.ProductDetail())
	assert.Equal(t, "Widget", catalog.ProductDetail().Name)

	err := catalog.FetchProductDetail(context.Background(), 99)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "product not found", apiErr.Message)
}

func TestProductParamsRequireBothPriceBounds(t *testing.T) {
	min := dec("10")
	max := dec("100")

	both := ProductParams{MinPrice: min, MaxPrice: max}.values()
	assert.Equal(t, "10", both.Get("minPrice"))
	assert.Equal(t, "100", both.Get("maxPrice"))

	half := ProductParams{MinPrice: min}.values()
	assert.Empty(t, half.Get("minPrice"))
	assert.Empty(t, half.Get("maxPrice"))
}
