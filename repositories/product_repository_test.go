package repositories

import (
	"testing"

	"cyber-shop/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) *decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return &d
}

func TestBuildProductFilterEmpty(t *testing.T) {
	where, args := buildProductFilter(models.ProductQuery{})

	assert.Equal(t, "", where)
	assert.Empty(t, args)
}

func TestBuildProductFilterPriceRange(t *testing.T) {
	where, args := buildProductFilter(models.ProductQuery{
		MinPrice: dec("10"),
		MaxPrice: dec("99.99"),
	})

	assert.Equal(t, " WHERE price >= $1 AND price <= $2", where)
	assert.Equal(t, []interface{}{*dec("10"), *dec("99.99")}, args)
}

func TestBuildProductFilterCategories(t *testing.T) {
	where, args := buildProductFilter(models.ProductQuery{
		Categories: []string{"phones", "laptops"},
	})

	assert.Equal(t, " WHERE category = ANY($1)", where)
	assert.Equal(t, []interface{}{[]string{"phones", "laptops"}}, args)
}

func TestBuildProductFilterKeyword(t *testing.T) {
	where, args := buildProductFilter(models.ProductQuery{Keyword: "widget"})

	assert.Equal(t, " WHERE LOWER(name) LIKE LOWER($1)", where)
	assert.Equal(t, []interface{}{"%widget%"}, args)
}

func TestBuildProductFilterCombined(t *testing.T) {
	where, args := buildProductFilter(models.ProductQuery{
		MinPrice:   dec("5"),
		MaxPrice:   dec("50"),
		Categories: []string{"phones"},
		Keyword:    "pro",
	})

	assert.Equal(t,
		" WHERE price >= $1 AND price <= $2 AND category = ANY($3) AND LOWER(name) LIKE LOWER($4)",
		where)
	assert.Len(t, args, 4)
}

func TestProductOrderBy(t *testing.T) {
	tests := []struct {
		sortBy string
		want   string
	}{
		{"price-asc", " ORDER BY price ASC, id DESC"},
		{"price-desc", " ORDER BY price DESC, id DESC"},
		{"sales", " ORDER BY sales DESC, id DESC"},
		{"rating", " ORDER BY rating DESC, id DESC"},
		{"", " ORDER BY created_at DESC, id DESC"},
		{"bogus", " ORDER BY created_at DESC, id DESC"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, productOrderBy(tt.sortBy), "sortBy=%q", tt.sortBy)
	}
}
