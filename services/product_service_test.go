package services

import (
	"testing"

	"cyber-shop/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeQueryDefaults(t *testing.T) {
	q := NormalizeQuery(models.ProductQuery{})

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 12, q.Limit)
}

func TestNormalizeQueryRejectsBadValues(t *testing.T) {
	q := NormalizeQuery(models.ProductQuery{Page: -3, Limit: 0})
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 12, q.Limit)

	q = NormalizeQuery(models.ProductQuery{Page: 2, Limit: 5000})
	assert.Equal(t, 2, q.Page)
	assert.Equal(t, MaxLimit, q.Limit)
}

func TestNormalizeQueryDropsHalfOpenPriceRange(t *testing.T) {
	min := decimal.NewFromInt(10)

	q := NormalizeQuery(models.ProductQuery{MinPrice: &min})
	assert.Nil(t, q.MinPrice)
	assert.Nil(t, q.MaxPrice)

	max := decimal.NewFromInt(20)
	q = NormalizeQuery(models.ProductQuery{MinPrice: &min, MaxPrice: &max})
	assert.NotNil(t, q.MinPrice)
	assert.NotNil(t, q.MaxPrice)
}
