package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cyber-shop/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrderBuildsRequestFromCartItems(t *testing.T) {
	var received models.CreateOrderRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/orders", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]models.Order{
			"order": {ID: 1, OrderNo: "abc", Status: models.OrderStatusPending},
		})
	}))
	defer srv.Close()

	orders := NewOrderStore(New(srv.URL))
	items := []CartItem{
		{Product: product(1, "Widget", "10", ""), Count: 2},
		{Product: product(2, "Gadget", "5.50", ""), Count: 1},
	}

	order, err := orders.PlaceOrder(context.Background(), items)

	require.NoError(t, err)
	assert.Equal(t, "abc", order.OrderNo)

	require.Len(t, received.Items, 2)
	assert.Equal(t, 1, received.Items[0].ProductID)
	assert.Equal(t, 2, received.Items[0].Quantity)
	assert.True(t, received.Items[0].Price.Equal(decimal.NewFromInt(10)))

	// the created order leads the held list
	require.Len(t, orders.Orders(), 1)
	assert.Equal(t, 1, orders.Orders()[0].ID)
}

func TestPlaceOrderRejectsEmptySelection(t *testing.T) {
	orders := NewOrderStore(New("http://localhost"))

	_, err := orders.PlaceOrder(context.Background(), nil)

	assert.ErrorIs(t, err, ErrEmptyOrder)
}

func TestFetchOrdersReplacesList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Order{
			{ID: 2, OrderNo: "def"},
			{ID: 1, OrderNo: "abc"},
		})
	}))
	defer srv.Close()

	orders := NewOrderStore(New(srv.URL))

	require.NoError(t, orders.FetchOrders(context.Background()))
	require.Len(t, orders.Orders(), 2)
	assert.Equal(t, "def", orders.Orders()[0].OrderNo)
}
