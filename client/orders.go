package client

import (
	"context"
	"errors"
	"sync"

	"cyber-shop/models"
)

var ErrEmptyOrder = errors.New("no items selected for order")

// OrderStore holds the user's order list and the current order detail.
type OrderStore struct {
	mu          sync.Mutex
	api         *Client
	orders      []models.Order
	orderDetail *models.Order
}

func NewOrderStore(api *Client) *OrderStore {
	return &OrderStore{api: api}
}

func (s *OrderStore) FetchOrders(ctx context.Context) error {
	orders, err := s.api.ListOrders(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.orders = orders
	s.mu.Unlock()
	return nil
}

func (s *OrderStore) FetchOrderDetail(ctx context.Context, id int) error {
	order, err := s.api.GetOrder(ctx, id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.orderDetail = order
	s.mu.Unlock()
	return nil
}

// PlaceOrder submits the given cart items as a new order, snapshotting each
// item's current price, and prepends the created order to the held list.
func (s *OrderStore) PlaceOrder(ctx context.Context, items []CartItem) (*models.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	req := models.CreateOrderRequest{}
	for _, it := range items {
		req.Items = append(req.Items, models.OrderItemRequest{
			ProductID: it.ID,
			Quantity:  it.Count,
			Price:     it.Price,
		})
	}

	order, err := s.api.CreateOrder(ctx, req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.orders = append([]models.Order{*order}, s.orders...)
	s.mu.Unlock()
	return order, nil
}

func (s *OrderStore) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *OrderStore) OrderDetail() *models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orderDetail
}
