package repositories

import (
	"context"
	"errors"

	"cyber-shop/config"
	"cyber-shop/models"

	"github.com/jackc/pgx/v5"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Create inserts the order header and all line items in one transaction; a
// failed item insert rolls back the whole order.
func (r *OrderRepository) Create(order *models.Order) error {
	ctx := context.Background()

	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO orders (order_no, user_id, total_price, status, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`, order.OrderNo, order.UserID, order.TotalPrice, order.Status).
		Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, price)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, item.OrderID, item.ProductID, item.Quantity, item.Price).Scan(&item.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *OrderRepository) FindByUser(userID int) ([]models.Order, error) {
	rows, err := config.DB.Query(context.Background(), `
		SELECT id, order_no, user_id, total_price, status, created_at
		FROM orders WHERE user_id = $1 ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.OrderNo, &o.UserID, &o.TotalPrice, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.findItems(orders[i].ID, false)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *OrderRepository) FindByID(id, userID int) (*models.Order, error) {
	var o models.Order
	err := config.DB.QueryRow(context.Background(), `
		SELECT id, order_no, user_id, total_price, status, created_at
		FROM orders WHERE id = $1 AND user_id = $2
	`, id, userID).Scan(&o.ID, &o.OrderNo, &o.UserID, &o.TotalPrice, &o.Status, &o.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	items, err := r.findItems(o.ID, true)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *OrderRepository) findItems(orderID int, withProduct bool) ([]models.OrderItem, error) {
	if !withProduct {
		rows, err := config.DB.Query(context.Background(), `
			SELECT id, order_id, product_id, quantity, price
			FROM order_items WHERE order_id = $1 ORDER BY id
		`, orderID)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		items := []models.OrderItem{}
		for rows.Next() {
			var it models.OrderItem
			if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.Price); err != nil {
				return nil, err
			}
			items = append(items, it)
		}
		return items, rows.Err()
	}

	rows, err := config.DB.Query(context.Background(), `
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.price,
		       p.id, p.name, p.description, p.price, COALESCE(p.image, ''), p.stock,
		       p.rating, COALESCE(p.brand, ''), COALESCE(p.category, ''), p.sales, p.reviews,
		       p.is_new, p.is_hot, p.original_price, p.discount, p.created_at
		FROM order_items oi
		JOIN products p ON oi.product_id = p.id
		WHERE oi.order_id = $1 ORDER BY oi.id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.OrderItem{}
	for rows.Next() {
		var it models.OrderItem
		var p models.Product
		err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.Price,
			&p.ID, &p.Name, &p.Description, &p.Price, &p.Image, &p.Stock,
			&p.Rating, &p.Brand, &p.Category, &p.Sales, &p.Reviews,
			&p.IsNew, &p.IsHot, &p.OriginalPrice, &p.Discount, &p.CreatedAt)
		if err != nil {
			return nil, err
		}
		it.Product = &p
		items = append(items, it)
	}
	return items, rows.Err()
}
