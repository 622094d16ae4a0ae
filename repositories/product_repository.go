package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cyber-shop/config"
	"cyber-shop/models"

	"github.com/jackc/pgx/v5"
)

var ErrProductNotFound = errors.New("product not found")

const productColumns = `id, name, description, price, COALESCE(image, ''), stock, rating, COALESCE(brand, ''), COALESCE(category, ''), sales, reviews, is_new, is_hot, original_price, discount, created_at`

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// buildProductFilter composes the WHERE clause for a catalog query. The price
// range only applies when both bounds are present; an empty category set means
// no category filter.
func buildProductFilter(q models.ProductQuery) (string, []interface{}) {
	whereConditions := []string{}
	args := []interface{}{}
	paramIndex := 1

	if q.MinPrice != nil && q.MaxPrice != nil {
		whereConditions = append(whereConditions,
			fmt.Sprintf("price >= $%d AND price <= $%d", paramIndex, paramIndex+1))
		args = append(args, *q.MinPrice, *q.MaxPrice)
		paramIndex += 2
	}

	if len(q.Categories) > 0 {
		whereConditions = append(whereConditions, fmt.Sprintf("category = ANY($%d)", paramIndex))
		args = append(args, q.Categories)
		paramIndex++
	}

	if q.Keyword != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("LOWER(name) LIKE LOWER($%d)", paramIndex))
		args = append(args, "%"+q.Keyword+"%")
		paramIndex++
	}

	if len(whereConditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(whereConditions, " AND "), args
}

// productOrderBy maps a sort key to an ORDER BY clause. Unknown keys fall back
// to newest-first. Every ordering carries an id tie-break so pages stay stable
// when the primary sort column ties.
func productOrderBy(sortBy string) string {
	switch sortBy {
	case "price-asc":
		return " ORDER BY price ASC, id DESC"
	case "price-desc":
		return " ORDER BY price DESC, id DESC"
	case "sales":
		return " ORDER BY sales DESC, id DESC"
	case "rating":
		return " ORDER BY rating DESC, id DESC"
	default:
		return " ORDER BY created_at DESC, id DESC"
	}
}

func (r *ProductRepository) List(q models.ProductQuery) ([]models.Product, int, error) {
	where, args := buildProductFilter(q)

	var total int
	countQuery := "SELECT COUNT(*) FROM products" + where
	if err := config.DB.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (q.Page - 1) * q.Limit
	query := fmt.Sprintf("SELECT %s FROM products%s%s LIMIT $%d OFFSET $%d",
		productColumns, where, productOrderBy(q.SortBy), len(args)+1, len(args)+2)
	args = append(args, q.Limit, offset)

	rows, err := config.DB.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, total, rows.Err()
}

func (r *ProductRepository) FindByID(id int) (*models.Product, error) {
	query := fmt.Sprintf("SELECT %s FROM products WHERE id = $1", productColumns)

	var p models.Product
	err := scanProduct(config.DB.QueryRow(context.Background(), query, id), &p)
	if err == pgx.ErrNoRows {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Create(product *models.Product) error {
	query := `
		INSERT INTO products (name, description, price, image, stock, rating, brand, category, sales, reviews, is_new, is_hot, original_price, discount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at
	`
	return config.DB.QueryRow(context.Background(), query,
		product.Name, product.Description, product.Price, product.Image,
		product.Stock, product.Rating, product.Brand, product.Category,
		product.Sales, product.Reviews, product.IsNew, product.IsHot,
		product.OriginalPrice, product.Discount, time.Now(),
	).Scan(&product.ID, &product.CreatedAt)
}

func (r *ProductRepository) Update(product *models.Product) error {
	query := `UPDATE products SET name = $1, description = $2, price = $3, image = $4,
	          stock = $5, rating = $6, brand = $7, category = $8, sales = $9, reviews = $10,
	          is_new = $11, is_hot = $12, original_price = $13, discount = $14 WHERE id = $15`
	tag, err := config.DB.Exec(context.Background(), query,
		product.Name, product.Description, product.Price, product.Image,
		product.Stock, product.Rating, product.Brand, product.Category,
		product.Sales, product.Reviews, product.IsNew, product.IsHot,
		product.OriginalPrice, product.Discount, product.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(id int) error {
	tag, err := config.DB.Exec(context.Background(), "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) UpdateImage(id int, imageURL string) error {
	tag, err := config.DB.Exec(context.Background(),
		"UPDATE products SET image = $1 WHERE id = $2", imageURL, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

func scanProduct(row pgx.Row, p *models.Product) error {
	return row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Image, &p.Stock,
		&p.Rating, &p.Brand, &p.Category, &p.Sales, &p.Reviews,
		&p.IsNew, &p.IsHot, &p.OriginalPrice, &p.Discount, &p.CreatedAt,
	)
}
