package repositories

import (
	"context"

	"cyber-shop/config"
	"cyber-shop/models"
)

type CommentRepository struct{}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{}
}

func (r *CommentRepository) Create(comment *models.Comment) error {
	query := `
		INSERT INTO comments (user_id, product_id, content, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`
	return config.DB.QueryRow(context.Background(), query,
		comment.UserID, comment.ProductID, comment.Content,
	).Scan(&comment.ID, &comment.CreatedAt)
}

func (r *CommentRepository) FindByProduct(productID int) ([]models.Comment, error) {
	rows, err := config.DB.Query(context.Background(), `
		SELECT c.id, c.user_id, c.product_id, c.content, c.created_at,
		       u.id, u.username, COALESCE(u.avatar, '')
		FROM comments c
		JOIN users u ON c.user_id = u.id
		WHERE c.product_id = $1
		ORDER BY c.created_at DESC, c.id DESC
	`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var cm models.Comment
		var author models.CommentAuthor
		err := rows.Scan(&cm.ID, &cm.UserID, &cm.ProductID, &cm.Content, &cm.CreatedAt,
			&author.ID, &author.Username, &author.Avatar)
		if err != nil {
			return nil, err
		}
		cm.User = &author
		comments = append(comments, cm)
	}
	return comments, rows.Err()
}
