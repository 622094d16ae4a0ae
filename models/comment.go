package models

import "time"

type Comment struct {
	ID        int            `json:"id"`
	UserID    int            `json:"user_id"`
	ProductID int            `json:"product_id"`
	Content   string         `json:"content"`
	User      *CommentAuthor `json:"user,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
