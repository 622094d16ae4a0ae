package models

import "github.com/shopspring/decimal"

// ProductQuery is the parsed catalog listing request. A nil price bound means
// the range filter is off; the filter only applies when both bounds are set.
type ProductQuery struct {
	Page       int
	Limit      int
	SortBy     string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Categories []string
	Keyword    string
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
	Email    string `json:"email" binding:"omitempty,email"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Avatar   *string `json:"avatar"`
	Password *string `json:"password"`
}

type CreateProductRequest struct {
	Name          string           `json:"name" binding:"required"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price" binding:"required"`
	Image         string           `json:"image"`
	Stock         int              `json:"stock" binding:"omitempty,gte=0"`
	Rating        float64          `json:"rating" binding:"omitempty,gte=0,lte=5"`
	Brand         string           `json:"brand"`
	Category      string           `json:"category"`
	Sales         int              `json:"sales"`
	Reviews       int              `json:"reviews"`
	IsNew         bool             `json:"isNew"`
	IsHot         bool             `json:"isHot"`
	OriginalPrice *decimal.Decimal `json:"originalPrice"`
	Discount      int              `json:"discount"`
}

type UpdateProductRequest struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	Image         *string          `json:"image"`
	Stock         *int             `json:"stock"`
	Rating        *float64         `json:"rating"`
	Brand         *string          `json:"brand"`
	Category      *string          `json:"category"`
	Sales         *int             `json:"sales"`
	Reviews       *int             `json:"reviews"`
	IsNew         *bool            `json:"isNew"`
	IsHot         *bool            `json:"isHot"`
	OriginalPrice *decimal.Decimal `json:"originalPrice"`
	Discount      *int             `json:"discount"`
}

type OrderItemRequest struct {
	ProductID int             `json:"product_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,gt=0"`
	Price     decimal.Decimal `json:"price"`
}

type CreateOrderRequest struct {
	Items      []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	TotalPrice decimal.Decimal    `json:"total_price"`
}

type CreateCommentRequest struct {
	ProductID int    `json:"product_id" binding:"required"`
	Content   string `json:"content" binding:"required"`
}
