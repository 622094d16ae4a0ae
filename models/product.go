package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Image         string          `json:"image"`
	Stock         int             `json:"stock"`
	Rating        float64         `json:"rating"`
	Brand         string          `json:"brand"`
	Category      string          `json:"category"`
	Sales         int             `json:"sales"`
	Reviews       int             `json:"reviews"`
	IsNew         bool            `json:"isNew"`
	IsHot         bool            `json:"isHot"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
	Discount      int             `json:"discount"`
	CreatedAt     time.Time       `json:"created_at"`
}
