package model

import "github.com/shopspring/decimal"

// カタログの商品。読み込み後は不変。
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Features    []string        `json:"features"`
	InStock     bool            `json:"in_stock"`
}
