package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a row in the 'products' table. Catalog data is owned by
// the external product management screens and read-only here.
type Product struct {
	ID          int64           `db:"id" json:"id"`
	OwnerID     string          `db:"owner_id" json:"owner_id"`
	Name        string          `db:"name" json:"name"`
	Price       decimal.Decimal `db:"price" json:"price"`
	Description string          `db:"description" json:"description"`
	Category    string          `db:"category" json:"category"`
	SKU         string          `db:"sku" json:"sku"`
	Active      bool            `db:"active" json:"active"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

// PostLink represents a row in the 'post_links' table, associating a
// published post with a catalog product so comment replies can be grounded
// in real inventory.
type PostLink struct {
	ID                  int64     `db:"id" json:"id"`
	PageID              string    `db:"page_id" json:"page_id"`
	PostID              string    `db:"post_id" json:"post_id"`
	ProductID           *int64    `db:"product_id" json:"product_id,omitempty"`
	DetectedProductName *string   `db:"detected_product_name" json:"detected_product_name,omitempty"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
}
