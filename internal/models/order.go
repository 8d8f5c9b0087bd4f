package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order represents a row in the 'orders' table. Created exactly once per
// completed dialogue and never mutated by this engine afterwards.
type Order struct {
	ID              int64           `db:"id" json:"id"`
	PageID          string          `db:"page_id" json:"page_id"`
	SenderID        string          `db:"sender_id" json:"sender_id"`
	InvoiceNumber   string          `db:"invoice_number" json:"invoice_number"`
	CustomerName    string          `db:"customer_name" json:"customer_name"`
	CustomerPhone   string          `db:"customer_phone" json:"customer_phone"`
	CustomerAddress string          `db:"customer_address" json:"customer_address"`
	Subtotal        decimal.Decimal `db:"subtotal" json:"subtotal"`
	Total           decimal.Decimal `db:"total" json:"total"`
	PaymentMethod   string          `db:"payment_method" json:"payment_method"`
	FakeOrderScore  int             `db:"fake_order_score" json:"fake_order_score"`
	Status          string          `db:"status" json:"status"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`

	Items []OrderItem `db:"-" json:"items,omitempty"`
}

// OrderItem represents a row in the 'order_items' table. Product name and
// price are snapshotted at creation time.
type OrderItem struct {
	ID           int64           `db:"id" json:"id"`
	OrderID      int64           `db:"order_id" json:"order_id"`
	ProductID    *int64          `db:"product_id" json:"product_id,omitempty"`
	ProductName  string          `db:"product_name" json:"product_name"`
	UnitPrice    decimal.Decimal `db:"unit_price" json:"unit_price"`
	Quantity     int             `db:"quantity" json:"quantity"`
	LineSubtotal decimal.Decimal `db:"line_subtotal" json:"line_subtotal"`
}

// Payment methods.
const (
	PaymentMethodCOD     = "cash_on_delivery"
	PaymentMethodAdvance = "advance_payment"
)
