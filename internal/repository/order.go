package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/models"
)

type OrderRepository interface {
	// CreateOrder inserts the order and its line items in one transaction.
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrdersByPage(ctx context.Context, pageID string) ([]*models.Order, error)
}

type orderRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewOrderRepository(db *sqlx.DB, logger *zap.Logger) OrderRepository {
	return &orderRepository{db: db, logger: logger}
}

func (r *orderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin order transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO orders (page_id, sender_id, invoice_number, customer_name, customer_phone,
			customer_address, subtotal, total, payment_method, fake_order_score, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at`
	err = tx.QueryRowxContext(ctx, query,
		order.PageID, order.SenderID, order.InvoiceNumber, order.CustomerName, order.CustomerPhone,
		order.CustomerAddress, order.Subtotal, order.Total, order.PaymentMethod,
		order.FakeOrderScore, order.Status).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	itemQuery := `INSERT INTO order_items (order_id, product_id, product_name, unit_price, quantity, line_subtotal)
	              VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		if err := tx.QueryRowxContext(ctx, itemQuery,
			item.OrderID, item.ProductID, item.ProductName, item.UnitPrice,
			item.Quantity, item.LineSubtotal).Scan(&item.ID); err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}

	r.logger.Info("Order created",
		zap.Int64("order_id", order.ID),
		zap.String("invoice_number", order.InvoiceNumber),
		zap.String("page_id", order.PageID))
	return nil
}

func (r *orderRepository) GetOrdersByPage(ctx context.Context, pageID string) ([]*models.Order, error) {
	var orders []*models.Order
	query := `SELECT id, page_id, sender_id, invoice_number, customer_name, customer_phone,
			customer_address, subtotal, total, payment_method, fake_order_score, status, created_at
		FROM orders WHERE page_id = $1 ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &orders, query, pageID); err != nil {
		return nil, err
	}
	return orders, nil
}
