// Package orders converts a completed collection dialogue into a persisted,
// uniquely-invoiced order record.
package orders

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/models"
	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/repository"
)

type Materializer struct {
	orderRepo repository.OrderRepository
	logger    *zap.Logger
}

func NewMaterializer(orderRepo repository.OrderRepository, logger *zap.Logger) *Materializer {
	return &Materializer{orderRepo: orderRepo, logger: logger}
}

// Materialize creates exactly one order for a completed dialogue and resets
// the conversation to idle in memory (the caller persists the reset).
// Returns (nil, nil) when the conversation is not ready, which makes a
// second call on an already-reset conversation a no-op rather than a
// duplicate order.
func (m *Materializer) Materialize(ctx context.Context, conv *models.Conversation, product *models.Product, rules *models.PageRules) (*models.Order, error) {
	if !conv.ReadyForOrder() {
		return nil, nil
	}

	item := buildLineItem(conv, product)

	paymentMethod := models.PaymentMethodAdvance
	if rules.CODAvailable {
		paymentMethod = models.PaymentMethodCOD
	}

	status := models.OrderStatusConfirmed
	if conv.FakeOrderScore > 50 {
		status = models.OrderStatusPending
	}

	order := &models.Order{
		PageID:          conv.PageID,
		SenderID:        conv.SenderID,
		InvoiceNumber:   newInvoiceNumber(),
		CustomerName:    *conv.CollectedName,
		CustomerPhone:   *conv.CollectedPhone,
		CustomerAddress: *conv.CollectedAddress,
		Subtotal:        item.LineSubtotal,
		Total:           item.LineSubtotal,
		PaymentMethod:   paymentMethod,
		FakeOrderScore:  conv.FakeOrderScore,
		Status:          status,
		Items:           []models.OrderItem{item},
	}

	if err := m.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to materialize order: %w", err)
	}

	m.logger.Info("Order materialized",
		zap.String("invoice_number", order.InvoiceNumber),
		zap.String("status", order.Status),
		zap.Int("fake_order_score", order.FakeOrderScore))

	conv.ResetToIdle()
	return order, nil
}

// buildLineItem snapshots the resolved product, falling back to the
// conversation's last-known product when resolution failed this turn.
func buildLineItem(conv *models.Conversation, product *models.Product) models.OrderItem {
	item := models.OrderItem{Quantity: 1, UnitPrice: decimal.Zero, ProductName: "Unspecified product"}

	switch {
	case product != nil:
		id := product.ID
		item.ProductID = &id
		item.ProductName = product.Name
		item.UnitPrice = product.Price
	case conv.CurrentProductName != nil && *conv.CurrentProductName != "":
		item.ProductID = conv.CurrentProductID
		item.ProductName = *conv.CurrentProductName
		if conv.CurrentProductPrice != nil {
			item.UnitPrice = *conv.CurrentProductPrice
		}
	}

	item.LineSubtotal = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
	return item
}

func newInvoiceNumber() string {
	fragment := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return "INV-" + strings.ToUpper(fragment)
}
