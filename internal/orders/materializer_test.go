package orders

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/models"
)

type fakeOrderRepo struct {
	created []*models.Order
	err     error
}

func (f *fakeOrderRepo) CreateOrder(_ context.Context, order *models.Order) error {
	if f.err != nil {
		return f.err
	}
	order.ID = int64(len(f.created) + 1)
	f.created = append(f.created, order)
	return nil
}

func (f *fakeOrderRepo) GetOrdersByPage(_ context.Context, pageID string) ([]*models.Order, error) {
	return f.created, nil
}

func completedConversation(score int) *models.Conversation {
	name, phone, address := "Rahim Uddin", "01712345678", "House 3, Mirpur, Dhaka"
	return &models.Conversation{
		ID:               1,
		PageID:           "page-1",
		SenderID:         "sender-1",
		State:            models.StateCompleted,
		CollectedName:    &name,
		CollectedPhone:   &phone,
		CollectedAddress: &address,
		FakeOrderScore:   score,
	}
}

func TestMaterializeCreatesOrder(t *testing.T) {
	repo := &fakeOrderRepo{}
	m := NewMaterializer(repo, zap.NewNop())
	conv := completedConversation(10)
	product := &models.Product{
		ID:    7,
		Name:  "Premium Panjabi",
		Price: decimal.RequireFromString("1250.50"),
	}
	rules := &models.PageRules{CODAvailable: true}

	order, err := m.Materialize(context.Background(), conv, product, rules)
	require.NoError(t, err)
	require.NotNil(t, order)
	require.Len(t, repo.created, 1)

	assert.Equal(t, "page-1", order.PageID)
	assert.Equal(t, "Rahim Uddin", order.CustomerName)
	assert.Equal(t, "01712345678", order.CustomerPhone)
	assert.Equal(t, models.PaymentMethodCOD, order.PaymentMethod)
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)

	require.Len(t, order.Items, 1)
	item := order.Items[0]
	assert.Equal(t, "Premium Panjabi", item.ProductName)
	assert.Equal(t, 1, item.Quantity)
	assert.True(t, item.UnitPrice.Equal(decimal.RequireFromString("1250.50")))
	assert.True(t, order.Subtotal.Equal(item.LineSubtotal))
	assert.True(t, order.Total.Equal(order.Subtotal))

	// Conversation is reset in memory for the caller to persist.
	assert.Equal(t, models.StateIdle, conv.State)
	assert.Nil(t, conv.CollectedName)
}

func TestMaterializeInvoiceFormat(t *testing.T) {
	repo := &fakeOrderRepo{}
	m := NewMaterializer(repo, zap.NewNop())
	rules := &models.PageRules{CODAvailable: true}

	pattern := regexp.MustCompile(`^INV-[0-9A-F]{12}$`)
	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		order, err := m.Materialize(context.Background(), completedConversation(0), nil, rules)
		require.NoError(t, err)
		assert.Regexp(t, pattern, order.InvoiceNumber)
		assert.False(t, seen[order.InvoiceNumber], "duplicate invoice %s", order.InvoiceNumber)
		seen[order.InvoiceNumber] = true
	}
}

func TestMaterializeIdempotentAfterReset(t *testing.T) {
	repo := &fakeOrderRepo{}
	m := NewMaterializer(repo, zap.NewNop())
	conv := completedConversation(0)
	rules := &models.PageRules{CODAvailable: true}

	first, err := m.Materialize(context.Background(), conv, nil, rules)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := m.Materialize(context.Background(), conv, nil, rules)
	require.NoError(t, err)
	assert.Nil(t, second)
	assert.Len(t, repo.created, 1)
}

func TestMaterializeNotReady(t *testing.T) {
	repo := &fakeOrderRepo{}
	m := NewMaterializer(repo, zap.NewNop())
	conv := completedConversation(0)
	conv.CollectedPhone = nil

	order, err := m.Materialize(context.Background(), conv, nil, &models.PageRules{})
	require.NoError(t, err)
	assert.Nil(t, order)
	assert.Empty(t, repo.created)
}

func TestMaterializeStatusFromScore(t *testing.T) {
	repo := &fakeOrderRepo{}
	m := NewMaterializer(repo, zap.NewNop())
	rules := &models.PageRules{CODAvailable: true}

	order, err := m.Materialize(context.Background(), completedConversation(50), nil, rules)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)

	order, err = m.Materialize(context.Background(), completedConversation(51), nil, rules)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 51, order.FakeOrderScore)
}

func TestMaterializePaymentMethod(t *testing.T) {
	repo := &fakeOrderRepo{}
	m := NewMaterializer(repo, zap.NewNop())

	order, err := m.Materialize(context.Background(), completedConversation(0), nil, &models.PageRules{CODAvailable: false})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentMethodAdvance, order.PaymentMethod)
}

func TestMaterializeFallsBackToConversationSnapshot(t *testing.T) {
	repo := &fakeOrderRepo{}
	m := NewMaterializer(repo, zap.NewNop())
	conv := completedConversation(0)
	productID := int64(9)
	productName := "Red Saree"
	price := decimal.NewFromInt(900)
	conv.CurrentProductID = &productID
	conv.CurrentProductName = &productName
	conv.CurrentProductPrice = &price

	order, err := m.Materialize(context.Background(), conv, nil, &models.PageRules{CODAvailable: true})
	require.NoError(t, err)

	require.Len(t, order.Items, 1)
	item := order.Items[0]
	require.NotNil(t, item.ProductID)
	assert.Equal(t, int64(9), *item.ProductID)
	assert.Equal(t, "Red Saree", item.ProductName)
	assert.True(t, item.UnitPrice.Equal(price))
}

func TestMaterializeUnresolvedProduct(t *testing.T) {
	repo := &fakeOrderRepo{}
	m := NewMaterializer(repo, zap.NewNop())

	order, err := m.Materialize(context.Background(), completedConversation(0), nil, &models.PageRules{CODAvailable: true})
	require.NoError(t, err)

	item := order.Items[0]
	assert.Nil(t, item.ProductID)
	assert.Equal(t, "Unspecified product", item.ProductName)
	assert.True(t, item.UnitPrice.IsZero())
	assert.True(t, order.Total.IsZero())
}

func TestMaterializeRepositoryError(t *testing.T) {
	wantErr := errors.New("insert failed")
	repo := &fakeOrderRepo{err: wantErr}
	m := NewMaterializer(repo, zap.NewNop())
	conv := completedConversation(0)

	order, err := m.Materialize(context.Background(), conv, nil, &models.PageRules{CODAvailable: true})
	assert.ErrorIs(t, err, wantErr)
	assert.Nil(t, order)
	// The conversation is not reset when persistence fails.
	assert.Equal(t, models.StateCompleted, conv.State)
}
