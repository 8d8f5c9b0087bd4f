package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Conversation represents a row in the 'conversations' table.
// There is at most one live conversation per (page_id, sender_id) pair.
type Conversation struct {
	ID                  int64             `db:"id" json:"id"`
	PageID              string            `db:"page_id" json:"page_id"`
	SenderID            string            `db:"sender_id" json:"sender_id"`
	SenderName          string            `db:"sender_name" json:"sender_name"`
	State               ConversationState `db:"state" json:"state"`
	CurrentProductID    *int64            `db:"current_product_id" json:"current_product_id,omitempty"`
	CurrentProductName  *string           `db:"current_product_name" json:"current_product_name,omitempty"`
	CurrentProductPrice *decimal.Decimal  `db:"current_product_price" json:"current_product_price,omitempty"`
	CollectedName       *string           `db:"collected_name" json:"collected_name,omitempty"`
	CollectedPhone      *string           `db:"collected_phone" json:"collected_phone,omitempty"`
	CollectedAddress    *string           `db:"collected_address" json:"collected_address,omitempty"`
	FakeOrderScore      int               `db:"fake_order_score" json:"fake_order_score"`
	// Version is bumped on every write; updates are compare-and-swap on it.
	Version       int64     `db:"version" json:"-"`
	LastMessageAt time.Time `db:"last_message_at" json:"last_message_at"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// ConversationMessage represents a row in the append-only
// 'conversation_messages' table.
type ConversationMessage struct {
	ID             int64     `db:"id" json:"id"`
	ConversationID int64     `db:"conversation_id" json:"conversation_id"`
	Role           string    `db:"role" json:"role"`
	Content        string    `db:"content" json:"content"`
	Intent         *Intent   `db:"intent" json:"intent,omitempty"`
	Sentiment      *Sentiment `db:"sentiment" json:"sentiment,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// SetCurrentProduct snapshots the resolved product onto the conversation so
// later turns keep context even when resolution fails.
func (c *Conversation) SetCurrentProduct(p *Product) {
	if p == nil {
		return
	}
	id := p.ID
	name := p.Name
	price := p.Price
	c.CurrentProductID = &id
	c.CurrentProductName = &name
	c.CurrentProductPrice = &price
}

// ResetToIdle clears collection and product context and returns the
// conversation to the idle state. Used after a completed order and on
// cancellation.
func (c *Conversation) ResetToIdle() {
	c.State = StateIdle
	c.CollectedName = nil
	c.CollectedPhone = nil
	c.CollectedAddress = nil
	c.CurrentProductID = nil
	c.CurrentProductName = nil
	c.CurrentProductPrice = nil
}

// ReadyForOrder reports whether the dialogue finished with every required
// field collected.
func (c *Conversation) ReadyForOrder() bool {
	return c.State == StateCompleted &&
		c.CollectedName != nil && *c.CollectedName != "" &&
		c.CollectedPhone != nil && *c.CollectedPhone != "" &&
		c.CollectedAddress != nil && *c.CollectedAddress != ""
}
