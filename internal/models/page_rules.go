package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PageRules represents a row in the 'page_rules' table. It is owned by the
// external settings dashboard and read-only to this engine.
type PageRules struct {
	ID                  int64  `db:"id" json:"id"`
	PageID              string `db:"page_id" json:"page_id"`
	OwnerID             string `db:"owner_id" json:"owner_id"`
	BusinessDescription string `db:"business_description" json:"business_description"`
	CatalogSummary      string `db:"catalog_summary" json:"catalog_summary"`
	Tone                string `db:"tone" json:"tone"`
	Language            string `db:"language" json:"language"`

	// Automation toggles.
	CommentReplyEnabled  bool `db:"comment_reply_enabled" json:"comment_reply_enabled"`
	InboxReplyEnabled    bool `db:"inbox_reply_enabled" json:"inbox_reply_enabled"`
	OrderTakingEnabled   bool `db:"order_taking_enabled" json:"order_taking_enabled"`
	MediaUnderstanding   bool `db:"media_understanding" json:"media_understanding"`

	// Selling rules.
	UseCatalogPrice    bool `db:"use_catalog_price" json:"use_catalog_price"`
	DiscountAllowed    bool `db:"discount_allowed" json:"discount_allowed"`
	MaxDiscountPercent int  `db:"max_discount_percent" json:"max_discount_percent"`
	AllowLowProfit     bool `db:"allow_low_profit" json:"allow_low_profit"`

	// Safety rules.
	NeverFabricate     bool `db:"never_fabricate" json:"never_fabricate"`
	AskIfUnsure        bool `db:"ask_if_unsure" json:"ask_if_unsure"`
	AskClearerMedia    bool `db:"ask_clearer_media" json:"ask_clearer_media"`
	ConfirmBeforeOrder bool `db:"confirm_before_order" json:"confirm_before_order"`

	// Payment rules.
	CODAvailable            bool            `db:"cod_available" json:"cod_available"`
	AdvancePaymentThreshold decimal.Decimal `db:"advance_payment_threshold" json:"advance_payment_threshold"`
	AdvancePaymentPercent   int             `db:"advance_payment_percent" json:"advance_payment_percent"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
