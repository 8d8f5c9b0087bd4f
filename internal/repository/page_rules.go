package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/models"
)

type PageRulesRepository interface {
	// GetByPageID returns nil without error when the page has no rules row.
	GetByPageID(ctx context.Context, pageID string) (*models.PageRules, error)
}

type pageRulesRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPageRulesRepository(db *sqlx.DB, logger *zap.Logger) PageRulesRepository {
	return &pageRulesRepository{db: db, logger: logger}
}

func (r *pageRulesRepository) GetByPageID(ctx context.Context, pageID string) (*models.PageRules, error) {
	var rules models.PageRules
	query := `SELECT id, page_id, owner_id, business_description, catalog_summary, tone, language,
			comment_reply_enabled, inbox_reply_enabled, order_taking_enabled, media_understanding,
			use_catalog_price, discount_allowed, max_discount_percent, allow_low_profit,
			never_fabricate, ask_if_unsure, ask_clearer_media, confirm_before_order,
			cod_available, advance_payment_threshold, advance_payment_percent,
			created_at, updated_at
		FROM page_rules WHERE page_id = $1`
	err := r.db.GetContext(ctx, &rules, query, pageID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rules, nil
}
