package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/models"
)

type PostLinkRepository interface {
	// GetByPagePost returns nil without error when the post is unknown.
	GetByPagePost(ctx context.Context, pageID, postID string) (*models.PostLink, error)
}

type postLinkRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPostLinkRepository(db *sqlx.DB, logger *zap.Logger) PostLinkRepository {
	return &postLinkRepository{db: db, logger: logger}
}

func (r *postLinkRepository) GetByPagePost(ctx context.Context, pageID, postID string) (*models.PostLink, error) {
	var link models.PostLink
	query := `SELECT id, page_id, post_id, product_id, detected_product_name, created_at
	          FROM post_links WHERE page_id = $1 AND post_id = $2`
	err := r.db.GetContext(ctx, &link, query, pageID, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}
