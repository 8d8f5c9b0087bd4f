package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/models"
)

type ProductRepository interface {
	GetActiveByOwner(ctx context.Context, ownerID string) ([]*models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
}

type productRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewProductRepository(db *sqlx.DB, logger *zap.Logger) ProductRepository {
	return &productRepository{db: db, logger: logger}
}

const productColumns = `id, owner_id, name, price, description, category, sku, active, created_at, updated_at`

func (r *productRepository) GetActiveByOwner(ctx context.Context, ownerID string) ([]*models.Product, error) {
	var products []*models.Product
	query := `SELECT ` + productColumns + ` FROM products WHERE owner_id = $1 AND active = TRUE ORDER BY id`
	if err := r.db.SelectContext(ctx, &products, query, ownerID); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	err := r.db.GetContext(ctx, &product, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}
