// Package resolver determines which catalog product, if any, an exchange
// concerns. Resolution is read-only and never invents a product absent from
// the owner's active catalog.
package resolver

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/models"
	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/repository"
)

type Resolver struct {
	productRepo  repository.ProductRepository
	postLinkRepo repository.PostLinkRepository
	logger       *zap.Logger
}

func New(productRepo repository.ProductRepository, postLinkRepo repository.PostLinkRepository, logger *zap.Logger) *Resolver {
	return &Resolver{productRepo: productRepo, postLinkRepo: postLinkRepo, logger: logger}
}

// Resolve tries the post-linked path first for comment events, then falls
// back to fuzzy name matching against the owner's active catalog. Returns
// (product, postLink, error); product is nil when nothing matches.
func (r *Resolver) Resolve(ctx context.Context, event *models.InboundEvent) (*models.Product, *models.PostLink, error) {
	var link *models.PostLink
	if event.IsComment && event.PostID != "" {
		var err error
		link, err = r.postLinkRepo.GetByPagePost(ctx, event.PageID, event.PostID)
		if err != nil {
			return nil, nil, err
		}
		if link != nil && link.ProductID != nil {
			product, err := r.productRepo.GetByID(ctx, *link.ProductID)
			if err != nil {
				return nil, link, err
			}
			if product != nil && product.Active {
				return product, link, nil
			}
		}
	}

	product, err := r.matchByName(ctx, event.UserID, event.MessageText)
	if err != nil {
		return nil, link, err
	}
	return product, link, nil
}

// matchByName scans the active catalog and matches when the full product
// name appears in the message, or any name token longer than 3 characters
// does.
func (r *Resolver) matchByName(ctx context.Context, ownerID, text string) (*models.Product, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	products, err := r.productRepo.GetActiveByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	lowered := strings.ToLower(text)
	for _, product := range products {
		name := strings.ToLower(product.Name)
		if name != "" && strings.Contains(lowered, name) {
			return product, nil
		}
		for _, token := range strings.Fields(name) {
			if len([]rune(token)) > 3 && strings.Contains(lowered, token) {
				return product, nil
			}
		}
	}
	return nil, nil
}
