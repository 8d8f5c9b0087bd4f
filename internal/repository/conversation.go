package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/models"
)

// ErrVersionConflict is returned when an optimistic update lost the race to
// a concurrent writer. Callers should re-read and retry.
var ErrVersionConflict = errors.New("conversation was modified concurrently")

type ConversationRepository interface {
	// Get returns nil without error when no conversation exists yet.
	Get(ctx context.Context, pageID, senderID string) (*models.Conversation, error)
	GetOrCreate(ctx context.Context, pageID, senderID, senderName string) (*models.Conversation, error)
	Update(ctx context.Context, conv *models.Conversation) error
	AppendMessage(ctx context.Context, msg *models.ConversationMessage) error
	GetRecentMessages(ctx context.Context, conversationID int64, limit int) ([]*models.ConversationMessage, error)
	CountMessages(ctx context.Context, conversationID int64) (int, error)
}

type conversationRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewConversationRepository(db *sqlx.DB, logger *zap.Logger) ConversationRepository {
	return &conversationRepository{db: db, logger: logger}
}

const conversationColumns = `id, page_id, sender_id, sender_name, state,
	current_product_id, current_product_name, current_product_price,
	collected_name, collected_phone, collected_address,
	fake_order_score, version, last_message_at, created_at, updated_at`

func (r *conversationRepository) Get(ctx context.Context, pageID, senderID string) (*models.Conversation, error) {
	var conv models.Conversation
	query := `SELECT ` + conversationColumns + ` FROM conversations WHERE page_id = $1 AND sender_id = $2`
	err := r.db.GetContext(ctx, &conv, query, pageID, senderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &conv, nil
}

func (r *conversationRepository) GetOrCreate(ctx context.Context, pageID, senderID, senderName string) (*models.Conversation, error) {
	conv, err := r.Get(ctx, pageID, senderID)
	if err != nil {
		return nil, err
	}
	if conv != nil {
		return conv, nil
	}

	// Lazily create on first contact. ON CONFLICT keeps the (page, sender)
	// pair unique even when two first events race.
	insert := `INSERT INTO conversations (page_id, sender_id, sender_name, state, fake_order_score, version, last_message_at)
	           VALUES ($1, $2, $3, $4, 0, 1, NOW())
	           ON CONFLICT (page_id, sender_id) DO UPDATE SET sender_name = EXCLUDED.sender_name
	           RETURNING ` + conversationColumns
	created := &models.Conversation{}
	if err := r.db.QueryRowxContext(ctx, insert, pageID, senderID, senderName, models.StateIdle).StructScan(created); err != nil {
		return nil, err
	}
	r.logger.Info("New conversation started", zap.String("page_id", pageID), zap.String("sender_id", senderID))
	return created, nil
}

// Update writes the conversation back with a compare-and-swap on version.
func (r *conversationRepository) Update(ctx context.Context, conv *models.Conversation) error {
	query := `UPDATE conversations SET
			state = $1,
			current_product_id = $2,
			current_product_name = $3,
			current_product_price = $4,
			collected_name = $5,
			collected_phone = $6,
			collected_address = $7,
			fake_order_score = $8,
			last_message_at = $9,
			version = version + 1,
			updated_at = NOW()
		WHERE id = $10 AND version = $11`

	result, err := r.db.ExecContext(ctx, query,
		conv.State, conv.CurrentProductID, conv.CurrentProductName, conv.CurrentProductPrice,
		conv.CollectedName, conv.CollectedPhone, conv.CollectedAddress,
		conv.FakeOrderScore, conv.LastMessageAt, conv.ID, conv.Version)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrVersionConflict
	}

	conv.Version++
	return nil
}

func (r *conversationRepository) AppendMessage(ctx context.Context, msg *models.ConversationMessage) error {
	query := `INSERT INTO conversation_messages (conversation_id, role, content, intent, sentiment)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	return r.db.QueryRowxContext(ctx, query, msg.ConversationID, msg.Role, msg.Content, msg.Intent, msg.Sentiment).
		Scan(&msg.ID, &msg.CreatedAt)
}

// GetRecentMessages returns up to limit messages, oldest first.
func (r *conversationRepository) GetRecentMessages(ctx context.Context, conversationID int64, limit int) ([]*models.ConversationMessage, error) {
	var messages []*models.ConversationMessage
	query := `SELECT id, conversation_id, role, content, intent, sentiment, created_at
	          FROM (
	              SELECT id, conversation_id, role, content, intent, sentiment, created_at
	              FROM conversation_messages
	              WHERE conversation_id = $1
	              ORDER BY id DESC
	              LIMIT $2
	          ) recent
	          ORDER BY id ASC`
	if err := r.db.SelectContext(ctx, &messages, query, conversationID, limit); err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *conversationRepository) CountMessages(ctx context.Context, conversationID int64) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM conversation_messages WHERE conversation_id = $1`
	if err := r.db.GetContext(ctx, &count, query, conversationID); err != nil {
		return 0, err
	}
	return count, nil
}
