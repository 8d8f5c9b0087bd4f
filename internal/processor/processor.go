// Package processor is the top-level orchestrator: it wires classification,
// product resolution, the dialogue state machine, fraud scoring, prompt
// construction, the completion call and order materialization into one
// stateless pass per inbound event.
package processor

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/classifier"
	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/dialogue"
	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/fraud"
	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/gemini"
	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/models"
	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/orders"
	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/prompt"
	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/repository"
	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/resolver"
)

// ErrPageNotConfigured means no PageRules row exists for the event's page.
var ErrPageNotConfigured = errors.New("page is not configured for automation")

// Localized fixed replies.
const (
	commentAckReply = "ধন্যবাদ! বিস্তারিত ইনবক্সে পাঠিয়েছি, দয়া করে দেখুন। 📩"
)

// Notifier is told about materialized orders. Implementations must not
// block request processing on failure.
type Notifier interface {
	OrderCreated(order *models.Order)
}

type Processor struct {
	rulesRepo        repository.PageRulesRepository
	conversationRepo repository.ConversationRepository
	classifier       *classifier.Classifier
	resolver         *resolver.Resolver
	completion       gemini.CompletionClient
	materializer     *orders.Materializer
	notifier         Notifier
	logger           *zap.Logger
	locks            *keyLock
}

func NewProcessor(
	rulesRepo repository.PageRulesRepository,
	conversationRepo repository.ConversationRepository,
	cls *classifier.Classifier,
	res *resolver.Resolver,
	completion gemini.CompletionClient,
	materializer *orders.Materializer,
	notifier Notifier,
	logger *zap.Logger,
) *Processor {
	return &Processor{
		rulesRepo:        rulesRepo,
		conversationRepo: conversationRepo,
		classifier:       cls,
		resolver:         res,
		completion:       completion,
		materializer:     materializer,
		notifier:         notifier,
		logger:           logger,
		locks:            newKeyLock(),
	}
}

// Process handles one inbound event end to end and always produces a result
// unless the page has no rules at all.
func (p *Processor) Process(ctx context.Context, event *models.InboundEvent) (*models.OutboundResult, error) {
	rules, err := p.rulesRepo.GetByPageID(ctx, event.PageID)
	if err != nil {
		return nil, err
	}
	if rules == nil {
		return nil, ErrPageNotConfigured
	}

	// Feature toggles gate the whole pipeline per channel.
	if event.IsComment && !rules.CommentReplyEnabled {
		return &models.OutboundResult{Skipped: true}, nil
	}
	if !event.IsComment && !rules.InboxReplyEnabled {
		return &models.OutboundResult{Skipped: true}, nil
	}

	// Serialize events for the same (page, sender) pair.
	lockKey := event.PageID + ":" + event.SenderID
	p.locks.Lock(lockKey)
	defer p.locks.Unlock(lockKey)

	conv, err := p.conversationRepo.GetOrCreate(ctx, event.PageID, event.SenderID, event.SenderName)
	if err != nil {
		return nil, err
	}

	// Normalize media variants before any classification.
	text := dialogue.Normalize(event.MessageType, event.MessageText, rules)
	intent := p.classifier.ClassifyIntent(text)
	sentiment := p.classifier.ClassifySentiment(text)

	product, post, err := p.resolver.Resolve(ctx, event)
	if err != nil {
		// Resolution is best-effort context; the reply can still go out.
		p.logger.Error("Product resolution failed", zap.Error(err), zap.String("page_id", event.PageID))
		product, post = nil, nil
	}
	if product != nil {
		conv.SetCurrentProduct(product)
	}

	historyCount, err := p.conversationRepo.CountMessages(ctx, conv.ID)
	if err != nil {
		p.logger.Error("Failed to count history", zap.Error(err), zap.Int64("conversation_id", conv.ID))
	}
	history, err := p.conversationRepo.GetRecentMessages(ctx, conv.ID, gemini.HistoryLimit)
	if err != nil {
		p.logger.Error("Failed to load history", zap.Error(err), zap.Int64("conversation_id", conv.ID))
		history = nil
	}

	// Fraud scoring sees the state the message arrived in.
	conv.FakeOrderScore = fraud.Score(conv.FakeOrderScore, text, conv.State, historyCount)

	// With order taking off, buying intent must not start a collection
	// dialogue; the reply still answers the question.
	machineIntent := intent
	if !rules.OrderTakingEnabled && intent == models.IntentOrderIntent {
		machineIntent = models.IntentGeneral
	}
	dialogue.Advance(conv, machineIntent, text)
	conv.LastMessageAt = time.Now().UTC()

	// Checkpoint: state and extraction persisted before the completion call.
	p.appendMessage(ctx, conv.ID, models.RoleUser, text, &intent, &sentiment)
	p.updateConversation(ctx, conv)

	// Prompt is built from the post-transition snapshot so the reply asks
	// for the next field, not the one just captured.
	systemPrompt := prompt.Build(rules, conv, product, post)
	reply := p.completion.Complete(ctx, systemPrompt, history, text)
	p.appendMessage(ctx, conv.ID, models.RoleAssistant, reply, nil, nil)

	result := &models.OutboundResult{
		Reply:             reply,
		Intent:            intent,
		Sentiment:         sentiment,
		ConversationState: conv.State,
		FakeOrderScore:    conv.FakeOrderScore,
	}

	if product != nil {
		result.ProductContext = &models.ProductContext{
			Name:  product.Name,
			Price: product.Price.String(),
		}
	}

	if event.IsComment {
		result.ShouldReact = true
		result.ReactionType = models.ReactionLike
		if sentiment == models.SentimentPositive {
			result.ReactionType = models.ReactionLove
		}
		switch intent {
		case models.IntentOrderIntent, models.IntentPriceInquiry, models.IntentInfoRequest:
			// Public acknowledgement stays short; the real reply goes to
			// the inbox.
			result.CommentReply = commentAckReply
			result.ShouldSendInbox = true
			result.InboxMessage = reply
		}
	}

	if rules.OrderTakingEnabled && conv.ReadyForOrder() {
		order, err := p.materializer.Materialize(ctx, conv, product, rules)
		if err != nil {
			// Best-effort: the customer already has a reply; the order can
			// be recovered from the persisted conversation.
			p.logger.Error("Order materialization failed", zap.Error(err), zap.Int64("conversation_id", conv.ID))
		} else if order != nil {
			result.OrderID = order.ID
			result.InvoiceNumber = order.InvoiceNumber
			result.ConversationState = conv.State
			p.updateConversation(ctx, conv)
			if p.notifier != nil {
				p.notifier.OrderCreated(order)
			}
		}
	}

	return result, nil
}

// appendMessage persists one history entry best-effort.
func (p *Processor) appendMessage(ctx context.Context, conversationID int64, role, content string, intent *models.Intent, sentiment *models.Sentiment) {
	msg := &models.ConversationMessage{
		ConversationID: conversationID,
		Role:           role,
		Content:        content,
		Intent:         intent,
		Sentiment:      sentiment,
	}
	if err := p.conversationRepo.AppendMessage(ctx, msg); err != nil {
		p.logger.Error("Failed to append message", zap.Error(err), zap.Int64("conversation_id", conversationID))
	}
}

// updateConversation writes the conversation back, retrying a lost
// optimistic race once from a fresh read.
func (p *Processor) updateConversation(ctx context.Context, conv *models.Conversation) {
	err := p.conversationRepo.Update(ctx, conv)
	if err == nil {
		return
	}
	if !errors.Is(err, repository.ErrVersionConflict) {
		p.logger.Error("Failed to persist conversation", zap.Error(err), zap.Int64("conversation_id", conv.ID))
		return
	}

	fresh, readErr := p.conversationRepo.GetOrCreate(ctx, conv.PageID, conv.SenderID, conv.SenderName)
	if readErr != nil {
		p.logger.Error("Failed to re-read conversation after version conflict", zap.Error(readErr), zap.Int64("conversation_id", conv.ID))
		return
	}
	conv.Version = fresh.Version
	if err := p.conversationRepo.Update(ctx, conv); err != nil {
		p.logger.Warn("Conversation write lost twice; answering from current state",
			zap.Int64("conversation_id", conv.ID), zap.Error(err))
	}
}
