package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/models"
	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/processor"
)

// Fixed localized replies for the error taxonomy. Internal failures never
// surface as protocol errors to the customer, only as degraded replies.
const (
	notConfiguredReply = "দুঃখিত, এই পেজটি এখনো স্বয়ংক্রিয় উত্তরের জন্য সেটআপ করা হয়নি।"
	genericErrorReply  = "দুঃখিত, কিছু একটা সমস্যা হয়েছে। একটু পরে আবার চেষ্টা করুন। 🙏"
)

type WebhookHandler interface {
	Verify(c *gin.Context)
	HandleEvent(c *gin.Context)
}

type webhookHandler struct {
	processor   *processor.Processor
	verifyToken string
	logger      *zap.Logger
}

func NewWebhookHandler(p *processor.Processor, verifyToken string, logger *zap.Logger) WebhookHandler {
	return &webhookHandler{processor: p, verifyToken: verifyToken, logger: logger}
}

// Verify handles GET /webhook/event, the platform's subscription handshake.
func (h *webhookHandler) Verify(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && token == h.verifyToken {
		c.String(http.StatusOK, challenge)
		return
	}

	h.logger.Warn("Webhook verification rejected", zap.String("mode", mode))
	c.JSON(http.StatusForbidden, gin.H{"error": "Verification failed"})
}

// HandleEvent handles POST /webhook/event.
func (h *webhookHandler) HandleEvent(c *gin.Context) {
	var event models.InboundEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		h.logger.Error("Failed to bind inbound event", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if event.MessageType == "" {
		event.MessageType = models.MessageTypeText
	}

	result, err := h.processor.Process(c.Request.Context(), &event)
	if err != nil {
		if errors.Is(err, processor.ErrPageNotConfigured) {
			c.JSON(http.StatusNotFound, models.OutboundResult{
				Reply:     notConfiguredReply,
				Intent:    models.IntentGeneral,
				Sentiment: models.SentimentNeutral,
			})
			return
		}
		h.logger.Error("Event processing failed",
			zap.Error(err),
			zap.String("page_id", event.PageID),
			zap.String("sender_id", event.SenderID))
		c.JSON(http.StatusInternalServerError, models.OutboundResult{
			Reply:     genericErrorReply,
			Intent:    models.IntentGeneral,
			Sentiment: models.SentimentNeutral,
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
