package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/repository"
)

// OpsHandler serves the read-only inspection API for operators.
type OpsHandler interface {
	GetConversation(c *gin.Context)
	GetOrders(c *gin.Context)
}

type opsHandler struct {
	conversationRepo repository.ConversationRepository
	orderRepo        repository.OrderRepository
	logger           *zap.Logger
}

func NewOpsHandler(conversationRepo repository.ConversationRepository, orderRepo repository.OrderRepository, logger *zap.Logger) OpsHandler {
	return &opsHandler{conversationRepo: conversationRepo, orderRepo: orderRepo, logger: logger}
}

// GetConversation handles GET /api/conversations/:pageId/:senderId
func (h *opsHandler) GetConversation(c *gin.Context) {
	pageID := c.Param("pageId")
	senderID := c.Param("senderId")

	conv, err := h.conversationRepo.Get(c.Request.Context(), pageID, senderID)
	if err != nil {
		h.logger.Error("Failed to get conversation", zap.Error(err), zap.String("page_id", pageID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve conversation"})
		return
	}
	if conv == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
		return
	}

	messages, err := h.conversationRepo.GetRecentMessages(c.Request.Context(), conv.ID, 20)
	if err != nil {
		h.logger.Error("Failed to get messages", zap.Error(err), zap.Int64("conversation_id", conv.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve messages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"conversation": conv, "messages": messages})
}

// GetOrders handles GET /api/orders/:pageId
func (h *opsHandler) GetOrders(c *gin.Context) {
	pageID := c.Param("pageId")

	orders, err := h.orderRepo.GetOrdersByPage(c.Request.Context(), pageID)
	if err != nil {
		h.logger.Error("Failed to get orders", zap.Error(err), zap.String("page_id", pageID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
