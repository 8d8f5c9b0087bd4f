package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/config"
	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/handler"
	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/middleware"
	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/processor"
	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/repository"
)

type Server struct {
	router *gin.Engine
	db     *sqlx.DB
	cfg    *config.Config
	logger *zap.Logger
}

func NewServer(db *sqlx.DB, cfg *config.Config, proc *processor.Processor, logger *zap.Logger) *Server {
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		router: router,
		db:     db,
		cfg:    cfg,
		logger: logger,
	}

	s.setupRoutes(proc)

	return s
}

func (s *Server) setupRoutes(proc *processor.Processor) {
	conversationRepo := repository.NewConversationRepository(s.db, s.logger)
	orderRepo := repository.NewOrderRepository(s.db, s.logger)

	webhookHandler := handler.NewWebhookHandler(proc, s.cfg.Webhook.VerifyToken, s.logger)
	opsHandler := handler.NewOpsHandler(conversationRepo, orderRepo, s.logger)

	// Ping route for health check
	s.router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Platform webhook: GET handshake, POST events.
	webhookGroup := s.router.Group("/webhook")
	webhookGroup.GET("/event", webhookHandler.Verify)
	webhookGroup.POST("/event",
		middleware.SignatureMiddleware(s.cfg.Webhook.AppSecret, s.logger),
		webhookHandler.HandleEvent)

	// Read-only ops API.
	opsGroup := s.router.Group("/api")
	opsGroup.Use(middleware.AuthMiddleware([]byte(s.cfg.OpsAPI.JWTSecret), s.logger))
	{
		opsGroup.GET("/conversations/:pageId/:senderId", opsHandler.GetConversation)
		opsGroup.GET("/orders/:pageId", opsHandler.GetOrders)
	}
}

func (s *Server) Run(addr string) error {
	s.logger.Info("Server starting", zap.String("addr", addr))
	return s.router.Run(addr)
}
