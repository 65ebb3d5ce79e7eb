package api

import (
	"github.com/gin-gonic/gin"

	composeUsecase "github.com/ULLASCHANDERR/v0-professional-email-composer/internal/compose/usecase"
	convUsecase "github.com/ULLASCHANDERR/v0-professional-email-composer/internal/conversation/usecase"
	histUsecase "github.com/ULLASCHANDERR/v0-professional-email-composer/internal/history/usecase"
)

type Handler struct {
	conversationUsecase convUsecase.ConversationUsecase
	historyUsecase      histUsecase.HistoryUsecase
	composeUsecase      composeUsecase.ComposeUsecase
}

func NewHandler(conversationUc convUsecase.ConversationUsecase, historyUc histUsecase.HistoryUsecase, composeUc composeUsecase.ComposeUsecase) *Handler {
	return &Handler{
		conversationUsecase: conversationUc,
		historyUsecase:      historyUc,
		composeUsecase:      composeUc,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.conversationUsecase, h.historyUsecase, h.composeUsecase)

	return r.Run(addr)
}
