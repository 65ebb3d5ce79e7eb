package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	composeDelivery "github.com/ULLASCHANDERR/v0-professional-email-composer/internal/compose/delivery"
	composeUsecase "github.com/ULLASCHANDERR/v0-professional-email-composer/internal/compose/usecase"
	convDelivery "github.com/ULLASCHANDERR/v0-professional-email-composer/internal/conversation/delivery"
	convUsecase "github.com/ULLASCHANDERR/v0-professional-email-composer/internal/conversation/usecase"
	histDelivery "github.com/ULLASCHANDERR/v0-professional-email-composer/internal/history/delivery"
	histUsecase "github.com/ULLASCHANDERR/v0-professional-email-composer/internal/history/usecase"
)

func SetupRoutes(r *gin.Engine, conversationUc convUsecase.ConversationUsecase, historyUc histUsecase.HistoryUsecase, composeUc composeUsecase.ComposeUsecase) {
	conversationHandler := convDelivery.NewConversationHandler(conversationUc)
	historyHandler := histDelivery.NewHistoryHandler(historyUc)
	composeHandler := composeDelivery.NewComposeHandler(composeUc)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Completion gateway
		api.POST("/rephrase", composeHandler.Rephrase)
		api.POST("/compose-email", composeHandler.ComposeEmail)

		// Conversation store
		conversations := api.Group("/conversations")
		{
			conversations.GET("", conversationHandler.List)
			conversations.POST("", conversationHandler.Create)
			conversations.GET("/:id", conversationHandler.Get)
			conversations.PUT("/:id", conversationHandler.Update)
			conversations.DELETE("/:id", conversationHandler.Delete)
			conversations.PATCH("/:id/subject", conversationHandler.Rename)
			conversations.PATCH("/:id/pin", conversationHandler.TogglePinned)
			conversations.POST("/:id/messages", conversationHandler.AppendMessage)
		}

		// Active-conversation pointer (session scope, not persisted)
		active := api.Group("/active-conversation")
		{
			active.GET("", conversationHandler.GetActive)
			active.PUT("", conversationHandler.SetActive)
			active.POST("/ensure", conversationHandler.EnsureActive)
		}

		// History log and composer handoff
		history := api.Group("/history")
		{
			history.GET("", historyHandler.List)
			history.POST("", historyHandler.Append)
			history.PUT("/handoff", historyHandler.SetHandoff)
			history.POST("/handoff/consume", historyHandler.ConsumeHandoff)
		}

		// Settings routes - Runtime configuration
		settings := api.Group("/settings")
		{
			settings.GET("/gemini", GetGeminiSettings)
			settings.PUT("/gemini", UpdateGeminiSettings)
			settings.DELETE("/gemini", ClearGeminiSettings)
			settings.POST("/gemini/test", TestGeminiConnection)
		}
	}
}
