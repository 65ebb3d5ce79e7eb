package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	histdomain "github.com/ULLASCHANDERR/v0-professional-email-composer/internal/history/domain"
	"github.com/ULLASCHANDERR/v0-professional-email-composer/internal/history/usecase"
)

type HistoryHandler struct {
	historyUsecase usecase.HistoryUsecase
}

func NewHistoryHandler(historyUsecase usecase.HistoryUsecase) *HistoryHandler {
	return &HistoryHandler{
		historyUsecase: historyUsecase,
	}
}

type appendHistoryRequest struct {
	Type         histdomain.HistoryType      `json:"type" binding:"required,oneof=compose rephrase"`
	Model        string                      `json:"model"`
	InputText    string                      `json:"inputText"`
	CurrentDraft string                      `json:"currentDraft"`
	Conversation []histdomain.HistoryMessage `json:"conversation"`
}

func (h *HistoryHandler) List(c *gin.Context) {
	items, err := h.historyUsecase.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if items == nil {
		items = []histdomain.APIHistoryItem{}
	}
	c.JSON(http.StatusOK, gin.H{"history": items})
}

func (h *HistoryHandler) Append(c *gin.Context) {
	var req appendHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := h.historyUsecase.Append(histdomain.APIHistoryItem{
		Type:         req.Type,
		Model:        req.Model,
		InputText:    req.InputText,
		CurrentDraft: req.CurrentDraft,
		Conversation: req.Conversation,
	})
	c.JSON(http.StatusCreated, item)
}

func (h *HistoryHandler) SetHandoff(c *gin.Context) {
	var payload histdomain.HandoffPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.historyUsecase.SetHandoff(payload); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "handoff payload stored"})
}

// ConsumeHandoff returns the pending payload and clears the slot; the
// payload field is null when nothing is waiting.
func (h *HistoryHandler) ConsumeHandoff(c *gin.Context) {
	payload, err := h.historyUsecase.ConsumeHandoff()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"payload": payload})
}
