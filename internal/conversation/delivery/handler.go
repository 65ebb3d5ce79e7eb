package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	convdomain "github.com/ULLASCHANDERR/v0-professional-email-composer/internal/conversation/domain"
	convdto "github.com/ULLASCHANDERR/v0-professional-email-composer/internal/conversation/dto"
	"github.com/ULLASCHANDERR/v0-professional-email-composer/internal/conversation/usecase"
)

type ConversationHandler struct {
	conversationUsecase usecase.ConversationUsecase
}

func NewConversationHandler(conversationUsecase usecase.ConversationUsecase) *ConversationHandler {
	return &ConversationHandler{
		conversationUsecase: conversationUsecase,
	}
}

func (h *ConversationHandler) List(c *gin.Context) {
	convs, err := h.conversationUsecase.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, convdto.ConversationsResponse{Conversations: convs})
}

func (h *ConversationHandler) Create(c *gin.Context) {
	conv, err := h.conversationUsecase.Create()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, conv)
}

func (h *ConversationHandler) Get(c *gin.Context) {
	conv, err := h.conversationUsecase.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if conv == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
		return
	}
	c.JSON(http.StatusOK, conv)
}

func (h *ConversationHandler) Update(c *gin.Context) {
	var req convdto.UpdateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conv, err := h.conversationUsecase.Update(&convdomain.EmailConversation{
		ID:       c.Param("id"),
		Subject:  req.Subject,
		Messages: req.Messages,
		Pinned:   req.Pinned,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if conv == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
		return
	}
	c.JSON(http.StatusOK, conv)
}

func (h *ConversationHandler) Delete(c *gin.Context) {
	if err := h.conversationUsecase.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "conversation deleted"})
}

func (h *ConversationHandler) Rename(c *gin.Context) {
	var req convdto.RenameConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conv, err := h.conversationUsecase.Rename(c.Param("id"), req.Subject)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if conv == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
		return
	}
	c.JSON(http.StatusOK, conv)
}

func (h *ConversationHandler) TogglePinned(c *gin.Context) {
	conv, err := h.conversationUsecase.TogglePinned(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if conv == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
		return
	}
	c.JSON(http.StatusOK, conv)
}

func (h *ConversationHandler) AppendMessage(c *gin.Context) {
	var req convdto.AppendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conv, err := h.conversationUsecase.AppendMessage(c.Param("id"), req.Role, req.Content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if conv == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
		return
	}
	c.JSON(http.StatusCreated, conv)
}

// GetActive returns the active conversation and its derived draft. A
// missing active conversation is not an error; the conversation field
// is null and the draft empty.
func (h *ConversationHandler) GetActive(c *gin.Context) {
	conv, err := h.conversationUsecase.Active()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	resp := convdto.ActiveConversationResponse{Conversation: conv}
	if conv != nil {
		resp.CurrentDraft = conv.CurrentDraft()
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ConversationHandler) SetActive(c *gin.Context) {
	var req convdto.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conv, err := h.conversationUsecase.SetActive(req.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if conv == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
		return
	}
	c.JSON(http.StatusOK, convdto.ActiveConversationResponse{
		Conversation: conv,
		CurrentDraft: conv.CurrentDraft(),
	})
}

// EnsureActive is the composer bootstrap: it activates the first stored
// conversation or creates a fresh one when the store is empty.
func (h *ConversationHandler) EnsureActive(c *gin.Context) {
	conv, err := h.conversationUsecase.EnsureActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, convdto.ActiveConversationResponse{
		Conversation: conv,
		CurrentDraft: conv.CurrentDraft(),
	})
}
