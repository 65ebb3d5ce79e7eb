package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	composedto "github.com/ULLASCHANDERR/v0-professional-email-composer/internal/compose/dto"
	"github.com/ULLASCHANDERR/v0-professional-email-composer/internal/compose/usecase"
	"github.com/ULLASCHANDERR/v0-professional-email-composer/pkg/apperr"
)

type ComposeHandler struct {
	composeUsecase usecase.ComposeUsecase
}

func NewComposeHandler(composeUsecase usecase.ComposeUsecase) *ComposeHandler {
	return &ComposeHandler{
		composeUsecase: composeUsecase,
	}
}

func (h *ComposeHandler) Rephrase(c *gin.Context) {
	var req composedto.RephraseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rephrased, err := h.composeUsecase.Rephrase(c.Request.Context(), req.Text)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, composedto.RephraseResponse{RephrasedText: rephrased})
}

func (h *ComposeHandler) ComposeEmail(c *gin.Context) {
	var req composedto.ComposeEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	generated, err := h.composeUsecase.Compose(c.Request.Context(), req.Conversation, req.CurrentDraft)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, composedto.ComposeEmailResponse{GeneratedEmail: generated})
}
