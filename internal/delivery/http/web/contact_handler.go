package web

import (
	"errors"
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact relay route
func NewContactHandler(r gin.IRouter, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	r.POST("/email", handler.SubmitContact)
}

// SubmitContact accepts a contact form message and relays it to the site
// owner's inbox. Validation failures are the caller's fault (400); a
// failing mail provider is not (502), and its response never reaches the
// client.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var msg domain.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.Error(apperror.BadRequest("invalid contact message"))
		return
	}

	if err := h.contactUC.SendContactMessage(c.Request.Context(), &msg); err != nil {
		if errors.Is(err, domain.ErrInvalidContact) {
			c.Error(apperror.BadRequest(err.Error()))
			return
		}
		c.Error(apperror.BadGateway("Failed to send message. Please try again later.", err))
		return
	}

	response.Success(c, http.StatusOK, true)
}
