package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/webfolio/contact-backend/services"
	"github.com/webfolio/contact-backend/types"
)

// IntakeServiceInterface is the pipeline contract consumed by the contact
// handler, extracted for handler tests.
type IntakeServiceInterface interface {
	Submit(ctx context.Context, sub types.ContactSubmission) services.IntakeResult
}

// ContactHandler handles contact-form submission endpoints.
type ContactHandler struct {
	intake IntakeServiceInterface
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(intake IntakeServiceInterface) *ContactHandler {
	return &ContactHandler{intake: intake}
}

// SubmitContact accepts a contact-form submission, runs it through the
// intake pipeline, and maps the outcome to the response contract:
// 200 {"message": ...} on success, 400 {"error": reason} on rejection,
// 500 {"error": "Server error"} on infrastructure failure.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var sub types.ContactSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		// An undecodable body carries no fields; absence is a validation
		// failure, not a server error.
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: types.ReasonFieldsRequired})
		return
	}

	result := h.intake.Submit(c.Request.Context(), sub)
	switch result.Outcome {
	case services.OutcomeRejected:
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: result.Reason})
	case services.OutcomeFailed:
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Server error"})
	default:
		c.JSON(http.StatusOK, types.MessageResponse{Message: "Message sent successfully!"})
	}
}
