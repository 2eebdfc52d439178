package handler

import (
	"log/slog"
	"net/http"

	"cumple/internal/delivery/http/response"
	"cumple/internal/domain/entity"
	"cumple/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// InviteHandler holds dependencies for the invitation workflow handler.
type InviteHandler struct {
	uc     usecase.InvitationUsecase
	logger *slog.Logger
}

// NewInviteHandler is the constructor for InviteHandler, injected by Fx.
func NewInviteHandler(uc usecase.InvitationUsecase, logger *slog.Logger) *InviteHandler {
	return &InviteHandler{uc: uc, logger: logger}
}

type inviteRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	EventID  string `json:"eventId" validate:"required"`
	Language string `json:"language"`
}

type inviteResponse struct {
	Message string `json:"message"`
}

// SendInvitation handles the invitation send request: a magic link for the
// guest plus the invitation email itself.
func (h *InviteHandler) SendInvitation(c echo.Context) error {
	var req inviteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid invitation input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Email, name and eventId are required")
	}

	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return response.BadRequest(c, "INVALID_EVENT_ID", "Invalid event ID format")
	}

	output, err := h.uc.SendInvitation(c.Request().Context(), usecase.SendInvitationInput{
		Email:    req.Email,
		Name:     req.Name,
		EventID:  eventID,
		Language: entity.NormalizeLanguage(req.Language),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &inviteResponse{Message: output.Message}, "Invitation sent")
}
