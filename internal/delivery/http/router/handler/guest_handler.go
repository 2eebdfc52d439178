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

// GuestHandler holds dependencies for guest-list handlers.
type GuestHandler struct {
	uc     usecase.GuestUsecase
	logger *slog.Logger
}

// NewGuestHandler is the constructor for GuestHandler, injected by Fx.
func NewGuestHandler(uc usecase.GuestUsecase, logger *slog.Logger) *GuestHandler {
	return &GuestHandler{uc: uc, logger: logger}
}

type addGuestRequest struct {
	EventID  string `json:"eventId" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Language string `json:"language"`
	PlusOnes int    `json:"plusOnes" validate:"gte=0"`
}

// AddGuest handles the admin request to add a guest to an event.
func (h *GuestHandler) AddGuest(c echo.Context) error {
	var req addGuestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid guest input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Event ID, email and name are required")
	}

	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return response.BadRequest(c, "INVALID_EVENT_ID", "Invalid event ID format")
	}

	guest, err := h.uc.AddGuest(c.Request().Context(), usecase.AddGuestInput{
		EventID:  eventID,
		Email:    req.Email,
		Name:     req.Name,
		Language: entity.NormalizeLanguage(req.Language),
		PlusOnes: req.PlusOnes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toGuestView(guest), "Guest added successfully")
}

// ListGuests handles the admin guest list request, optionally filtered by
// the event query parameter.
func (h *GuestHandler) ListGuests(c echo.Context) error {
	var eventID *uuid.UUID
	if raw := c.QueryParam("event"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_EVENT_ID", "Invalid event ID format")
		}
		eventID = &id
	}

	guests, err := h.uc.ListGuests(c.Request().Context(), eventID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toGuestViews(guests), "Guests retrieved successfully")
}

type updateRSVPRequest struct {
	Status       string `json:"status" validate:"required"`
	PlusOnes     int    `json:"plusOnes" validate:"gte=0"`
	DietaryNotes string `json:"dietaryNotes"`
}

// UpdateRSVP handles the admin-side RSVP correction on a guest record.
func (h *GuestHandler) UpdateRSVP(c echo.Context) error {
	guestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_GUEST_ID", "Invalid guest ID format")
	}

	var req updateRSVPRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid RSVP input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Status is required")
	}

	guest, err := h.uc.UpdateRSVP(c.Request().Context(), usecase.UpdateRSVPInput{
		GuestID:      guestID,
		Status:       entity.RSVPStatus(req.Status),
		PlusOnes:     req.PlusOnes,
		DietaryNotes: req.DietaryNotes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toGuestView(guest), "RSVP updated successfully")
}
