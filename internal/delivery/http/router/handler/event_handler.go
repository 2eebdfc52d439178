package handler

import (
	"log/slog"
	"net/http"
	"time"

	"cumple/internal/delivery/http/middleware"
	"cumple/internal/delivery/http/response"
	"cumple/internal/domain/entity"
	"cumple/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EventHandler holds dependencies for event management handlers.
type EventHandler struct {
	uc     usecase.EventUsecase
	logger *slog.Logger
}

// NewEventHandler is the constructor for EventHandler, injected by Fx.
func NewEventHandler(uc usecase.EventUsecase, logger *slog.Logger) *EventHandler {
	return &EventHandler{uc: uc, logger: logger}
}

type eventRequest struct {
	Title             string    `json:"title" validate:"required"`
	Celebrant         string    `json:"celebrant" validate:"required"`
	EventDate         time.Time `json:"eventDate" validate:"required"`
	VenueName         string    `json:"venueName" validate:"required"`
	AddressOfficial   string    `json:"addressOfficial" validate:"required"`
	AddressGoogleMaps string    `json:"addressGoogleMaps"`
	AddressAppleMaps  string    `json:"addressAppleMaps"`
	Description       string    `json:"description"`
	IsActive          *bool     `json:"isActive"`
	EmailSubjectES    string    `json:"emailSubjectEs"`
	EmailBodyES       string    `json:"emailBodyEs"`
	EmailSubjectEN    string    `json:"emailSubjectEn"`
	EmailBodyEN       string    `json:"emailBodyEn"`
}

// CreateEvent handles the event creation request.
func (h *EventHandler) CreateEvent(c echo.Context) error {
	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Title, celebrant, date and venue are required")
	}

	organizerID, ok := c.Get(middleware.KeyProfileID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated profile")
	}

	event, err := h.uc.CreateEvent(c.Request().Context(), usecase.CreateEventInput{
		OrganizerID:       organizerID,
		Title:             req.Title,
		Celebrant:         entity.Celebrant(req.Celebrant),
		EventDate:         req.EventDate,
		VenueName:         req.VenueName,
		AddressOfficial:   req.AddressOfficial,
		AddressGoogleMaps: req.AddressGoogleMaps,
		AddressAppleMaps:  req.AddressAppleMaps,
		Description:       req.Description,
		EmailSubjectES:    req.EmailSubjectES,
		EmailBodyES:       req.EmailBodyES,
		EmailSubjectEN:    req.EmailSubjectEN,
		EmailBodyEN:       req.EmailBodyEN,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toEventView(event), "Event created successfully")
}

// ListEvents handles the admin event list request, with guest tallies.
func (h *EventHandler) ListEvents(c echo.Context) error {
	events, err := h.uc.ListEvents(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*eventView, 0, len(events))
	for _, e := range events {
		v := toEventView(e.Event)
		guests := e.GuestCount
		confirmed := e.ConfirmedCount
		v.GuestCount = &guests
		v.ConfirmedCount = &confirmed
		views = append(views, v)
	}

	return response.Success(c, http.StatusOK, views, "Events retrieved successfully")
}

// GetEvent handles the single event request.
func (h *EventHandler) GetEvent(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_EVENT_ID", "Invalid event ID format")
	}

	detail, err := h.uc.GetEventDetail(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toEventDetailView(detail), "Event retrieved successfully")
}

// UpdateEvent handles the event update request. The request carries the
// full desired state of the event.
func (h *EventHandler) UpdateEvent(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_EVENT_ID", "Invalid event ID format")
	}

	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Title, celebrant, date and venue are required")
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	event, err := h.uc.UpdateEvent(c.Request().Context(), usecase.UpdateEventInput{
		ID:                id,
		Title:             req.Title,
		Celebrant:         entity.Celebrant(req.Celebrant),
		EventDate:         req.EventDate,
		VenueName:         req.VenueName,
		AddressOfficial:   req.AddressOfficial,
		AddressGoogleMaps: req.AddressGoogleMaps,
		AddressAppleMaps:  req.AddressAppleMaps,
		Description:       req.Description,
		IsActive:          isActive,
		EmailSubjectES:    req.EmailSubjectES,
		EmailBodyES:       req.EmailBodyES,
		EmailSubjectEN:    req.EmailSubjectEN,
		EmailBodyEN:       req.EmailBodyEN,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toEventView(event), "Event updated successfully")
}

type deleteEventResponse struct {
	GuestsRemoved   int64 `json:"guestsRemoved"`
	GiftsRemoved    int64 `json:"giftsRemoved"`
	ExpensesRemoved int64 `json:"expensesRemoved"`
}

// DeleteEvent handles the event deletion request. Guests, registry items
// and expenses go with the event; contribution records stay.
func (h *EventHandler) DeleteEvent(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_EVENT_ID", "Invalid event ID format")
	}

	output, err := h.uc.DeleteEvent(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &deleteEventResponse{
		GuestsRemoved:   output.GuestsRemoved,
		GiftsRemoved:    output.GiftsRemoved,
		ExpensesRemoved: output.ExpensesRemoved,
	}, "Event deleted successfully")
}

// GuestPageQR handles the QR code request for an event's guest page.
// Responds with the PNG bytes directly rather than the JSON envelope.
func (h *EventHandler) GuestPageQR(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_EVENT_ID", "Invalid event ID format")
	}

	png, err := h.uc.GuestPageQR(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
