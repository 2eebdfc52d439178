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

// PublicHandler holds dependencies for the guest-facing handlers: the
// event page, the gift registry and the RSVP form.
type PublicHandler struct {
	eventUC        usecase.EventUsecase
	guestUC        usecase.GuestUsecase
	registryUC     usecase.RegistryUsecase
	contributionUC usecase.ContributionUsecase
	logger         *slog.Logger
}

// NewPublicHandler is the constructor for PublicHandler, injected by Fx.
func NewPublicHandler(
	eventUC usecase.EventUsecase,
	guestUC usecase.GuestUsecase,
	registryUC usecase.RegistryUsecase,
	contributionUC usecase.ContributionUsecase,
	logger *slog.Logger,
) *PublicHandler {
	return &PublicHandler{
		eventUC:        eventUC,
		guestUC:        guestUC,
		registryUC:     registryUC,
		contributionUC: contributionUC,
		logger:         logger,
	}
}

type publicEventResponse struct {
	Event *eventView  `json:"event"`
	Gifts []*giftView `json:"gifts"`
}

// GetEvent handles the guest-facing event page request. Only active
// events are visible, and only unfulfilled gifts are offered.
func (h *PublicHandler) GetEvent(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_EVENT_ID", "Invalid event ID format")
	}

	view, err := h.eventUC.GetPublicEvent(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &publicEventResponse{
		Event: toEventView(view.Event),
		Gifts: toGiftViews(view.Gifts),
	}, "Event retrieved successfully")
}

type giftDetailResponse struct {
	Event         *eventView          `json:"event"`
	Gift          *giftView           `json:"gift"`
	Contributions []*contributionView `json:"contributions"`
}

// GetGift handles the guest-facing gift detail request for the contribute
// form: the gift with its ledger plus the active event it belongs to.
func (h *PublicHandler) GetGift(c echo.Context) error {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_EVENT_ID", "Invalid event ID format")
	}
	giftID, err := uuid.Parse(c.Param("giftId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_GIFT_ID", "Invalid gift ID format")
	}

	detail, err := h.registryUC.GetPublicGift(c.Request().Context(), eventID, giftID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &giftDetailResponse{
		Event:         toEventView(detail.Event),
		Gift:          toGiftView(detail.Gift),
		Contributions: toContributionViews(detail.Contributions),
	}, "Gift retrieved successfully")
}

type contributeRequest struct {
	Email       string  `json:"email" validate:"required,email"`
	Name        string  `json:"name" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Message     string  `json:"message"`
	IsAnonymous bool    `json:"isAnonymous"`
}

type contributeResponse struct {
	Contribution *contributionView `json:"contribution"`
	Gift         *giftView         `json:"gift"`
}

// Contribute handles a guest's contribution toward a gift.
func (h *PublicHandler) Contribute(c echo.Context) error {
	giftID, err := uuid.Parse(c.Param("giftId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_GIFT_ID", "Invalid gift ID format")
	}

	var req contributeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contribution input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Email, name and a positive amount are required")
	}

	output, err := h.contributionUC.Contribute(c.Request().Context(), usecase.ContributeInput{
		GiftID:      giftID,
		Email:       req.Email,
		Name:        req.Name,
		Amount:      req.Amount,
		Message:     req.Message,
		IsAnonymous: req.IsAnonymous,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, &contributeResponse{
		Contribution: toContributionView(output.Contribution),
		Gift:         toGiftView(output.Gift),
	}, "Contribution recorded successfully")
}

type respondRSVPRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Status       string `json:"status" validate:"required"`
	PlusOnes     int    `json:"plusOnes" validate:"gte=0"`
	DietaryNotes string `json:"dietaryNotes"`
}

// RespondRSVP handles a guest's own RSVP response for an event.
func (h *PublicHandler) RespondRSVP(c echo.Context) error {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_EVENT_ID", "Invalid event ID format")
	}

	var req respondRSVPRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid RSVP input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Email and status are required")
	}

	guest, err := h.guestUC.RespondRSVP(c.Request().Context(), usecase.RespondRSVPInput{
		EventID:      eventID,
		Email:        req.Email,
		Status:       entity.RSVPStatus(req.Status),
		PlusOnes:     req.PlusOnes,
		DietaryNotes: req.DietaryNotes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toGuestView(guest), "RSVP recorded successfully")
}
