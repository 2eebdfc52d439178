package handler

import (
	"log/slog"
	"net/http"

	"cumple/internal/delivery/http/response"
	"cumple/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RegistryHandler holds dependencies for gift registry handlers.
type RegistryHandler struct {
	uc     usecase.RegistryUsecase
	logger *slog.Logger
}

// NewRegistryHandler is the constructor for RegistryHandler, injected by Fx.
func NewRegistryHandler(uc usecase.RegistryUsecase, logger *slog.Logger) *RegistryHandler {
	return &RegistryHandler{uc: uc, logger: logger}
}

type createGiftRequest struct {
	EventID      string  `json:"eventId" validate:"required"`
	Title        string  `json:"title" validate:"required"`
	Description  string  `json:"description"`
	TargetAmount float64 `json:"targetAmount" validate:"required,gt=0"`
	ImageURL     string  `json:"imageUrl"`
}

// CreateGift handles the admin request to add a registry item.
func (h *RegistryHandler) CreateGift(c echo.Context) error {
	var req createGiftRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid gift input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Event ID, title and a positive target amount are required")
	}

	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return response.BadRequest(c, "INVALID_EVENT_ID", "Invalid event ID format")
	}

	gift, err := h.uc.CreateGift(c.Request().Context(), usecase.CreateGiftInput{
		EventID:      eventID,
		Title:        req.Title,
		Description:  req.Description,
		TargetAmount: req.TargetAmount,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toGiftView(gift), "Gift added successfully")
}

// ListGifts handles the admin registry list request, optionally filtered
// by the event query parameter.
func (h *RegistryHandler) ListGifts(c echo.Context) error {
	var eventID *uuid.UUID
	if raw := c.QueryParam("event"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_EVENT_ID", "Invalid event ID format")
		}
		eventID = &id
	}

	gifts, err := h.uc.ListGifts(c.Request().Context(), eventID, false)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toGiftViews(gifts), "Gifts retrieved successfully")
}

// UploadGiftImage handles the multipart image upload for a registry item.
func (h *RegistryHandler) UploadGiftImage(c echo.Context) error {
	giftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_GIFT_ID", "Invalid gift ID format")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()

	gift, err := h.uc.UploadGiftImage(c.Request().Context(), usecase.UploadGiftImageInput{
		GiftID:      giftID,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toGiftView(gift), "Gift image uploaded successfully")
}
