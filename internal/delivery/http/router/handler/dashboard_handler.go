package handler

import (
	"log/slog"
	"net/http"

	"cumple/internal/delivery/http/response"
	"cumple/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DashboardHandler holds dependencies for the admin dashboard handler.
type DashboardHandler struct {
	uc     usecase.DashboardUsecase
	logger *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(uc usecase.DashboardUsecase, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, logger: logger}
}

type dashboardResponse struct {
	Events          int64   `json:"events"`
	Guests          int64   `json:"guests"`
	ConfirmedGuests int64   `json:"confirmedGuests"`
	PendingGuests   int64   `json:"pendingGuests"`
	Gifts           int64   `json:"gifts"`
	TotalExpenses   float64 `json:"totalExpenses"`
}

// GetStats handles the dashboard aggregate counters request.
func (h *DashboardHandler) GetStats(c echo.Context) error {
	stats, err := h.uc.GetStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &dashboardResponse{
		Events:          stats.Events,
		Guests:          stats.Guests,
		ConfirmedGuests: stats.ConfirmedGuests,
		PendingGuests:   stats.PendingGuests,
		Gifts:           stats.Gifts,
		TotalExpenses:   stats.TotalExpenses,
	}, "Dashboard stats retrieved successfully")
}
