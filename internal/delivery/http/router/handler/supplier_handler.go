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

// SupplierHandler holds dependencies for supplier directory handlers.
type SupplierHandler struct {
	uc     usecase.SupplierUsecase
	logger *slog.Logger
}

// NewSupplierHandler is the constructor for SupplierHandler, injected by Fx.
func NewSupplierHandler(uc usecase.SupplierUsecase, logger *slog.Logger) *SupplierHandler {
	return &SupplierHandler{uc: uc, logger: logger}
}

type createSupplierRequest struct {
	Name         string `json:"name" validate:"required"`
	Category     string `json:"category"`
	ContactName  string `json:"contactName"`
	ContactPhone string `json:"contactPhone"`
	ContactEmail string `json:"contactEmail" validate:"omitempty,email"`
	Notes        string `json:"notes"`
}

// CreateSupplier handles the supplier creation request.
func (h *SupplierHandler) CreateSupplier(c echo.Context) error {
	var req createSupplierRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid supplier input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Supplier name is required")
	}

	supplier, err := h.uc.CreateSupplier(c.Request().Context(), usecase.CreateSupplierInput{
		Name:         req.Name,
		Category:     req.Category,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
		Notes:        req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toSupplierView(supplier), "Supplier created successfully")
}

// GetSupplier handles the single supplier request.
func (h *SupplierHandler) GetSupplier(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_SUPPLIER_ID", "Invalid supplier ID format")
	}

	supplier, err := h.uc.GetSupplier(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSupplierView(supplier), "Supplier retrieved successfully")
}

// ListSuppliers handles the supplier directory list request.
func (h *SupplierHandler) ListSuppliers(c echo.Context) error {
	suppliers, err := h.uc.ListSuppliers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*supplierView, 0, len(suppliers))
	for _, s := range suppliers {
		views = append(views, toSupplierView(s))
	}

	return response.Success(c, http.StatusOK, views, "Suppliers retrieved successfully")
}
