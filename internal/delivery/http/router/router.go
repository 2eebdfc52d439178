// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cumple/internal/delivery/http/middleware"
	"cumple/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	InviteHandler    *handler.InviteHandler
	EventHandler     *handler.EventHandler
	GuestHandler     *handler.GuestHandler
	RegistryHandler  *handler.RegistryHandler
	SupplierHandler  *handler.SupplierHandler
	ExpenseHandler   *handler.ExpenseHandler
	DashboardHandler *handler.DashboardHandler
	PublicHandler    *handler.PublicHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	inviteHandler    *handler.InviteHandler
	eventHandler     *handler.EventHandler
	guestHandler     *handler.GuestHandler
	registryHandler  *handler.RegistryHandler
	supplierHandler  *handler.SupplierHandler
	expenseHandler   *handler.ExpenseHandler
	dashboardHandler *handler.DashboardHandler
	publicHandler    *handler.PublicHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		inviteHandler:    params.InviteHandler,
		eventHandler:     params.EventHandler,
		guestHandler:     params.GuestHandler,
		registryHandler:  params.RegistryHandler,
		supplierHandler:  params.SupplierHandler,
		expenseHandler:   params.ExpenseHandler,
		dashboardHandler: params.DashboardHandler,
		publicHandler:    params.PublicHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Guest-facing routes. The event page, gift registry and RSVP are
	// reachable without a session so the magic link lands somewhere useful.
	publicGroup := e.Group("/event")
	{
		publicGroup.GET("/:id", r.publicHandler.GetEvent)
		publicGroup.POST("/:id/rsvp", r.publicHandler.RespondRSVP)
		publicGroup.GET("/:id/gifts/:giftId", r.publicHandler.GetGift)
		publicGroup.POST("/:id/gifts/:giftId/contributions", r.publicHandler.Contribute)
	}

	// Admin routes require authentication and the "admin" role.
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole("admin"))
	{
		adminGroup.POST("/invite", r.inviteHandler.SendInvitation)

		adminGroup.POST("/events", r.eventHandler.CreateEvent)
		adminGroup.GET("/events", r.eventHandler.ListEvents)
		adminGroup.GET("/events/:id", r.eventHandler.GetEvent)
		adminGroup.PUT("/events/:id", r.eventHandler.UpdateEvent)
		adminGroup.DELETE("/events/:id", r.eventHandler.DeleteEvent)
		adminGroup.GET("/events/:id/qrcode", r.eventHandler.GuestPageQR)

		adminGroup.POST("/guests", r.guestHandler.AddGuest)
		adminGroup.GET("/guests", r.guestHandler.ListGuests)
		adminGroup.PUT("/guests/:id/rsvp", r.guestHandler.UpdateRSVP)

		adminGroup.POST("/gifts", r.registryHandler.CreateGift)
		adminGroup.GET("/gifts", r.registryHandler.ListGifts)
		adminGroup.POST("/gifts/:id/image", r.registryHandler.UploadGiftImage)

		adminGroup.POST("/suppliers", r.supplierHandler.CreateSupplier)
		adminGroup.GET("/suppliers", r.supplierHandler.ListSuppliers)
		adminGroup.GET("/suppliers/:id", r.supplierHandler.GetSupplier)

		adminGroup.POST("/expenses", r.expenseHandler.CreateExpense)
		adminGroup.GET("/expenses", r.expenseHandler.ListExpenses)
		adminGroup.PUT("/expenses/:id/status", r.expenseHandler.SetExpenseStatus)

		adminGroup.GET("/dashboard", r.dashboardHandler.GetStats)
	}
}
