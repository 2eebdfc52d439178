package usecase

import "context"

// DashboardStats are the headline numbers on the admin landing page.
type DashboardStats struct {
	Events          int64
	Guests          int64
	ConfirmedGuests int64
	PendingGuests   int64
	Gifts           int64
	TotalExpenses   float64
}

// DashboardUsecase defines the interface for the admin overview.
type DashboardUsecase interface {
	GetStats(ctx context.Context) (*DashboardStats, error)
}
