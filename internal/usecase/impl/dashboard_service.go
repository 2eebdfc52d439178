package impl

import (
	"context"

	"cumple/internal/domain/entity"
	"cumple/internal/domain/repository"
	"cumple/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	eventRepo    repository.EventRepository
	guestRepo    repository.GuestRepository
	registryRepo repository.RegistryRepository
	expenseRepo  repository.ExpenseRepository
}

// DashboardServiceParams defines the dependencies for the dashboard service.
type DashboardServiceParams struct {
	fx.In

	EventRepo    repository.EventRepository
	GuestRepo    repository.GuestRepository
	RegistryRepo repository.RegistryRepository
	ExpenseRepo  repository.ExpenseRepository
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		eventRepo:    params.EventRepo,
		guestRepo:    params.GuestRepo,
		registryRepo: params.RegistryRepo,
		expenseRepo:  params.ExpenseRepo,
	}
}

// GetStats collects the headline numbers for the admin landing page.
func (srv *dashboardService) GetStats(ctx context.Context) (*usecase.DashboardStats, error) {
	stats := &usecase.DashboardStats{}
	var err error

	if stats.Events, err = srv.eventRepo.Count(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count events")
	}
	if stats.Guests, err = srv.guestRepo.Count(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count guests")
	}
	if stats.ConfirmedGuests, err = srv.guestRepo.CountByStatus(ctx, entity.RSVPConfirmed); err != nil {
		return nil, errors.Wrap(err, "failed to count confirmed guests")
	}
	if stats.PendingGuests, err = srv.guestRepo.CountByStatus(ctx, entity.RSVPPending); err != nil {
		return nil, errors.Wrap(err, "failed to count pending guests")
	}
	if stats.Gifts, err = srv.registryRepo.CountItems(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count registry items")
	}
	if stats.TotalExpenses, err = srv.expenseRepo.TotalAmount(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to sum expenses")
	}

	return stats, nil
}
