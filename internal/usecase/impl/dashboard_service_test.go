package impl

import (
	"context"
	"testing"

	"cumple/internal/domain/entity"
	mockRepo "cumple/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_GetStats_AggregatesCounters(t *testing.T) {
	eventRepo := mockRepo.NewMockEventRepository(t)
	guestRepo := mockRepo.NewMockGuestRepository(t)
	registryRepo := mockRepo.NewMockRegistryRepository(t)
	expenseRepo := mockRepo.NewMockExpenseRepository(t)

	svc := NewDashboardService(DashboardServiceParams{
		EventRepo:    eventRepo,
		GuestRepo:    guestRepo,
		RegistryRepo: registryRepo,
		ExpenseRepo:  expenseRepo,
	})

	ctx := context.Background()

	eventRepo.EXPECT().Count(ctx).Return(2, nil)
	guestRepo.EXPECT().Count(ctx).Return(40, nil)
	guestRepo.EXPECT().CountByStatus(ctx, entity.RSVPConfirmed).Return(25, nil)
	guestRepo.EXPECT().CountByStatus(ctx, entity.RSVPPending).Return(10, nil)
	registryRepo.EXPECT().CountItems(ctx).Return(6, nil)
	expenseRepo.EXPECT().TotalAmount(ctx).Return(1234.50, nil)

	stats, err := svc.GetStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Events)
	assert.Equal(t, int64(40), stats.Guests)
	assert.Equal(t, int64(25), stats.ConfirmedGuests)
	assert.Equal(t, int64(10), stats.PendingGuests)
	assert.Equal(t, int64(6), stats.Gifts)
	assert.Equal(t, 1234.50, stats.TotalExpenses)
}
