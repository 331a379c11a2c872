package unit_tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptmail/internal/models"
	"promptmail/internal/services"
	"promptmail/internal/tests/mocks"
)

func TestHistoryService_Disabled(t *testing.T) {
	svc := services.NewHistoryService(nil)

	_, err := svc.Recent(context.Background(), 5)
	assert.ErrorIs(t, err, services.ErrHistoryDisabled)
	_, err = svc.Summary(context.Background())
	assert.ErrorIs(t, err, services.ErrHistoryDisabled)
}

func TestHistoryService_RecentDefaultsLimit(t *testing.T) {
	var gotLimit int
	repo := &mocks.DeliveryRepositoryMock{
		ListFunc: func(ctx context.Context, limit, offset int) ([]models.Delivery, error) {
			gotLimit = limit
			return []models.Delivery{{ID: 1, Category: models.CategoryOK}}, nil
		},
	}
	svc := services.NewHistoryService(repo)

	list, err := svc.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, services.DefaultHistoryLimit, gotLimit)
}
