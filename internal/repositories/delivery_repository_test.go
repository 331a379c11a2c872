package repositories

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptmail/internal/database"
	"promptmail/internal/models"
)

func TestDeliveryRepository_CreateListCount(t *testing.T) {
	db, err := database.Init(database.Config{Path: filepath.Join(t.TempDir(), "history.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	repo := NewDeliveryRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Delivery{Recipient: "a@example.com", Category: models.CategoryOK, Status: "done"}))
	require.NoError(t, repo.Create(ctx, &models.Delivery{Recipient: "a@example.com", Category: models.CategoryTimeout, Status: "timeout"}))
	require.NoError(t, repo.Create(ctx, &models.Delivery{Recipient: "b@example.com", Category: models.CategoryOK, Status: "done"}))

	latest, err := repo.List(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, "b@example.com", latest[0].Recipient)
	assert.Equal(t, models.CategoryTimeout, latest[1].Category)

	counts, err := repo.CountByCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[models.CategoryOK])
	assert.Equal(t, int64(1), counts[models.CategoryTimeout])
}
