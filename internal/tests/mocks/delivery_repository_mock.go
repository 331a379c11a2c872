package mocks

import (
	"context"
	"sync"

	"promptmail/internal/models"
)

type DeliveryRepositoryMock struct {
	CreateFunc          func(ctx context.Context, d *models.Delivery) error
	ListFunc            func(ctx context.Context, limit, offset int) ([]models.Delivery, error)
	CountByCategoryFunc func(ctx context.Context) (map[models.Category]int64, error)

	mu      sync.Mutex
	Created []models.Delivery
}

func (m *DeliveryRepositoryMock) Create(ctx context.Context, d *models.Delivery) error {
	m.mu.Lock()
	m.Created = append(m.Created, *d)
	m.mu.Unlock()
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, d)
	}
	return nil
}

func (m *DeliveryRepositoryMock) List(ctx context.Context, limit, offset int) ([]models.Delivery, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	return nil, nil
}

func (m *DeliveryRepositoryMock) CountByCategory(ctx context.Context) (map[models.Category]int64, error) {
	if m.CountByCategoryFunc != nil {
		return m.CountByCategoryFunc(ctx)
	}
	return map[models.Category]int64{}, nil
}

func (m *DeliveryRepositoryMock) Records() []models.Delivery {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Delivery(nil), m.Created...)
}
