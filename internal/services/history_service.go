package services

import (
	"context"
	"errors"

	"promptmail/internal/models"
	"promptmail/internal/repositories"
)

var ErrHistoryDisabled = errors.New("delivery history is disabled")

const DefaultHistoryLimit = 20

type HistoryService interface {
	Recent(ctx context.Context, limit int) ([]models.Delivery, error)
	Summary(ctx context.Context) (map[models.Category]int64, error)
}

type historyService struct {
	repo repositories.DeliveryRepository
}

// NewHistoryService accepts a nil repo, in which case every call returns
// ErrHistoryDisabled.
func NewHistoryService(repo repositories.DeliveryRepository) HistoryService {
	return &historyService{repo: repo}
}

func (s *historyService) Recent(ctx context.Context, limit int) ([]models.Delivery, error) {
	if s.repo == nil {
		return nil, ErrHistoryDisabled
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return s.repo.List(ctx, limit, 0)
}

func (s *historyService) Summary(ctx context.Context) (map[models.Category]int64, error) {
	if s.repo == nil {
		return nil, ErrHistoryDisabled
	}
	return s.repo.CountByCategory(ctx)
}
