package repositories

import (
	"context"

	"gorm.io/gorm"

	"promptmail/internal/models"
)

type DeliveryRepository interface {
	Create(ctx context.Context, d *models.Delivery) error
	List(ctx context.Context, limit, offset int) ([]models.Delivery, error)
	CountByCategory(ctx context.Context) (map[models.Category]int64, error)
}

type deliveryRepository struct {
	db *gorm.DB
}

func NewDeliveryRepository(db *gorm.DB) DeliveryRepository {
	return &deliveryRepository{db: db}
}

func (r *deliveryRepository) Create(ctx context.Context, d *models.Delivery) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *deliveryRepository) List(ctx context.Context, limit, offset int) ([]models.Delivery, error) {
	var deliveries []models.Delivery
	q := r.db.WithContext(ctx).Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	if err := q.Find(&deliveries).Error; err != nil {
		return nil, err
	}
	return deliveries, nil
}

func (r *deliveryRepository) CountByCategory(ctx context.Context) (map[models.Category]int64, error) {
	var rows []struct {
		Category models.Category
		Total    int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.Delivery{}).
		Select("category, count(*) as total").
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.Category]int64, len(rows))
	for _, row := range rows {
		counts[row.Category] = row.Total
	}
	return counts, nil
}
