package stores

import (
	"context"
	"errors"

	"github.com/vastramart/vastramart-api/models"
	"github.com/vastramart/vastramart-api/services"
	"gorm.io/gorm"
)

type OrderStore struct {
	db *gorm.DB
}

func NewOrderStore(db *gorm.DB) *OrderStore {
	return &OrderStore{db: db}
}

func (s *OrderStore) Create(ctx context.Context, order *models.Order) error {
	return s.db.WithContext(ctx).Create(order).Error
}

func (s *OrderStore) Save(ctx context.Context, order *models.Order) error {
	return s.db.WithContext(ctx).Save(order).Error
}

func (s *OrderStore) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).Preload("Products").First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (s *OrderStore) FindByIdempotencyKey(ctx context.Context, userID, key string) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND idempotency_key = ?", userID, key).
		Preload("Products").
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (s *OrderStore) FindByUserID(ctx context.Context, userID, sort string) ([]models.Order, error) {
	if sort != "asc" && sort != "desc" {
		sort = "desc"
	}

	var orders []models.Order
	err := s.db.WithContext(ctx).
		Preload("Products").
		Where("user_id = ?", userID).
		Order("created_at " + sort).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderStore) List(ctx context.Context, query services.ListOrdersQuery) ([]models.Order, int64, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 {
		query.Limit = 15
	}
	if query.Sort != "asc" && query.Sort != "desc" {
		query.Sort = "desc"
	}
	offset := (query.Page - 1) * query.Limit

	countQuery := s.db.WithContext(ctx).Model(&models.Order{})
	if query.Search != "" {
		countQuery = countQuery.Where("id LIKE ?", "%"+query.Search+"%")
	}

	var count int64
	if err := countQuery.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	listQuery := s.db.WithContext(ctx)
	if query.Search != "" {
		listQuery = listQuery.Where("id LIKE ?", "%"+query.Search+"%")
	}

	var orders []models.Order
	err := listQuery.Preload("Products").
		Order("created_at " + query.Sort).
		Limit(query.Limit).
		Offset(offset).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, count, nil
}

func (s *OrderStore) CountByStatus(ctx context.Context, status models.OrderStatus) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
