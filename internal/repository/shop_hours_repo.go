package repository

import (
	"context"

	"gorm.io/gorm"

	"retail_hub_v1_202608/internal/model"
)

// ShopHoursRepository 营业时间仓储接口
type ShopHoursRepository interface {
	Create(ctx context.Context, hours *model.ShopHours) error
	GetByShopAndDay(ctx context.Context, shopID int64, dayOfWeek int) (*model.ShopHours, error)
	ListByShop(ctx context.Context, shopID int64) ([]model.ShopHours, error)
}

// shopHoursRepo 营业时间仓储实现
type shopHoursRepo struct {
	db *gorm.DB
}

// NewShopHoursRepository 创建营业时间仓储
func NewShopHoursRepository(db *gorm.DB) ShopHoursRepository {
	return &shopHoursRepo{db: db}
}

func (r *shopHoursRepo) Create(ctx context.Context, hours *model.ShopHours) error {
	return r.db.WithContext(ctx).Create(hours).Error
}

func (r *shopHoursRepo) GetByShopAndDay(ctx context.Context, shopID int64, dayOfWeek int) (*model.ShopHours, error) {
	var hours model.ShopHours
	if err := r.db.WithContext(ctx).
		Where("shop_id = ? AND day_of_week = ?", shopID, dayOfWeek).
		First(&hours).Error; err != nil {
		return nil, err
	}
	return &hours, nil
}

func (r *shopHoursRepo) ListByShop(ctx context.Context, shopID int64) ([]model.ShopHours, error) {
	var list []model.ShopHours
	if err := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("day_of_week ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
