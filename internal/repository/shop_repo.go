package repository

import (
	"context"

	"gorm.io/gorm"

	"retail_hub_v1_202608/internal/model"
)

// ==================== 接口定义 ====================

// ShopRepository 店铺仓储接口
// 读方法一律过滤 is_deleted = false，软删除的店铺对外表现为不存在
type ShopRepository interface {
	Create(ctx context.Context, shop *model.Shop) error
	GetActiveByID(ctx context.Context, id int64) (*model.Shop, error)
	ListActive(ctx context.Context) ([]model.Shop, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error
	SoftDelete(ctx context.Context, id int64) error
}

// ==================== 仓储实现 ====================

// shopRepo 店铺仓储实现
type shopRepo struct {
	db *gorm.DB
}

// NewShopRepository 创建店铺仓储
func NewShopRepository(db *gorm.DB) ShopRepository {
	return &shopRepo{db: db}
}

func (r *shopRepo) Create(ctx context.Context, shop *model.Shop) error {
	return r.db.WithContext(ctx).Create(shop).Error
}

func (r *shopRepo) GetActiveByID(ctx context.Context, id int64) (*model.Shop, error) {
	var shop model.Shop
	if err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&shop).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *shopRepo) ListActive(ctx context.Context) ([]model.Shop, error) {
	var shops []model.Shop
	if err := r.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("id ASC").
		Find(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}

func (r *shopRepo) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Shop{}).Where("id = ?", id).Updates(fields).Error
}

func (r *shopRepo) SoftDelete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&model.Shop{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}
