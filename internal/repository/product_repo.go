package repository

import (
	"context"

	"gorm.io/gorm"

	"retail_hub_v1_202608/internal/model"
)

// ProductRepository 商品仓储接口
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error
	ListByShop(ctx context.Context, shopID int64) ([]model.Product, error)
}

// productRepo 商品仓储实现
type productRepo struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓储
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepo) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).Updates(fields).Error
}

func (r *productRepo) ListByShop(ctx context.Context, shopID int64) ([]model.Product, error) {
	var products []model.Product
	if err := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("id ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
