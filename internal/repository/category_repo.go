package repository

import (
	"context"

	"gorm.io/gorm"

	"retail_hub_v1_202608/internal/model"
)

// CategoryRepository 商品分类仓储接口
type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	List(ctx context.Context) ([]model.Category, error)
}

// categoryRepo 商品分类仓储实现
type categoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepository 创建分类仓储
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) Create(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepo) List(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
