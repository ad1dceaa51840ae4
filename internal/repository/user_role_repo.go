package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"retail_hub_v1_202608/internal/model"
)

// UserRoleRepository 用户角色仓储接口
type UserRoleRepository interface {
	// Upsert 以 (user_id, shop_id) 为自然键插入或更新角色，返回最终行
	Upsert(ctx context.Context, role *model.UserRole) (*model.UserRole, error)
	GetByUserAndShop(ctx context.Context, userID, shopID int64) (*model.UserRole, error)
	ListByUser(ctx context.Context, userID int64) ([]model.UserRole, error)
}

// userRoleRepo 用户角色仓储实现
type userRoleRepo struct {
	db *gorm.DB
}

// NewUserRoleRepository 创建用户角色仓储
func NewUserRoleRepository(db *gorm.DB) UserRoleRepository {
	return &userRoleRepo{db: db}
}

// Upsert 依赖 idx_user_shop 唯一索引，在存储层做原子的 insert-or-update，
// 避免先查后写在并发下插出重复行
func (r *userRoleRepo) Upsert(ctx context.Context, role *model.UserRole) (*model.UserRole, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "shop_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"role", "updated_at"}),
	}).Create(role).Error
	if err != nil {
		return nil, err
	}
	// 冲突更新时 Create 不回填已存在行的主键，按自然键再查一次
	return r.GetByUserAndShop(ctx, role.UserID, role.ShopID)
}

func (r *userRoleRepo) GetByUserAndShop(ctx context.Context, userID, shopID int64) (*model.UserRole, error) {
	var role model.UserRole
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND shop_id = ?", userID, shopID).
		First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *userRoleRepo) ListByUser(ctx context.Context, userID int64) ([]model.UserRole, error) {
	var roles []model.UserRole
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}
