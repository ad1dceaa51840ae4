package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"retail_hub_v1_202608/internal/api/dto"
	"retail_hub_v1_202608/internal/model"
	"retail_hub_v1_202608/internal/repository"
)

// UserService 用户业务：用户 CRUD、软删除、店铺角色
type UserService struct {
	userRepo repository.UserRepository
	roleRepo repository.UserRoleRepository
}

func NewUserService(userRepo repository.UserRepository, roleRepo repository.UserRoleRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		roleRepo: roleRepo,
	}
}

// ListUsers 查全部未删除用户
func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.userRepo.ListActive(ctx)
}

// GetUser 查单个用户，软删除的用户与不存在等价
func (s *UserService) GetUser(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.userRepo.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// CreateUser 新建用户
func (s *UserService) CreateUser(ctx context.Context, req dto.UserSaveReq) (*model.User, error) {
	user := &model.User{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser 更新用户
func (s *UserService) UpdateUser(ctx context.Context, id int64, req dto.UserSaveReq) (*model.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"name":         req.Name,
		"phone_number": req.PhoneNumber,
	}
	if err := s.userRepo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}

	user.Name = req.Name
	user.PhoneNumber = req.PhoneNumber
	return user, nil
}

// DeleteUser 软删除用户，已删除的用户再删一次返回 not found
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	if _, err := s.GetUser(ctx, id); err != nil {
		return err
	}
	return s.userRepo.SoftDelete(ctx, id)
}

// ModifyRole 修改用户在某店铺的角色
// (user_id, shop_id) 已有角色行则原地覆盖 role 字段，否则插入新行
func (s *UserService) ModifyRole(ctx context.Context, userID int64, req dto.UserRoleModifyReq) (*model.UserRole, error) {
	if _, err := s.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	return s.roleRepo.Upsert(ctx, &model.UserRole{
		UserID: userID,
		ShopID: req.ShopID,
		Role:   req.Role,
	})
}
