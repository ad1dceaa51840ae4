package dto

import (
	"retail_hub_v1_202608/internal/model"
)

// ==================== 请求 ====================

// UserSaveReq 用户创建/更新参数
type UserSaveReq struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

// UserRoleModifyReq 用户角色修改参数
type UserRoleModifyReq struct {
	ShopID int64  `json:"shop_id"`
	Role   string `json:"role"`
}

// ==================== 响应 ====================

// UserResp 用户扁平响应体
type UserResp struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	IsDeleted   bool   `json:"is_deleted"`
}

// UserRoleResp 用户角色扁平响应体
type UserRoleResp struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"user_id"`
	ShopID int64  `json:"shop_id"`
	Role   string `json:"role"`
}

// ==================== 转换 ====================

func NewUserResp(m *model.User) UserResp {
	return UserResp{
		ID:          m.ID,
		Name:        m.Name,
		PhoneNumber: m.PhoneNumber,
		IsDeleted:   m.IsDeleted,
	}
}

func NewUserRespList(users []model.User) []UserResp {
	list := make([]UserResp, 0, len(users))
	for i := range users {
		list = append(list, NewUserResp(&users[i]))
	}
	return list
}

func NewUserRoleResp(m *model.UserRole) UserRoleResp {
	return UserRoleResp{
		ID:     m.ID,
		UserID: m.UserID,
		ShopID: m.ShopID,
		Role:   m.Role,
	}
}
