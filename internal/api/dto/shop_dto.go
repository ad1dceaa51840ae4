package dto

import (
	"retail_hub_v1_202608/internal/model"
)

// ==================== 请求 ====================

// ShopSaveReq 店铺创建/更新参数（四个可变字段整体替换）
type ShopSaveReq struct {
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	PhoneNumber string  `json:"phone_number"`
}

// ShopHoursCreateReq 营业时间创建参数
type ShopHoursCreateReq struct {
	DayOfWeek int    `json:"day_of_week"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

// ==================== 响应 ====================

// ShopResp 店铺扁平响应体
type ShopResp struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	PhoneNumber string  `json:"phone_number"`
	IsDeleted   bool    `json:"is_deleted"`
}

// ShopHoursResp 营业时间扁平响应体
type ShopHoursResp struct {
	ID        int64  `json:"id"`
	ShopID    int64  `json:"shop_id"`
	DayOfWeek int    `json:"day_of_week"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

// ==================== 转换 ====================

func NewShopResp(m *model.Shop) ShopResp {
	return ShopResp{
		ID:          m.ID,
		Name:        m.Name,
		Latitude:    m.Latitude,
		Longitude:   m.Longitude,
		PhoneNumber: m.PhoneNumber,
		IsDeleted:   m.IsDeleted,
	}
}

func NewShopRespList(shops []model.Shop) []ShopResp {
	list := make([]ShopResp, 0, len(shops))
	for i := range shops {
		list = append(list, NewShopResp(&shops[i]))
	}
	return list
}

func NewShopHoursResp(m *model.ShopHours) ShopHoursResp {
	return ShopHoursResp{
		ID:        m.ID,
		ShopID:    m.ShopID,
		DayOfWeek: m.DayOfWeek,
		OpenTime:  m.OpenTime,
		CloseTime: m.CloseTime,
	}
}
