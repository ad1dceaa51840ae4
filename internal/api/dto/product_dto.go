package dto

import (
	"retail_hub_v1_202608/internal/model"
)

// ==================== 请求 ====================

// ProductSaveReq 商品创建/更新参数
type ProductSaveReq struct {
	CategoryID int64   `json:"category_id"`
	Name       string  `json:"name"`
	Amount     int     `json:"amount"`
	Price      float64 `json:"price"`
}

// CategoryCreateReq 分类创建参数
type CategoryCreateReq struct {
	Name string `json:"name"`
}

// ==================== 响应 ====================

// ProductResp 商品扁平响应体
type ProductResp struct {
	ID         int64   `json:"id"`
	ShopID     int64   `json:"shop_id"`
	CategoryID int64   `json:"category_id"`
	Name       string  `json:"name"`
	Amount     int     `json:"amount"`
	Price      float64 `json:"price"`
}

// CategoryResp 分类扁平响应体
type CategoryResp struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ==================== 转换 ====================

func NewProductResp(m *model.Product) ProductResp {
	return ProductResp{
		ID:         m.ID,
		ShopID:     m.ShopID,
		CategoryID: m.CategoryID,
		Name:       m.Name,
		Amount:     m.Amount,
		Price:      m.Price,
	}
}

func NewProductRespList(products []model.Product) []ProductResp {
	list := make([]ProductResp, 0, len(products))
	for i := range products {
		list = append(list, NewProductResp(&products[i]))
	}
	return list
}

func NewCategoryResp(m *model.Category) CategoryResp {
	return CategoryResp{
		ID:   m.ID,
		Name: m.Name,
	}
}

func NewCategoryRespList(categories []model.Category) []CategoryResp {
	list := make([]CategoryResp, 0, len(categories))
	for i := range categories {
		list = append(list, NewCategoryResp(&categories[i]))
	}
	return list
}
