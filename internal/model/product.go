package model

// Category 商品分类模型
// 分类全局唯一，不归属任何店铺，也没有软删除概念
type Category struct {
	BaseModel
	Name string `gorm:"size:100;not null;uniqueIndex"`

	Products []Product `gorm:"foreignKey:CategoryID"`
}

// Product 商品模型
// 每个商品归属且仅归属一个店铺和一个分类
type Product struct {
	BaseModel
	ShopID     int64   `gorm:"index;not null"`
	CategoryID int64   `gorm:"index;not null"`
	Name       string  `gorm:"size:100;not null"`
	Amount     int     `gorm:"not null"` // 库存数量
	Price      float64 `gorm:"not null"`

	// 关联对象 (Belongs To)
	Shop     *Shop     `gorm:"foreignKey:ShopID"`
	Category *Category `gorm:"foreignKey:CategoryID"`
}

func (Category) TableName() string {
	return "categories"
}

func (Product) TableName() string {
	return "products"
}
