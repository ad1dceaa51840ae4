package model

// Shop 店铺模型
// 店铺不做物理删除，只打 IsDeleted 标记，读接口把已删除的店铺当作不存在
type Shop struct {
	BaseModel
	Name        string  `gorm:"size:100;not null"`
	Latitude    float64 `gorm:"not null"`
	Longitude   float64 `gorm:"not null"`
	PhoneNumber string  `gorm:"size:15;not null"`
	IsDeleted   bool    `gorm:"not null;default:false;index"`

	// 关联关系 (Has Many)
	Hours    []ShopHours `gorm:"foreignKey:ShopID"`
	Products []Product   `gorm:"foreignKey:ShopID"`
	Roles    []UserRole  `gorm:"foreignKey:ShopID"`
}

// ShopHours 营业时间模型
// 联合唯一索引保证一个店铺每天最多一条记录
type ShopHours struct {
	BaseModel
	ShopID    int64  `gorm:"index;uniqueIndex:idx_shop_day;not null"`
	DayOfWeek int    `gorm:"uniqueIndex:idx_shop_day;not null"`
	OpenTime  string `gorm:"size:5;not null"` // "HH:MM"
	CloseTime string `gorm:"size:5;not null"`

	Shop *Shop `gorm:"foreignKey:ShopID"`
}

func (Shop) TableName() string {
	return "shops"
}

func (ShopHours) TableName() string {
	return "shop_hours"
}
