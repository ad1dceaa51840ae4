package model

// 角色常量
const (
	RoleStaff = "staff" // 店员
	RoleAdmin = "admin" // 管理员
)

// IsValidRole 检查角色取值是否合法
func IsValidRole(role string) bool {
	return role == RoleStaff || role == RoleAdmin
}

// User 用户模型
// 与店铺同样采用软删除
type User struct {
	BaseModel
	Name        string `gorm:"size:100;not null"`
	PhoneNumber string `gorm:"size:15;not null"`
	IsDeleted   bool   `gorm:"not null;default:false;index"`

	Roles []UserRole `gorm:"foreignKey:UserID"`
}

// UserRole 定义用户和店铺的关联关系及角色
// 联合唯一索引
// 确保一个用户在一个店铺里只有一条记录，角色变更走 upsert 而不是插新行
type UserRole struct {
	BaseModel
	UserID int64  `gorm:"index;uniqueIndex:idx_user_shop;not null"`
	ShopID int64  `gorm:"index;uniqueIndex:idx_user_shop;not null"`
	Role   string `gorm:"size:10;not null"` // staff / admin

	// 关联对象 (Belongs To)
	User *User `gorm:"foreignKey:UserID"`
	Shop *Shop `gorm:"foreignKey:ShopID"`
}

func (User) TableName() string {
	return "users"
}

func (UserRole) TableName() string {
	return "user_roles"
}
