package validation

import (
	"fmt"

	"retail_hub_v1_202608/internal/model"
)

// Required 通用必填字段校验
// data: 松散类型的请求体；fields: 按顺序检查的必填字段列表
// 返回第一个缺失字段的提示信息，全部存在时返回 (true, "")
func Required(data map[string]interface{}, fields []string) (bool, string) {
	if len(data) == 0 {
		return false, "No data provided"
	}
	for _, field := range fields {
		if _, ok := data[field]; !ok {
			return false, fmt.Sprintf("Missing required field: %s", field)
		}
	}
	return true, ""
}

// ShopData 店铺字段校验
func ShopData(data map[string]interface{}) (bool, string) {
	return Required(data, []string{"name", "latitude", "longitude", "phone_number"})
}

// ShopHoursData 营业时间字段校验
func ShopHoursData(data map[string]interface{}) (bool, string) {
	return Required(data, []string{"day_of_week", "open_time", "close_time"})
}

// ProductData 商品字段校验
func ProductData(data map[string]interface{}) (bool, string) {
	return Required(data, []string{"name", "amount", "price", "category_id"})
}

// CategoryData 分类字段校验
func CategoryData(data map[string]interface{}) (bool, string) {
	return Required(data, []string{"name"})
}

// UserData 用户字段校验
func UserData(data map[string]interface{}) (bool, string) {
	return Required(data, []string{"name", "phone_number"})
}

// UserRoleData 用户角色字段校验
// 除必填检查外还要求 role 取值为 staff/admin
func UserRoleData(data map[string]interface{}) (bool, string) {
	ok, msg := Required(data, []string{"shop_id", "role"})
	if !ok {
		return false, msg
	}
	role, _ := data["role"].(string)
	if !model.IsValidRole(role) {
		return false, "Invalid role value"
	}
	return true, ""
}
