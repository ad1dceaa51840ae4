package service

import "errors"

// 业务错误哨兵，controller 层用 errors.Is 映射为 HTTP 状态码。
// 错误文案即对外返回的 error 字段内容，软删除的行对读操作一律报 not found。
var (
	ErrShopNotFound    = errors.New("Shop not found")
	ErrUserNotFound    = errors.New("User not found")
	ErrProductNotFound = errors.New("Product not found")
	ErrHoursExist      = errors.New("Hours already exist for this day of the week")
)
