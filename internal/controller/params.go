package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"retail_hub_v1_202608/internal/service"
)

// bindLooseJSON 把请求体读成松散 map，空体/非法 JSON 返回 nil，
// 由校验层统一报 "No data provided"
func bindLooseJSON(ctx *gin.Context) map[string]interface{} {
	var data map[string]interface{}
	_ = ctx.ShouldBindJSON(&data)
	return data
}

// 松散取值辅助：类型不匹配时取零值，数值统一走 JSON 的 float64
func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asFloat(v interface{}) float64 {
	f, _ := v.(float64)
	return f
}

func asInt(v interface{}) int {
	return int(asFloat(v))
}

func asInt64(v interface{}) int64 {
	return int64(asFloat(v))
}

// parseID 解析路径里的整型 id，非法时直接写 400 响应
func parseID(ctx *gin.Context, param, label string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(param), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + label})
		return 0, false
	}
	return id, true
}

// respondError 业务错误到状态码的映射
// not found 类 404，冲突 400，其余存储层错误一律 500
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrShopNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrProductNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrHoursExist):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
