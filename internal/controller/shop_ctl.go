package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"retail_hub_v1_202608/internal/api/dto"
	"retail_hub_v1_202608/internal/service"
	"retail_hub_v1_202608/internal/validation"
)

type ShopController struct {
	shopSvc *service.ShopService
}

func NewShopController(shopSvc *service.ShopService) *ShopController {
	return &ShopController{
		shopSvc: shopSvc,
	}
}

// ListShops 获取店铺列表
// @Summary 获取店铺列表
// @Description 返回全部未删除店铺，按创建顺序排列
// @Tags Shop (店铺管理)
// @Produce json
// @Success 200 {array} dto.ShopResp "店铺列表"
// @Router /shops [get]
func (c *ShopController) ListShops(ctx *gin.Context) {
	shops, err := c.shopSvc.ListShops(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewShopRespList(shops))
}

// GetShop 获取店铺详情
// @Summary 获取店铺详情
// @Description 软删除的店铺等同于不存在，返回 404
// @Tags Shop (店铺管理)
// @Produce json
// @Param id path int true "店铺ID"
// @Success 200 {object} dto.ShopResp "店铺详情"
// @Failure 404 {object} map[string]string "店铺不存在"
// @Router /shops/{id} [get]
func (c *ShopController) GetShop(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "shop id")
	if !ok {
		return
	}

	shop, err := c.shopSvc.GetShop(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewShopResp(shop))
}

// CreateShop 新建店铺
// @Summary 新建店铺
// @Tags Shop (店铺管理)
// @Accept json
// @Produce json
// @Param request body dto.ShopSaveReq true "店铺字段"
// @Success 201 {object} dto.ShopResp "新建的店铺"
// @Failure 400 {object} map[string]string "缺少必填字段"
// @Router /shops [post]
func (c *ShopController) CreateShop(ctx *gin.Context) {
	data := bindLooseJSON(ctx)
	if ok, msg := validation.ShopData(data); !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	shop, err := c.shopSvc.CreateShop(ctx.Request.Context(), dto.ShopSaveReq{
		Name:        asString(data["name"]),
		Latitude:    asFloat(data["latitude"]),
		Longitude:   asFloat(data["longitude"]),
		PhoneNumber: asString(data["phone_number"]),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewShopResp(shop))
}

// UpdateShop 更新店铺
// @Summary 更新店铺
// @Description 四个可变字段整体替换
// @Tags Shop (店铺管理)
// @Accept json
// @Produce json
// @Param id path int true "店铺ID"
// @Param request body dto.ShopSaveReq true "店铺字段"
// @Success 200 {object} dto.ShopResp "更新后的店铺"
// @Failure 400 {object} map[string]string "缺少必填字段"
// @Failure 404 {object} map[string]string "店铺不存在"
// @Router /shops/{id} [put]
func (c *ShopController) UpdateShop(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "shop id")
	if !ok {
		return
	}

	// 存在性守卫先于请求体校验
	if _, err := c.shopSvc.GetShop(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	data := bindLooseJSON(ctx)
	if ok, msg := validation.ShopData(data); !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	shop, err := c.shopSvc.UpdateShop(ctx.Request.Context(), id, dto.ShopSaveReq{
		Name:        asString(data["name"]),
		Latitude:    asFloat(data["latitude"]),
		Longitude:   asFloat(data["longitude"]),
		PhoneNumber: asString(data["phone_number"]),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewShopResp(shop))
}

// DeleteShop 删除店铺（软删除）
// @Summary 删除店铺
// @Description 只打删除标记不删行，重复删除返回 404
// @Tags Shop (店铺管理)
// @Produce json
// @Param id path int true "店铺ID"
// @Success 200 {object} map[string]string "删除确认"
// @Failure 404 {object} map[string]string "店铺不存在"
// @Router /shops/{id} [delete]
func (c *ShopController) DeleteShop(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "shop id")
	if !ok {
		return
	}

	if err := c.shopSvc.DeleteShop(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Shop deleted"})
}

// AddShopHours 添加营业时间
// @Summary 添加营业时间
// @Description 同一店铺同一天只允许一条记录，重复添加返回 400
// @Tags Shop (店铺管理)
// @Accept json
// @Produce json
// @Param id path int true "店铺ID"
// @Param request body dto.ShopHoursCreateReq true "营业时间字段"
// @Success 201 {object} dto.ShopHoursResp "新建的营业时间"
// @Failure 400 {object} map[string]string "缺少必填字段或当天已有记录"
// @Failure 404 {object} map[string]string "店铺不存在"
// @Router /shops/{id}/hours [post]
func (c *ShopController) AddShopHours(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "shop id")
	if !ok {
		return
	}

	// 存在性守卫先于请求体校验
	if _, err := c.shopSvc.GetShop(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	data := bindLooseJSON(ctx)
	if ok, msg := validation.ShopHoursData(data); !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	hours, err := c.shopSvc.AddShopHours(ctx.Request.Context(), id, dto.ShopHoursCreateReq{
		DayOfWeek: asInt(data["day_of_week"]),
		OpenTime:  asString(data["open_time"]),
		CloseTime: asString(data["close_time"]),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewShopHoursResp(hours))
}
