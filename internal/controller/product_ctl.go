package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"retail_hub_v1_202608/internal/api/dto"
	"retail_hub_v1_202608/internal/service"
	"retail_hub_v1_202608/internal/validation"
)

type ProductController struct {
	productSvc *service.ProductService
}

func NewProductController(productSvc *service.ProductService) *ProductController {
	return &ProductController{
		productSvc: productSvc,
	}
}

// CreateProduct 在店铺下新建商品
// @Summary 新建商品
// @Tags Product (商品管理)
// @Accept json
// @Produce json
// @Param id path int true "店铺ID"
// @Param request body dto.ProductSaveReq true "商品字段"
// @Success 201 {object} dto.ProductResp "新建的商品"
// @Failure 400 {object} map[string]string "缺少必填字段"
// @Failure 404 {object} map[string]string "店铺不存在"
// @Router /shops/{id}/products [post]
func (c *ProductController) CreateProduct(ctx *gin.Context) {
	shopID, ok := parseID(ctx, "id", "shop id")
	if !ok {
		return
	}

	// 存在性守卫先于请求体校验
	if err := c.productSvc.RequireActiveShop(ctx.Request.Context(), shopID); err != nil {
		respondError(ctx, err)
		return
	}

	data := bindLooseJSON(ctx)
	if ok, msg := validation.ProductData(data); !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	product, err := c.productSvc.CreateProduct(ctx.Request.Context(), shopID, dto.ProductSaveReq{
		CategoryID: asInt64(data["category_id"]),
		Name:       asString(data["name"]),
		Amount:     asInt(data["amount"]),
		Price:      asFloat(data["price"]),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewProductResp(product))
}

// UpdateProduct 更新商品
// @Summary 更新商品
// @Description 归属店铺按商品行的 shop_id 解析，路径中的店铺 id 不做交叉校验
// @Tags Product (商品管理)
// @Accept json
// @Produce json
// @Param id path int true "店铺ID"
// @Param pid path int true "商品ID"
// @Param request body dto.ProductSaveReq true "商品字段"
// @Success 200 {object} dto.ProductResp "更新后的商品"
// @Failure 400 {object} map[string]string "缺少必填字段"
// @Failure 404 {object} map[string]string "商品或店铺不存在"
// @Router /shops/{id}/products/{pid} [put]
func (c *ProductController) UpdateProduct(ctx *gin.Context) {
	productID, ok := parseID(ctx, "pid", "product id")
	if !ok {
		return
	}

	// 存在性守卫先于请求体校验
	if _, err := c.productSvc.GetProduct(ctx.Request.Context(), productID); err != nil {
		respondError(ctx, err)
		return
	}

	data := bindLooseJSON(ctx)
	if ok, msg := validation.ProductData(data); !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	product, err := c.productSvc.UpdateProduct(ctx.Request.Context(), productID, dto.ProductSaveReq{
		CategoryID: asInt64(data["category_id"]),
		Name:       asString(data["name"]),
		Amount:     asInt(data["amount"]),
		Price:      asFloat(data["price"]),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewProductResp(product))
}

// ListProducts 获取店铺商品列表
// @Summary 获取店铺商品列表
// @Tags Product (商品管理)
// @Produce json
// @Param id path int true "店铺ID"
// @Success 200 {array} dto.ProductResp "商品列表"
// @Failure 404 {object} map[string]string "店铺不存在"
// @Router /shops/{id}/products [get]
func (c *ProductController) ListProducts(ctx *gin.Context) {
	shopID, ok := parseID(ctx, "id", "shop id")
	if !ok {
		return
	}

	products, err := c.productSvc.ListProducts(ctx.Request.Context(), shopID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewProductRespList(products))
}

// CreateCategory 新建分类
// @Summary 新建分类
// @Description 分类名全局唯一，不归属任何店铺
// @Tags Category (分类管理)
// @Accept json
// @Produce json
// @Param request body dto.CategoryCreateReq true "分类字段"
// @Success 201 {object} dto.CategoryResp "新建的分类"
// @Failure 400 {object} map[string]string "缺少必填字段"
// @Router /shops/categories [post]
func (c *ProductController) CreateCategory(ctx *gin.Context) {
	data := bindLooseJSON(ctx)
	if ok, msg := validation.CategoryData(data); !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	category, err := c.productSvc.CreateCategory(ctx.Request.Context(), dto.CategoryCreateReq{
		Name: asString(data["name"]),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewCategoryResp(category))
}

// ListCategories 获取分类列表
// @Summary 获取分类列表
// @Tags Category (分类管理)
// @Produce json
// @Success 200 {array} dto.CategoryResp "分类列表"
// @Router /shops/categories [get]
func (c *ProductController) ListCategories(ctx *gin.Context) {
	categories, err := c.productSvc.ListCategories(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewCategoryRespList(categories))
}
