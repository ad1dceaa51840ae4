package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"retail_hub_v1_202608/internal/controller"

	_ "retail_hub_v1_202608/docs"
)

// Controllers 控制器集合
type Controllers struct {
	Shop    *controller.ShopController
	Product *controller.ProductController
	User    *controller.UserController
}

// InitRoutes 注册所有路由
func InitRoutes(r *gin.Engine, c *Controllers) {
	// 1. Swagger 文档路由
	// 访问 http://localhost:8080/swagger/index.html 即可查看
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 2. 指标与健康检查
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 3. 店铺组（含营业时间、商品、分类）
	shops := r.Group("/shops")
	{
		shops.GET("", c.Shop.ListShops)
		shops.POST("", c.Shop.CreateShop)

		// 静态段 categories 与 :id 并存，匹配时静态优先
		shops.GET("/categories", c.Product.ListCategories)
		shops.POST("/categories", c.Product.CreateCategory)

		shops.GET("/:id", c.Shop.GetShop)
		shops.PUT("/:id", c.Shop.UpdateShop)
		shops.DELETE("/:id", c.Shop.DeleteShop)
		shops.POST("/:id/hours", c.Shop.AddShopHours)

		shops.GET("/:id/products", c.Product.ListProducts)
		shops.POST("/:id/products", c.Product.CreateProduct)
		shops.PUT("/:id/products/:pid", c.Product.UpdateProduct)
	}

	// 4. 用户组（含角色）
	users := r.Group("/users")
	{
		users.GET("", c.User.ListUsers)
		users.POST("", c.User.CreateUser)
		users.GET("/:id", c.User.GetUser)
		users.PUT("/:id", c.User.UpdateUser)
		users.DELETE("/:id", c.User.DeleteUser)
		users.PUT("/:id/roles", c.User.ModifyRole)
	}
}
