package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"retail_hub_v1_202608/internal/model"
	"retail_hub_v1_202608/internal/repository"
	"retail_hub_v1_202608/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ==================== 测试辅助 ====================

func setupCtlTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	if err := db.AutoMigrate(
		&model.Shop{}, &model.ShopHours{},
		&model.Category{}, &model.Product{},
		&model.User{}, &model.UserRole{},
	); err != nil {
		t.Fatalf("自动建表失败: %v", err)
	}
	return db
}

// setupCtlRouter 用真实的 repo/service/controller 组装路由
// 路由注册与 internal/router 保持一致（不直接引用以免 import 环）
func setupCtlRouter(db *gorm.DB) *gin.Engine {
	shopRepo := repository.NewShopRepository(db)
	hoursRepo := repository.NewShopHoursRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewUserRoleRepository(db)

	shopCtl := NewShopController(service.NewShopService(shopRepo, hoursRepo))
	productCtl := NewProductController(service.NewProductService(productRepo, categoryRepo, shopRepo))
	userCtl := NewUserController(service.NewUserService(userRepo, roleRepo))

	r := gin.New()
	r.Use(gin.Recovery())

	shops := r.Group("/shops")
	{
		shops.GET("", shopCtl.ListShops)
		shops.POST("", shopCtl.CreateShop)
		shops.GET("/categories", productCtl.ListCategories)
		shops.POST("/categories", productCtl.CreateCategory)
		shops.GET("/:id", shopCtl.GetShop)
		shops.PUT("/:id", shopCtl.UpdateShop)
		shops.DELETE("/:id", shopCtl.DeleteShop)
		shops.POST("/:id/hours", shopCtl.AddShopHours)
		shops.GET("/:id/products", productCtl.ListProducts)
		shops.POST("/:id/products", productCtl.CreateProduct)
		shops.PUT("/:id/products/:pid", productCtl.UpdateProduct)
	}
	users := r.Group("/users")
	{
		users.GET("", userCtl.ListUsers)
		users.POST("", userCtl.CreateUser)
		users.GET("/:id", userCtl.GetUser)
		users.PUT("/:id", userCtl.UpdateUser)
		users.DELETE("/:id", userCtl.DeleteUser)
		users.PUT("/:id/roles", userCtl.ModifyRole)
	}

	return r
}

// doJSON 发送一个 JSON 请求，body 为 nil 时不带请求体
func doJSON(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		buf = bytes.NewBuffer(jsonBody)
	} else {
		buf = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("响应体解析失败: %v, body = %s", err, w.Body.String())
	}
}
