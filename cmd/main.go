package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"retail_hub_v1_202608/internal/controller"
	"retail_hub_v1_202608/internal/metrics"
	"retail_hub_v1_202608/internal/middleware"
	"retail_hub_v1_202608/internal/model"
	"retail_hub_v1_202608/internal/repository"
	"retail_hub_v1_202608/internal/router"
	"retail_hub_v1_202608/internal/service"
	"retail_hub_v1_202608/pkg/database"
)

// @title Retail Hub API
// @version 1.0
// @description 多租户零售管理 API：店铺、营业时间、商品分类、用户与店铺角色
// @BasePath /

func main() {
	// 1. 加载 .env（不存在就用进程环境变量）
	if err := godotenv.Load(); err != nil {
		log.Println("未找到 .env 文件，使用进程环境变量")
	}

	// 2. 初始化数据库
	db := initDatabase()

	// 3. 初始化依赖
	deps := initDependencies(db)

	// 4. 初始化路由
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(metrics.NewHTTPMetrics().Middleware())
	r.Use(middleware.Audit(deps.Repos.AuditLog))
	router.InitRoutes(r, deps.Controllers)

	// 5. 启动服务
	startServer(r)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Repos       *Repositories
	Services    *Services
	Controllers *router.Controllers
}

// Repositories 仓库集合
type Repositories struct {
	Shop      repository.ShopRepository
	ShopHours repository.ShopHoursRepository
	Category  repository.CategoryRepository
	Product   repository.ProductRepository
	User      repository.UserRepository
	UserRole  repository.UserRoleRepository
	AuditLog  repository.AuditLogRepository
}

// Services 服务集合
type Services struct {
	Shop    *service.ShopService
	Product *service.ProductService
	User    *service.UserService
}

// ==================== 初始化函数 ====================

// initDatabase 初始化数据库
// APP_ENV=test 时改用内存数据库，便于隔离测试
func initDatabase() *gorm.DB {
	models := []interface{}{
		// Shop
		&model.Shop{}, &model.ShopHours{},
		// Product
		&model.Category{}, &model.Product{},
		// User
		&model.User{}, &model.UserRole{},
		// Ops
		&model.AuditLog{},
	}

	if getEnv("APP_ENV", "") == "test" {
		return database.InitTestDB(models...)
	}

	if getEnv("SECRET_KEY", "") == "" {
		log.Println("警告: SECRET_KEY 未配置")
	}

	dsn := getEnv("DATABASE_URL", "")
	if dsn == "" {
		log.Fatal("DATABASE_URL 未配置")
	}
	return database.InitDB(dsn, models...)
}

// initDependencies 初始化所有依赖
func initDependencies(db *gorm.DB) *Dependencies {
	// -------- Repo 层 --------
	repos := &Repositories{
		Shop:      repository.NewShopRepository(db),
		ShopHours: repository.NewShopHoursRepository(db),
		Category:  repository.NewCategoryRepository(db),
		Product:   repository.NewProductRepository(db),
		User:      repository.NewUserRepository(db),
		UserRole:  repository.NewUserRoleRepository(db),
		AuditLog:  repository.NewAuditLogRepository(db),
	}

	// -------- 业务服务 --------
	services := &Services{
		Shop:    service.NewShopService(repos.Shop, repos.ShopHours),
		Product: service.NewProductService(repos.Product, repos.Category, repos.Shop),
		User:    service.NewUserService(repos.User, repos.UserRole),
	}

	// -------- Controller 层 --------
	controllers := &router.Controllers{
		Shop:    controller.NewShopController(services.Shop),
		Product: controller.NewProductController(services.Product),
		User:    controller.NewUserController(services.User),
	}

	return &Dependencies{
		DB:          db,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
	}
}

// ==================== 服务启动 ====================

// startServer 启动服务
func startServer(r *gin.Engine) {
	port := getEnv("SERVER_PORT", "8080")

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// 异步启动服务
	go func() {
		log.Printf("服务启动在 :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("正在关闭服务...")

	// 优雅关闭
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务强制关闭: %v", err)
	}

	log.Println("服务已退出")
}

// ==================== 工具函数 ====================

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
