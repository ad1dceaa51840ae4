package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"retail_hub_v1_202608/internal/api/dto"
	"retail_hub_v1_202608/internal/model"
	"retail_hub_v1_202608/internal/repository"
)

// ProductService 商品与分类业务
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	shopRepo     repository.ShopRepository
}

func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	shopRepo repository.ShopRepository,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		shopRepo:     shopRepo,
	}
}

// RequireActiveShop 店铺存在性守卫，软删除视为不存在
func (s *ProductService) RequireActiveShop(ctx context.Context, shopID int64) error {
	if _, err := s.shopRepo.GetActiveByID(ctx, shopID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrShopNotFound
		}
		return err
	}
	return nil
}

// GetProduct 查商品，归属店铺已软删除时视为不存在
func (s *ProductService) GetProduct(ctx context.Context, productID int64) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if err := s.RequireActiveShop(ctx, product.ShopID); err != nil {
		return nil, err
	}
	return product, nil
}

// CreateProduct 在店铺下新建商品
func (s *ProductService) CreateProduct(ctx context.Context, shopID int64, req dto.ProductSaveReq) (*model.Product, error) {
	if err := s.RequireActiveShop(ctx, shopID); err != nil {
		return nil, err
	}

	product := &model.Product{
		ShopID:     shopID,
		CategoryID: req.CategoryID,
		Name:       req.Name,
		Amount:     req.Amount,
		Price:      req.Price,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct 更新商品
// 归属店铺按商品自身记录的 shop_id 解析，路径里的店铺 id 不参与校验
func (s *ProductService) UpdateProduct(ctx context.Context, productID int64, req dto.ProductSaveReq) (*model.Product, error) {
	product, err := s.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"category_id": req.CategoryID,
		"name":        req.Name,
		"amount":      req.Amount,
		"price":       req.Price,
	}
	if err := s.productRepo.UpdateFields(ctx, productID, fields); err != nil {
		return nil, err
	}

	product.CategoryID = req.CategoryID
	product.Name = req.Name
	product.Amount = req.Amount
	product.Price = req.Price
	return product, nil
}

// ListProducts 查店铺下全部商品
func (s *ProductService) ListProducts(ctx context.Context, shopID int64) ([]model.Product, error) {
	if err := s.RequireActiveShop(ctx, shopID); err != nil {
		return nil, err
	}
	return s.productRepo.ListByShop(ctx, shopID)
}

// CreateCategory 新建分类，分类名全局唯一（数据库唯一索引约束）
func (s *ProductService) CreateCategory(ctx context.Context, req dto.CategoryCreateReq) (*model.Category, error) {
	category := &model.Category{Name: req.Name}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories 查全部分类
func (s *ProductService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.categoryRepo.List(ctx)
}
