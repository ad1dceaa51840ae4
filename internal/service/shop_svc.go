package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"retail_hub_v1_202608/internal/api/dto"
	"retail_hub_v1_202608/internal/model"
	"retail_hub_v1_202608/internal/repository"
)

// ShopService 店铺业务：店铺 CRUD、软删除、营业时间
type ShopService struct {
	shopRepo  repository.ShopRepository
	hoursRepo repository.ShopHoursRepository
}

func NewShopService(shopRepo repository.ShopRepository, hoursRepo repository.ShopHoursRepository) *ShopService {
	return &ShopService{
		shopRepo:  shopRepo,
		hoursRepo: hoursRepo,
	}
}

// ListShops 查全部未删除店铺，按创建顺序返回
func (s *ShopService) ListShops(ctx context.Context) ([]model.Shop, error) {
	return s.shopRepo.ListActive(ctx)
}

// GetShop 查单个店铺，软删除的店铺与不存在等价
func (s *ShopService) GetShop(ctx context.Context, id int64) (*model.Shop, error) {
	shop, err := s.shopRepo.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShopNotFound
		}
		return nil, err
	}
	return shop, nil
}

// CreateShop 新建店铺
func (s *ShopService) CreateShop(ctx context.Context, req dto.ShopSaveReq) (*model.Shop, error) {
	shop := &model.Shop{
		Name:        req.Name,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		PhoneNumber: req.PhoneNumber,
	}
	if err := s.shopRepo.Create(ctx, shop); err != nil {
		return nil, err
	}
	return shop, nil
}

// UpdateShop 整体替换四个可变字段
func (s *ShopService) UpdateShop(ctx context.Context, id int64, req dto.ShopSaveReq) (*model.Shop, error) {
	shop, err := s.GetShop(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"name":         req.Name,
		"latitude":     req.Latitude,
		"longitude":    req.Longitude,
		"phone_number": req.PhoneNumber,
	}
	if err := s.shopRepo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}

	shop.Name = req.Name
	shop.Latitude = req.Latitude
	shop.Longitude = req.Longitude
	shop.PhoneNumber = req.PhoneNumber
	return shop, nil
}

// DeleteShop 软删除店铺
// 读守卫在前：已删除的店铺再删一次返回 not found，而不是幂等成功
func (s *ShopService) DeleteShop(ctx context.Context, id int64) error {
	if _, err := s.GetShop(ctx, id); err != nil {
		return err
	}
	return s.shopRepo.SoftDelete(ctx, id)
}

// AddShopHours 给店铺加某一天的营业时间
// 同一 (店铺, 星期) 已有记录时报冲突，唯一索引兜底并发下的重复插入
func (s *ShopService) AddShopHours(ctx context.Context, shopID int64, req dto.ShopHoursCreateReq) (*model.ShopHours, error) {
	if _, err := s.GetShop(ctx, shopID); err != nil {
		return nil, err
	}

	_, err := s.hoursRepo.GetByShopAndDay(ctx, shopID, req.DayOfWeek)
	if err == nil {
		return nil, ErrHoursExist
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hours := &model.ShopHours{
		ShopID:    shopID,
		DayOfWeek: req.DayOfWeek,
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
	}
	if err := s.hoursRepo.Create(ctx, hours); err != nil {
		return nil, err
	}
	return hours, nil
}
