package services

import (
	"errors"
	"fmt"

	"github.com/clearsky-tech/bizsite-console/internal/models"
	"github.com/clearsky-tech/bizsite-console/pkg/logger"

	"gorm.io/gorm"
)

// BannerService 轮播图服务。db 为 nil 时处于内存模式，
// 读取内置数据，写操作返回 ErrNoDatabase。
type BannerService struct {
	db *gorm.DB
}

// NewBannerService 创建轮播图服务
func NewBannerService(db *gorm.DB) *BannerService {
	return &BannerService{db: db}
}

// CreateBannerRequest 创建轮播图请求
type CreateBannerRequest struct {
	Title     string `json:"title"`
	ImageURL  string `json:"image_url"`
	LinkURL   string `json:"link_url"`
	SortOrder int    `json:"sort_order"`
}

// UpdateBannerRequest 更新轮播图请求，nil 字段保持原值
type UpdateBannerRequest struct {
	Title     *string `json:"title"`
	ImageURL  *string `json:"image_url"`
	LinkURL   *string `json:"link_url"`
	SortOrder *int    `json:"sort_order"`
	IsActive  *bool   `json:"is_active"`
}

// ListBanners 获取轮播图列表，activeOnly 控制是否只返回已上架的
func (s *BannerService) ListBanners(activeOnly bool) ([]models.Banner, error) {
	if s.db == nil {
		banners := []models.Banner{}
		for _, banner := range models.SeedBanners() {
			if !activeOnly || banner.IsActive {
				banners = append(banners, banner)
			}
		}
		return banners, nil
	}

	var banners []models.Banner
	query := s.db.Order("sort_order ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&banners).Error; err != nil {
		return nil, fmt.Errorf("获取轮播图列表失败: %w", err)
	}
	return banners, nil
}

// GetBanner 获取单个轮播图
func (s *BannerService) GetBanner(id string) (*models.Banner, error) {
	if s.db == nil {
		for _, banner := range models.SeedBanners() {
			if banner.ID == id {
				return &banner, nil
			}
		}
		return nil, &NotFoundError{Message: "轮播图不存在"}
	}

	var banner models.Banner
	if err := s.db.First(&banner, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "轮播图不存在"}
		}
		return nil, fmt.Errorf("获取轮播图失败: %w", err)
	}
	return &banner, nil
}

// CreateBanner 创建轮播图
func (s *BannerService) CreateBanner(req CreateBannerRequest) (*models.Banner, error) {
	if req.Title == "" || req.ImageURL == "" {
		return nil, &ValidationError{Message: "标题和图片URL不能为空"}
	}
	if s.db == nil {
		return nil, ErrNoDatabase
	}

	banner := &models.Banner{
		Title:     req.Title,
		ImageURL:  req.ImageURL,
		LinkURL:   req.LinkURL,
		SortOrder: req.SortOrder,
		IsActive:  true,
	}
	if err := s.db.Create(banner).Error; err != nil {
		return nil, fmt.Errorf("创建轮播图失败: %w", err)
	}

	logger.Info("轮播图创建成功: %s", banner.Title)
	return banner, nil
}

// UpdateBanner 部分更新轮播图
func (s *BannerService) UpdateBanner(id string, req UpdateBannerRequest) (*models.Banner, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}

	var banner models.Banner
	if err := s.db.First(&banner, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "轮播图不存在"}
		}
		return nil, fmt.Errorf("获取轮播图失败: %w", err)
	}

	if req.Title != nil {
		banner.Title = *req.Title
	}
	if req.ImageURL != nil {
		banner.ImageURL = *req.ImageURL
	}
	if req.LinkURL != nil {
		banner.LinkURL = *req.LinkURL
	}
	if req.SortOrder != nil {
		banner.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}

	if err := s.db.Save(&banner).Error; err != nil {
		return nil, fmt.Errorf("更新轮播图失败: %w", err)
	}
	return &banner, nil
}

// DeleteBanner 删除轮播图
func (s *BannerService) DeleteBanner(id string) error {
	if s.db == nil {
		return ErrNoDatabase
	}

	result := s.db.Delete(&models.Banner{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("删除轮播图失败: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Message: "轮播图不存在"}
	}
	return nil
}
