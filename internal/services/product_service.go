package services

import (
	"errors"
	"fmt"

	"github.com/clearsky-tech/bizsite-console/internal/models"
	"github.com/clearsky-tech/bizsite-console/pkg/logger"

	"gorm.io/gorm"
)

// ProductService 产品服务，内存模式下只读
type ProductService struct {
	db *gorm.DB
}

// NewProductService 创建产品服务
func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// CreateProductRequest 创建产品请求
type CreateProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"image_url"`
	Features    []string `json:"features"`
}

// UpdateProductRequest 更新产品请求，nil 字段保持原值
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	ImageURL    *string  `json:"image_url"`
	Features    []string `json:"features"`
	IsActive    *bool    `json:"is_active"`
}

// ListProducts 获取产品列表，category 非空时按分类过滤
func (s *ProductService) ListProducts(activeOnly bool, category string) ([]models.Product, error) {
	if s.db == nil {
		products := []models.Product{}
		for _, product := range models.SeedProducts() {
			if activeOnly && !product.IsActive {
				continue
			}
			if category != "" && product.Category != category {
				continue
			}
			products = append(products, product)
		}
		return products, nil
	}

	var products []models.Product
	query := s.db.Order("created_at DESC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("获取产品列表失败: %w", err)
	}
	return products, nil
}

// GetProduct 获取单个产品
func (s *ProductService) GetProduct(id string) (*models.Product, error) {
	if s.db == nil {
		for _, product := range models.SeedProducts() {
			if product.ID == id {
				return &product, nil
			}
		}
		return nil, &NotFoundError{Message: "产品不存在"}
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "产品不存在"}
		}
		return nil, fmt.Errorf("获取产品失败: %w", err)
	}
	return &product, nil
}

// CreateProduct 创建产品
func (s *ProductService) CreateProduct(req CreateProductRequest) (*models.Product, error) {
	if req.Name == "" || req.Description == "" {
		return nil, &ValidationError{Message: "产品名称和描述不能为空"}
	}
	if s.db == nil {
		return nil, ErrNoDatabase
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Features:    models.StringList(req.Features),
		IsActive:    true,
	}
	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("创建产品失败: %w", err)
	}

	logger.Info("产品创建成功: %s", product.Name)
	return product, nil
}

// UpdateProduct 部分更新产品
func (s *ProductService) UpdateProduct(id string, req UpdateProductRequest) (*models.Product, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "产品不存在"}
		}
		return nil, fmt.Errorf("获取产品失败: %w", err)
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.Features != nil {
		product.Features = models.StringList(req.Features)
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.db.Save(&product).Error; err != nil {
		return nil, fmt.Errorf("更新产品失败: %w", err)
	}
	return &product, nil
}

// DeleteProduct 删除产品
func (s *ProductService) DeleteProduct(id string) error {
	if s.db == nil {
		return ErrNoDatabase
	}

	result := s.db.Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("删除产品失败: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Message: "产品不存在"}
	}
	return nil
}
