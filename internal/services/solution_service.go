package services

import (
	"errors"
	"fmt"

	"github.com/clearsky-tech/bizsite-console/internal/models"
	"github.com/clearsky-tech/bizsite-console/pkg/logger"

	"gorm.io/gorm"
)

// SolutionService 解决方案服务，内存模式下只读
type SolutionService struct {
	db *gorm.DB
}

// NewSolutionService 创建解决方案服务
func NewSolutionService(db *gorm.DB) *SolutionService {
	return &SolutionService{db: db}
}

// CreateSolutionRequest 创建解决方案请求
type CreateSolutionRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	IconURL     string   `json:"icon_url"`
	CaseImages  []string `json:"case_images"`
	SortOrder   int      `json:"sort_order"`
}

// UpdateSolutionRequest 更新解决方案请求，nil 字段保持原值
type UpdateSolutionRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Content     *string  `json:"content"`
	IconURL     *string  `json:"icon_url"`
	CaseImages  []string `json:"case_images"`
	SortOrder   *int     `json:"sort_order"`
	IsActive    *bool    `json:"is_active"`
}

// ListSolutions 获取解决方案列表
func (s *SolutionService) ListSolutions(activeOnly bool) ([]models.Solution, error) {
	if s.db == nil {
		solutions := []models.Solution{}
		for _, solution := range models.SeedSolutions() {
			if !activeOnly || solution.IsActive {
				solutions = append(solutions, solution)
			}
		}
		return solutions, nil
	}

	var solutions []models.Solution
	query := s.db.Order("sort_order ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&solutions).Error; err != nil {
		return nil, fmt.Errorf("获取解决方案列表失败: %w", err)
	}
	return solutions, nil
}

// GetSolution 获取单个解决方案
func (s *SolutionService) GetSolution(id string) (*models.Solution, error) {
	if s.db == nil {
		for _, solution := range models.SeedSolutions() {
			if solution.ID == id {
				return &solution, nil
			}
		}
		return nil, &NotFoundError{Message: "解决方案不存在"}
	}

	var solution models.Solution
	if err := s.db.First(&solution, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "解决方案不存在"}
		}
		return nil, fmt.Errorf("获取解决方案失败: %w", err)
	}
	return &solution, nil
}

// CreateSolution 创建解决方案
func (s *SolutionService) CreateSolution(req CreateSolutionRequest) (*models.Solution, error) {
	if req.Title == "" || req.Description == "" {
		return nil, &ValidationError{Message: "标题和描述不能为空"}
	}
	if s.db == nil {
		return nil, ErrNoDatabase
	}

	solution := &models.Solution{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		IconURL:     req.IconURL,
		CaseImages:  models.StringList(req.CaseImages),
		SortOrder:   req.SortOrder,
		IsActive:    true,
	}
	if err := s.db.Create(solution).Error; err != nil {
		return nil, fmt.Errorf("创建解决方案失败: %w", err)
	}

	logger.Info("解决方案创建成功: %s", solution.Title)
	return solution, nil
}

// UpdateSolution 部分更新解决方案
func (s *SolutionService) UpdateSolution(id string, req UpdateSolutionRequest) (*models.Solution, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}

	var solution models.Solution
	if err := s.db.First(&solution, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "解决方案不存在"}
		}
		return nil, fmt.Errorf("获取解决方案失败: %w", err)
	}

	if req.Title != nil {
		solution.Title = *req.Title
	}
	if req.Description != nil {
		solution.Description = *req.Description
	}
	if req.Content != nil {
		solution.Content = *req.Content
	}
	if req.IconURL != nil {
		solution.IconURL = *req.IconURL
	}
	if req.CaseImages != nil {
		solution.CaseImages = models.StringList(req.CaseImages)
	}
	if req.SortOrder != nil {
		solution.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		solution.IsActive = *req.IsActive
	}

	if err := s.db.Save(&solution).Error; err != nil {
		return nil, fmt.Errorf("更新解决方案失败: %w", err)
	}
	return &solution, nil
}

// DeleteSolution 删除解决方案
func (s *SolutionService) DeleteSolution(id string) error {
	if s.db == nil {
		return ErrNoDatabase
	}

	result := s.db.Delete(&models.Solution{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("删除解决方案失败: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Message: "解决方案不存在"}
	}
	return nil
}
