package services

import (
	"fmt"
	"time"

	"github.com/clearsky-tech/bizsite-console/internal/models"

	"gorm.io/gorm"
)

// AnalyticsService 站点访问统计。数据库可用时基于 visit_logs 聚合，
// 否则返回内置快照，保证看板始终有数据可渲染。
type AnalyticsService struct {
	db *gorm.DB
}

// NewAnalyticsService 创建统计服务
func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

// RecordVisit 记录一次页面访问
func (s *AnalyticsService) RecordVisit(path, title string, duration int, bounced bool) error {
	if s.db == nil {
		return nil // 内存模式下丢弃，统计退回内置快照
	}
	visit := &models.VisitLog{
		Path:     path,
		Title:    title,
		Duration: duration,
		Bounced:  bounced,
	}
	if err := s.db.Create(visit).Error; err != nil {
		return fmt.Errorf("记录访问日志失败: %w", err)
	}
	return nil
}

// GetSummary 计算访问统计总览
func (s *AnalyticsService) GetSummary() (*models.AnalyticsSnapshot, error) {
	if s.db == nil {
		snapshot := models.SeedAnalytics()
		return &snapshot, nil
	}

	var total int64
	if err := s.db.Model(&models.VisitLog{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("统计访问总量失败: %w", err)
	}
	if total == 0 {
		// 尚无访问数据时同样退回内置快照
		snapshot := models.SeedAnalytics()
		return &snapshot, nil
	}

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var today int64
	if err := s.db.Model(&models.VisitLog{}).
		Where("created_at >= ?", todayStart).
		Count(&today).Error; err != nil {
		return nil, fmt.Errorf("统计今日访问失败: %w", err)
	}

	var bounced int64
	if err := s.db.Model(&models.VisitLog{}).
		Where("bounced = ?", true).
		Count(&bounced).Error; err != nil {
		return nil, fmt.Errorf("统计跳出访问失败: %w", err)
	}

	var avgDuration float64
	if err := s.db.Model(&models.VisitLog{}).
		Select("COALESCE(AVG(duration), 0)").
		Scan(&avgDuration).Error; err != nil {
		return nil, fmt.Errorf("统计平均会话时长失败: %w", err)
	}

	topPages, err := s.topPages(4)
	if err != nil {
		return nil, err
	}
	trend, err := s.visitTrend(7, todayStart)
	if err != nil {
		return nil, err
	}

	return &models.AnalyticsSnapshot{
		TotalVisits:        int(total),
		TodayVisits:        int(today),
		PageViews:          int(total),
		BounceRate:         float64(bounced) / float64(total),
		AvgSessionDuration: int(avgDuration),
		TopPages:           topPages,
		VisitTrend:         trend,
	}, nil
}

func (s *AnalyticsService) topPages(limit int) ([]models.PageVisits, error) {
	var pages []models.PageVisits
	err := s.db.Model(&models.VisitLog{}).
		Select("path, COUNT(*) AS visits, MAX(title) AS title").
		Group("path").
		Order("visits DESC").
		Limit(limit).
		Scan(&pages).Error
	if err != nil {
		return nil, fmt.Errorf("统计热门页面失败: %w", err)
	}
	return pages, nil
}

// visitTrend 统计最近 days 天的按日访问量，没有记录的日期补零
func (s *AnalyticsService) visitTrend(days int, todayStart time.Time) ([]models.TrendPoint, error) {
	since := todayStart.AddDate(0, 0, -(days - 1))

	var logs []models.VisitLog
	if err := s.db.Where("created_at >= ?", since).Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("统计访问趋势失败: %w", err)
	}

	counts := make(map[string]int)
	for _, visit := range logs {
		counts[visit.CreatedAt.Format("2006-01-02")]++
	}

	trend := make([]models.TrendPoint, 0, days)
	for i := 0; i < days; i++ {
		date := since.AddDate(0, 0, i).Format("2006-01-02")
		trend = append(trend, models.TrendPoint{Date: date, Visits: counts[date]})
	}
	return trend, nil
}
