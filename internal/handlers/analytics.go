package handlers

import (
	"net/http"

	"github.com/clearsky-tech/bizsite-console/internal/services"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler 访问统计处理器
type AnalyticsHandler struct {
	svc *services.AnalyticsService
}

// NewAnalyticsHandler 创建访问统计处理器
func NewAnalyticsHandler(svc *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

// GetSummary 获取访问统计总览
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	summary, err := h.svc.GetSummary()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "获取成功",
		"data":    summary,
	})
}

// RecordVisit 上报一次页面访问（小程序与官网前端调用）
func (h *AnalyticsHandler) RecordVisit(c *gin.Context) {
	var req struct {
		Path     string `json:"path" binding:"required"`
		Title    string `json:"title"`
		Duration int    `json:"duration"`
		Bounced  bool   `json:"bounced"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "请求参数错误",
			"data":    nil,
		})
		return
	}

	if err := h.svc.RecordVisit(req.Path, req.Title, req.Duration, req.Bounced); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "上报成功",
		"data":    nil,
	})
}
