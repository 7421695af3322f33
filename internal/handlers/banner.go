package handlers

import (
	"net/http"

	"github.com/clearsky-tech/bizsite-console/internal/services"

	"github.com/gin-gonic/gin"
)

// BannerHandler 轮播图处理器
type BannerHandler struct {
	svc *services.BannerService
}

// NewBannerHandler 创建轮播图处理器
func NewBannerHandler(svc *services.BannerService) *BannerHandler {
	return &BannerHandler{svc: svc}
}

// ListBanners 获取已上架轮播图（公开接口）
func (h *BannerHandler) ListBanners(c *gin.Context) {
	banners, err := h.svc.ListBanners(true)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "获取成功",
		"data":    banners,
	})
}

// ListAllBanners 获取全部轮播图（管理后台，包含未上架的）
func (h *BannerHandler) ListAllBanners(c *gin.Context) {
	banners, err := h.svc.ListBanners(false)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "获取成功",
		"data":    banners,
	})
}

// GetBanner 获取单个轮播图
func (h *BannerHandler) GetBanner(c *gin.Context) {
	banner, err := h.svc.GetBanner(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "获取成功",
		"data":    banner,
	})
}

// CreateBanner 创建轮播图
func (h *BannerHandler) CreateBanner(c *gin.Context) {
	var req services.CreateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "请求参数错误",
			"data":    nil,
		})
		return
	}

	banner, err := h.svc.CreateBanner(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"code":    201,
		"message": "轮播图创建成功",
		"data":    banner,
	})
}

// UpdateBanner 更新轮播图
func (h *BannerHandler) UpdateBanner(c *gin.Context) {
	var req services.UpdateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "请求参数错误",
			"data":    nil,
		})
		return
	}

	banner, err := h.svc.UpdateBanner(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "轮播图更新成功",
		"data":    banner,
	})
}

// DeleteBanner 删除轮播图
func (h *BannerHandler) DeleteBanner(c *gin.Context) {
	if err := h.svc.DeleteBanner(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "轮播图删除成功",
		"data":    nil,
	})
}
