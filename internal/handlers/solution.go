package handlers

import (
	"net/http"

	"github.com/clearsky-tech/bizsite-console/internal/services"

	"github.com/gin-gonic/gin"
)

// SolutionHandler 解决方案处理器
type SolutionHandler struct {
	svc *services.SolutionService
}

// NewSolutionHandler 创建解决方案处理器
func NewSolutionHandler(svc *services.SolutionService) *SolutionHandler {
	return &SolutionHandler{svc: svc}
}

// ListSolutions 获取已上架解决方案（公开接口）
func (h *SolutionHandler) ListSolutions(c *gin.Context) {
	solutions, err := h.svc.ListSolutions(true)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "获取成功",
		"data":    solutions,
	})
}

// ListAllSolutions 获取全部解决方案（管理后台）
func (h *SolutionHandler) ListAllSolutions(c *gin.Context) {
	solutions, err := h.svc.ListSolutions(false)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "获取成功",
		"data":    solutions,
	})
}

// GetSolution 获取单个解决方案
func (h *SolutionHandler) GetSolution(c *gin.Context) {
	solution, err := h.svc.GetSolution(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "获取成功",
		"data":    solution,
	})
}

// CreateSolution 创建解决方案
func (h *SolutionHandler) CreateSolution(c *gin.Context) {
	var req services.CreateSolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "请求参数错误",
			"data":    nil,
		})
		return
	}

	solution, err := h.svc.CreateSolution(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"code":    201,
		"message": "解决方案创建成功",
		"data":    solution,
	})
}

// UpdateSolution 更新解决方案
func (h *SolutionHandler) UpdateSolution(c *gin.Context) {
	var req services.UpdateSolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "请求参数错误",
			"data":    nil,
		})
		return
	}

	solution, err := h.svc.UpdateSolution(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "解决方案更新成功",
		"data":    solution,
	})
}

// DeleteSolution 删除解决方案
func (h *SolutionHandler) DeleteSolution(c *gin.Context) {
	if err := h.svc.DeleteSolution(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "解决方案删除成功",
		"data":    nil,
	})
}
