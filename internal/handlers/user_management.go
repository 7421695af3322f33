package handlers

import (
	"net/http"

	"github.com/clearsky-tech/bizsite-console/internal/services"

	"github.com/gin-gonic/gin"
)

// UserManagementHandler 用户管理处理器，覆盖总览、用户、角色、菜单四组接口
type UserManagementHandler struct {
	svc *services.PermissionService
}

// NewUserManagementHandler 创建用户管理处理器
func NewUserManagementHandler(svc *services.PermissionService) *UserManagementHandler {
	return &UserManagementHandler{svc: svc}
}

// GetOverview 获取用户管理总览
func (h *UserManagementHandler) GetOverview(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "获取成功",
		"data":    h.svc.GetOverview(),
	})
}

// ========== 用户 ==========

// ListUsers 获取用户列表
func (h *UserManagementHandler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "获取成功",
		"data":    h.svc.ListUsers(),
	})
}

// CreateUser 创建用户
func (h *UserManagementHandler) CreateUser(c *gin.Context) {
	var req services.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "请求参数错误",
			"data":    nil,
		})
		return
	}

	user, overview, err := h.svc.CreateUser(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"code":     201,
		"message":  "用户创建成功",
		"data":     user,
		"overview": overview,
	})
}

// UpdateUser 更新用户
func (h *UserManagementHandler) UpdateUser(c *gin.Context) {
	var req services.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "请求参数错误",
			"data":    nil,
		})
		return
	}

	user, overview, err := h.svc.UpdateUser(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":     200,
		"message":  "用户更新成功",
		"data":     user,
		"overview": overview,
	})
}

// UpdateUserStatus 切换用户状态
func (h *UserManagementHandler) UpdateUserStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "请求参数错误",
			"data":    nil,
		})
		return
	}

	user, overview, err := h.svc.SetUserStatus(c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":     200,
		"message":  "状态更新成功",
		"data":     user,
		"overview": overview,
	})
}

// ResetUserPassword 重置用户密码，返回一次性临时密码
func (h *UserManagementHandler) ResetUserPassword(c *gin.Context) {
	result, err := h.svc.ResetPassword(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "密码已重置",
		"data":    result,
	})
}

// DeleteUser 删除用户
func (h *UserManagementHandler) DeleteUser(c *gin.Context) {
	overview, err := h.svc.DeleteUser(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":     200,
		"message":  "用户删除成功",
		"overview": overview,
	})
}

// ========== 角色 ==========

// ListRoles 获取角色列表
func (h *UserManagementHandler) ListRoles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "获取成功",
		"data":    h.svc.ListRoles(),
	})
}

// CreateRole 创建角色
func (h *UserManagementHandler) CreateRole(c *gin.Context) {
	var req services.CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "请求参数错误",
			"data":    nil,
		})
		return
	}

	role, overview, err := h.svc.CreateRole(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"code":     201,
		"message":  "角色创建成功",
		"data":     role,
		"overview": overview,
	})
}

// UpdateRole 更新角色
func (h *UserManagementHandler) UpdateRole(c *gin.Context) {
	var req services.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "请求参数错误",
			"data":    nil,
		})
		return
	}

	role, err := h.svc.UpdateRole(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "角色更新成功",
		"data":    role,
	})
}

// DeleteRole 删除角色
func (h *UserManagementHandler) DeleteRole(c *gin.Context) {
	overview, err := h.svc.DeleteRole(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":     200,
		"message":  "角色删除成功",
		"overview": overview,
	})
}

// ========== 菜单 ==========

// ListMenus 获取菜单树
func (h *UserManagementHandler) ListMenus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "获取成功",
		"data":    h.svc.ListMenus(),
	})
}

// CreateMenu 创建菜单
func (h *UserManagementHandler) CreateMenu(c *gin.Context) {
	var req services.CreateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "请求参数错误",
			"data":    nil,
		})
		return
	}

	menu, err := h.svc.CreateMenu(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"code":    201,
		"message": "菜单创建成功",
		"data":    menu,
	})
}

// UpdateMenu 更新菜单
func (h *UserManagementHandler) UpdateMenu(c *gin.Context) {
	var req services.UpdateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "请求参数错误",
			"data":    nil,
		})
		return
	}

	menu, err := h.svc.UpdateMenu(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "菜单更新成功",
		"data":    menu,
	})
}

// DeleteMenu 删除菜单，返回删除后的完整菜单树
func (h *UserManagementHandler) DeleteMenu(c *gin.Context) {
	menus, err := h.svc.DeleteMenu(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "菜单删除成功",
		"data":    menus,
	})
}
