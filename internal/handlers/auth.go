package handlers

import (
	"net/http"
	"time"

	"github.com/clearsky-tech/bizsite-console/internal/config"
	"github.com/clearsky-tech/bizsite-console/internal/models"
	"github.com/clearsky-tech/bizsite-console/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		db:  db,
		cfg: cfg,
	}
}

// RegisterRequest 注册请求结构
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Email    string `json:"email" binding:"required,email"`
}

// LoginRequest 登录请求结构
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录响应结构
type LoginResponse struct {
	Token     string       `json:"token"`
	Admin     models.Admin `json:"admin"`
	ExpiresAt int64        `json:"expires_at"`
}

// Register 管理员注册
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "用户名、密码和邮箱不能为空",
			"data":    nil,
		})
		return
	}

	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"code":    503,
			"message": "未配置数据库，无法注册",
			"data":    nil,
		})
		return
	}

	var count int64
	h.db.Model(&models.Admin{}).
		Where("username = ? OR email = ?", req.Username, req.Email).
		Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{
			"code":    409,
			"message": "用户名或邮箱已存在",
			"data":    nil,
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("密码哈希失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "注册失败",
			"data":    nil,
		})
		return
	}

	admin := &models.Admin{
		Username:     req.Username,
		PasswordHash: string(hash),
		Email:        req.Email,
		Role:         "admin",
	}
	if err := h.db.Create(admin).Error; err != nil {
		logger.Error("创建管理员失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "注册失败",
			"data":    nil,
		})
		return
	}

	logger.Info("管理员注册成功: %s", admin.Username)

	c.JSON(http.StatusCreated, gin.H{
		"code":    201,
		"message": "注册成功",
		"data":    admin,
	})
}

// Login 管理员登录
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "请求参数错误",
			"data":    nil,
		})
		return
	}

	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"code":    503,
			"message": "未配置数据库，无法登录",
			"data":    nil,
		})
		return
	}

	var admin models.Admin
	if err := h.db.Where("username = ?", req.Username).First(&admin).Error; err != nil {
		logger.Warn("登录失败，用户名不存在: %s", req.Username)
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":    401,
			"message": "用户名或密码错误",
			"data":    nil,
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("登录失败，密码错误: %s", req.Username)
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":    401,
			"message": "用户名或密码错误",
			"data":    nil,
		})
		return
	}

	// 生成JWT token
	expiresAt := time.Now().Add(time.Duration(h.cfg.JWT.ExpireTime) * time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin_id": admin.ID,
		"username": admin.Username,
		"role":     admin.Role,
		"exp":      expiresAt.Unix(),
	})

	tokenString, err := token.SignedString([]byte(h.cfg.JWT.Secret))
	if err != nil {
		logger.Error("JWT token生成失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "登录失败",
			"data":    nil,
		})
		return
	}

	// 更新最后登录时间
	now := time.Now()
	admin.LastLoginAt = &now
	h.db.Save(&admin)

	logger.Info("管理员登录成功: %s", admin.Username)

	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "登录成功",
		"data": LoginResponse{
			Token:     tokenString,
			Admin:     admin,
			ExpiresAt: expiresAt.Unix(),
		},
	})
}

// Logout 管理员登出，JWT 令牌由前端丢弃
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "退出登录成功",
		"data":    nil,
	})
}

// Verify 校验令牌并返回当前管理员信息
func (h *AuthHandler) Verify(c *gin.Context) {
	adminID := c.GetFloat64("admin_id")

	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"code":    503,
			"message": "未配置数据库",
			"data":    nil,
		})
		return
	}

	var admin models.Admin
	if err := h.db.First(&admin, uint(adminID)).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":    401,
			"message": "用户不存在",
			"data":    nil,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "获取成功",
		"data":    admin,
	})
}
