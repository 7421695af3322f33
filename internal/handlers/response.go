package handlers

import (
	"errors"
	"net/http"

	"github.com/clearsky-tech/bizsite-console/internal/services"

	"github.com/gin-gonic/gin"
)

// respondError 将服务层错误统一映射为 HTTP 响应
func respondError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	var notFoundErr *services.NotFoundError
	var conflictErr *services.ConflictError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": validationErr.Message,
			"data":    nil,
		})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{
			"code":    404,
			"message": notFoundErr.Message,
			"data":    nil,
		})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{
			"code":    409,
			"message": conflictErr.Message,
			"data":    nil,
		})
	case errors.Is(err, services.ErrNoDatabase):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"code":    503,
			"message": err.Error(),
			"data":    nil,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "服务器内部错误",
			"data":    nil,
		})
	}
}
