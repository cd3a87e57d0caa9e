package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/tripmate/internal/handler"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ==================== 推荐 API ====================
	api := r.Group("/api")
	{
		api.GET("/recommend/places", h.RecommendPlaces)
		api.GET("/recommend/hotels", h.RecommendHotels)
		api.GET("/cities", h.Cities)
		api.GET("/categories", h.Categories)

		// 用户注册/登录（仅邮箱查找，无会话）
		api.POST("/register", h.Register)
		api.POST("/login", h.Login)
	}
}
