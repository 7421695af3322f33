package router

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/clearsky-tech/bizsite-console/internal/config"
	"github.com/clearsky-tech/bizsite-console/internal/handlers"
	"github.com/clearsky-tech/bizsite-console/internal/middleware"
	"github.com/clearsky-tech/bizsite-console/internal/services"
)

// Setup 初始化路由。db 为 nil 时内容接口运行在内存模式。
func Setup(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.New()

	r.Use(
		gin.Recovery(),
		gin.Logger(),
		middleware.CORS(cfg.CORS.AllowOrigins),
		gzip.Gzip(gzip.DefaultCompression),
	)

	// 统一的 Service 实例，避免重复创建
	permissionSvc := services.NewPermissionService()
	bannerSvc := services.NewBannerService(db)
	solutionSvc := services.NewSolutionService(db)
	productSvc := services.NewProductService(db)
	analyticsSvc := services.NewAnalyticsService(db)

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Auth 仅开放注册与登录，verify 需携带令牌
	auth := api.Group("/auth")
	{
		authHandler := handlers.NewAuthHandler(db, cfg)
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/verify", middleware.AuthRequired(cfg.JWT.Secret), authHandler.Verify)
	}

	// 公开内容接口，官网与小程序直接读取
	bannerHandler := handlers.NewBannerHandler(bannerSvc)
	solutionHandler := handlers.NewSolutionHandler(solutionSvc)
	productHandler := handlers.NewProductHandler(productSvc)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsSvc)

	api.GET("/banners", bannerHandler.ListBanners)
	api.GET("/banners/:id", bannerHandler.GetBanner)
	api.GET("/solutions", solutionHandler.ListSolutions)
	api.GET("/solutions/:id", solutionHandler.GetSolution)
	api.GET("/products", productHandler.ListProducts)
	api.GET("/products/:id", productHandler.GetProduct)
	api.POST("/analytics/visits", analyticsHandler.RecordVisit)

	// 受保护的管理接口
	protected := api.Group("")
	protected.Use(middleware.AuthRequired(cfg.JWT.Secret))
	{
		protected.POST("/banners", bannerHandler.CreateBanner)
		protected.PUT("/banners/:id", bannerHandler.UpdateBanner)
		protected.DELETE("/banners/:id", bannerHandler.DeleteBanner)
		protected.GET("/admin/banners", bannerHandler.ListAllBanners)

		protected.POST("/solutions", solutionHandler.CreateSolution)
		protected.PUT("/solutions/:id", solutionHandler.UpdateSolution)
		protected.DELETE("/solutions/:id", solutionHandler.DeleteSolution)
		protected.GET("/admin/solutions", solutionHandler.ListAllSolutions)

		protected.POST("/products", productHandler.CreateProduct)
		protected.PUT("/products/:id", productHandler.UpdateProduct)
		protected.DELETE("/products/:id", productHandler.DeleteProduct)
		protected.GET("/admin/products", productHandler.ListAllProducts)

		protected.GET("/analytics/summary", analyticsHandler.GetSummary)
	}

	// 用户管理：读取接口开放给控制台首屏，写操作必须带令牌
	userMgmtHandler := handlers.NewUserManagementHandler(permissionSvc)
	userMgmt := api.Group("/user-management")
	{
		userMgmt.GET("/overview", userMgmtHandler.GetOverview)
		userMgmt.GET("/users", userMgmtHandler.ListUsers)
		userMgmt.GET("/roles", userMgmtHandler.ListRoles)
		userMgmt.GET("/menus", userMgmtHandler.ListMenus)

		guarded := userMgmt.Group("")
		guarded.Use(middleware.AuthRequired(cfg.JWT.Secret))
		{
			guarded.POST("/users", userMgmtHandler.CreateUser)
			guarded.PUT("/users/:id", userMgmtHandler.UpdateUser)
			guarded.PATCH("/users/:id/status", userMgmtHandler.UpdateUserStatus)
			guarded.PATCH("/users/:id/reset-password", userMgmtHandler.ResetUserPassword)
			guarded.DELETE("/users/:id", userMgmtHandler.DeleteUser)

			guarded.POST("/roles", userMgmtHandler.CreateRole)
			guarded.PUT("/roles/:id", userMgmtHandler.UpdateRole)
			guarded.DELETE("/roles/:id", userMgmtHandler.DeleteRole)

			guarded.POST("/menus", userMgmtHandler.CreateMenu)
			guarded.PUT("/menus/:id", userMgmtHandler.UpdateMenu)
			guarded.DELETE("/menus/:id", userMgmtHandler.DeleteMenu)
		}
	}

	return r
}
