package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shiftswap/backend/config"
	"shiftswap/backend/internal/api/handler"
	"shiftswap/backend/internal/api/middleware"
	"shiftswap/backend/internal/model"
	"shiftswap/backend/pkg/jwt"
	"shiftswap/backend/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(1 << 20)) // 1MB

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证）
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// 认证模块（需要认证）
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			// 换班模块
			swaps := authorized.Group("/swaps")
			{
				swaps.POST("", h.Swap.Create)
				swaps.GET("", h.Swap.List)
				swaps.GET("/:id", h.Swap.Get)
				swaps.GET("/:id/history", h.Swap.ListHistory)
				swaps.POST("/:id/target-response", h.Swap.RespondAsTarget)
				swaps.POST("/:id/manager-response", middleware.RoleAuth(model.RoleManager, model.RoleAdmin), h.Swap.RespondAsManager)
				swaps.POST("/:id/hr-response", middleware.RoleAuth(model.RoleHR, model.RoleAdmin), h.Swap.RespondAsCrossApprover)
			}

			// 排班模块
			shifts := authorized.Group("/shifts")
			{
				shifts.GET("", h.Shift.List)
				shifts.GET("/my", h.Shift.My)
				shifts.GET("/:id", h.Shift.Get)
				shifts.POST("", middleware.RoleAuth(model.RoleManager, model.RoleAdmin), h.Shift.Create)
			}

			// 通知模块
			notifications := authorized.Group("/notifications")
			{
				notifications.GET("", h.Notification.List)
				notifications.PUT("/:id/read", h.Notification.MarkRead)
			}

			// 系统配置模块
			systemConfig := authorized.Group("/system-config")
			{
				systemConfig.GET("", h.SystemConfig.Get)
				systemConfig.PUT("", middleware.RoleAuth(model.RoleAdmin), h.SystemConfig.Update)
			}

			// 导出模块
			export := authorized.Group("/export")
			{
				export.GET("/swaps", middleware.RoleAuth(model.RoleAdmin, model.RoleManager), h.Export.ExportSwaps)
			}
		}
	}

	return r
}
