package service

import (
	"go.uber.org/zap"

	"shiftswap/backend/config"
	"shiftswap/backend/internal/repository"
	"shiftswap/backend/pkg/jwt"
	"shiftswap/backend/pkg/redis"
)

// Service 服务聚合
type Service struct {
	Auth         AuthService
	Swap         SwapService
	Shift        ShiftService
	Notification NotificationService
	SystemConfig SystemConfigService
	Export       ExportService
}

// NewService 创建服务聚合
// rdb 允许为 nil（Redis 不可用时降级运行，黑名单与限流失效）
func NewService(repo *repository.Repository, cfg *config.Config, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *Service {
	return &Service{
		Auth:         NewAuthService(repo, cfg, jwtMgr, rdb, logger),
		Swap:         NewSwapService(repo, cfg, logger),
		Shift:        NewShiftService(repo, logger),
		Notification: NewNotificationService(repo),
		SystemConfig: NewSystemConfigService(repo),
		Export:       NewExportService(repo, logger),
	}
}
