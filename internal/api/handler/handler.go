package handler

import "shiftswap/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth         *AuthHandler
	Swap         *SwapHandler
	Shift        *ShiftHandler
	Notification *NotificationHandler
	SystemConfig *SystemConfigHandler
	Export       *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth),
		Swap:         NewSwapHandler(svc.Swap),
		Shift:        NewShiftHandler(svc.Shift),
		Notification: NewNotificationHandler(svc.Notification),
		SystemConfig: NewSystemConfigHandler(svc.SystemConfig),
		Export:       NewExportHandler(svc.Export),
	}
}
