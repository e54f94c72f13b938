package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"shiftswap/backend/internal/dto"
	"shiftswap/backend/internal/service"
	"shiftswap/backend/pkg/response"
)

// SystemConfigHandler 系统配置 HTTP 处理器
type SystemConfigHandler struct {
	configSvc service.SystemConfigService
}

// NewSystemConfigHandler 创建 SystemConfigHandler
func NewSystemConfigHandler(configSvc service.SystemConfigService) *SystemConfigHandler {
	return &SystemConfigHandler{configSvc: configSvc}
}

// Get 获取系统配置
// GET /api/v1/system-config
func (h *SystemConfigHandler) Get(c *gin.Context) {
	cfg, err := h.configSvc.Get(c.Request.Context())
	if err != nil {
		h.handleConfigError(c, err)
		return
	}

	response.OK(c, cfg)
}

// Update 更新系统配置（管理员）
// PUT /api/v1/system-config
func (h *SystemConfigHandler) Update(c *gin.Context) {
	var req dto.UpdateSystemConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 16001, "参数校验失败")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	cfg, err := h.configSvc.Update(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleConfigError(c, err)
		return
	}

	response.OK(c, cfg)
}

func (h *SystemConfigHandler) handleConfigError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrConfigNotFound):
		response.NotFound(c, 16101, "系统配置不存在")
	default:
		response.InternalError(c)
	}
}
