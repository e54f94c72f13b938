package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shiftswap/backend/internal/dto"
	"shiftswap/backend/internal/service"
	"shiftswap/backend/pkg/response"
)

// SwapHandler 换班模块 HTTP 处理器
type SwapHandler struct {
	swapSvc service.SwapService
}

// NewSwapHandler 创建 SwapHandler
func NewSwapHandler(swapSvc service.SwapService) *SwapHandler {
	return &SwapHandler{swapSvc: swapSvc}
}

// Create 发起换班申请
// POST /api/v1/swaps
func (h *SwapHandler) Create(c *gin.Context) {
	var req dto.CreateSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 14001, "参数校验失败")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	swap, err := h.swapSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleSwapError(c, err)
		return
	}

	response.Created(c, swap)
}

// List 查询与我相关的换班申请
// GET /api/v1/swaps
func (h *SwapHandler) List(c *gin.Context) {
	var req dto.SwapListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 14001, "参数校验失败")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	swaps, total, err := h.swapSvc.List(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleSwapError(c, err)
		return
	}

	response.OKPage(c, swaps, total, req.GetPage(), req.GetPageSize())
}

// Get 查询换班申请详情
// GET /api/v1/swaps/:id
func (h *SwapHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 14001, "换班申请ID不能为空")
		return
	}

	swap, err := h.swapSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.handleSwapError(c, err)
		return
	}

	response.OK(c, swap)
}

// ListHistory 查询换班申请流转历史
// GET /api/v1/swaps/:id/history
func (h *SwapHandler) ListHistory(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 14001, "换班申请ID不能为空")
		return
	}

	entries, err := h.swapSvc.ListHistory(c.Request.Context(), id)
	if err != nil {
		h.handleSwapError(c, err)
		return
	}

	response.OK(c, gin.H{"list": entries})
}

// RespondAsTarget 换班对象响应
// POST /api/v1/swaps/:id/target-response
func (h *SwapHandler) RespondAsTarget(c *gin.Context) {
	h.respond(c, h.swapSvc.RespondAsTarget)
}

// RespondAsManager 主管审批
// POST /api/v1/swaps/:id/manager-response
func (h *SwapHandler) RespondAsManager(c *gin.Context) {
	h.respond(c, h.swapSvc.RespondAsManager)
}

// RespondAsCrossApprover 人事跨部门审批
// POST /api/v1/swaps/:id/hr-response
func (h *SwapHandler) RespondAsCrossApprover(c *gin.Context) {
	h.respond(c, h.swapSvc.RespondAsCrossApprover)
}

type respondFunc func(ctx context.Context, actorID, swapID string, req *dto.SwapDecisionRequest) (*dto.SwapResponse, error)

// respond 三个审批环节的公共流程：取参 → 取当前用户 → 调用对应服务方法
func (h *SwapHandler) respond(c *gin.Context, fn respondFunc) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 14001, "换班申请ID不能为空")
		return
	}

	var req dto.SwapDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 14001, "参数校验失败")
		return
	}

	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	swap, err := fn(c.Request.Context(), userID, id, &req)
	if err != nil {
		h.handleSwapError(c, err)
		return
	}

	response.OK(c, swap)
}

func (h *SwapHandler) handleSwapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSwapNotFound):
		response.NotFound(c, 14101, "换班申请不存在")
	case errors.Is(err, service.ErrShiftAssignmentNotFound):
		response.NotFound(c, 14102, "排班记录不存在")
	case errors.Is(err, service.ErrSwapInvalidState):
		response.ErrorWithDetails(c, http.StatusBadRequest, 14103, "当前状态不允许该操作", err.Error())
	case errors.Is(err, service.ErrSwapUnauthorized):
		response.Forbidden(c, 14104, "无权执行该操作")
	case errors.Is(err, service.ErrSwapExpired):
		response.ErrorWithDetails(c, http.StatusBadRequest, 14105, "换班申请已过期", "expired")
	case errors.Is(err, service.ErrSwapConflict):
		response.Conflict(c, 14106, "申请已被其他操作修改，请刷新后重试")
	case errors.Is(err, service.ErrSwapExecutionFailed):
		response.Error(c, http.StatusInternalServerError, 14107, "班次交换执行失败，申请保持已批准状态，可重试")
	case errors.Is(err, service.ErrSwapTargetInvalid):
		response.BadRequest(c, 14108, "换班对象无效")
	case errors.Is(err, service.ErrSwapShiftNotOwned):
		response.BadRequest(c, 14109, "班次不属于指定成员")
	default:
		response.InternalError(c)
	}
}
