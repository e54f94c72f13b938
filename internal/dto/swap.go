package dto

import (
	"time"

	"shiftswap/backend/internal/model"
)

// CreateSwapRequest 发起换班申请
// target_item_id 为空表示单向顶班（对方接手我的班次）
type CreateSwapRequest struct {
	TargetID              string  `json:"target_id" binding:"required,uuid"`
	RequestorItemID       string  `json:"requestor_item_id" binding:"required,uuid"`
	TargetItemID          *string `json:"target_item_id" binding:"omitempty,uuid"`
	Reason                string  `json:"reason" binding:"max=500"`
	RequiresCrossApproval bool    `json:"requires_cross_approval"`
}

// SwapDecisionRequest 各审批环节的响应
// 对方响应用 accept，主管/人事审批用 approve；拒绝时 reason 建议填写
type SwapDecisionRequest struct {
	Approve bool   `json:"approve"`
	Reason  string `json:"reason" binding:"max=500"`
}

// SwapListRequest 换班申请列表查询
type SwapListRequest struct {
	PaginationRequest
	Status string `form:"status" binding:"omitempty,oneof=pending_target pending_manager pending_hr approved completed rejected expired"`
	Role   string `form:"role" binding:"omitempty,oneof=requestor target"` // 仅看我发起的/我被请求的
}

// SwapResponseInfo 单个审批环节的响应
type SwapResponseInfo struct {
	Action      *string    `json:"action,omitempty"`
	Reason      string     `json:"reason,omitempty"`
	ActorID     *string    `json:"actor_id,omitempty"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
}

// SwapResponse 换班申请详情
type SwapResponse struct {
	SwapRequestID         string           `json:"swap_request_id"`
	RequestorID           string           `json:"requestor_id"`
	RequestorName         string           `json:"requestor_name,omitempty"`
	TargetID              string           `json:"target_id"`
	TargetName            string           `json:"target_name,omitempty"`
	RequestorItemID       string           `json:"requestor_item_id"`
	TargetItemID          *string          `json:"target_item_id,omitempty"`
	Reason                string           `json:"reason"`
	RequiresCrossApproval bool             `json:"requires_cross_approval"`
	Status                string           `json:"status"`
	ExpiresAt             time.Time        `json:"expires_at"`
	TargetResponse        SwapResponseInfo `json:"target_response"`
	ManagerResponse       SwapResponseInfo `json:"manager_response"`
	HRResponse            SwapResponseInfo `json:"hr_response"`
	ExecutedAt            *time.Time       `json:"executed_at,omitempty"`
	Version               int              `json:"version"`
	CreatedAt             time.Time        `json:"created_at"`
}

// NewSwapResponse 从模型构造详情响应
func NewSwapResponse(s *model.SwapRequest) *SwapResponse {
	resp := &SwapResponse{
		SwapRequestID:         s.SwapRequestID,
		RequestorID:           s.RequestorID,
		TargetID:              s.TargetID,
		RequestorItemID:       s.RequestorItemID,
		TargetItemID:          s.TargetItemID,
		Reason:                s.Reason,
		RequiresCrossApproval: s.RequiresCrossApproval,
		Status:                s.Status,
		ExpiresAt:             s.ExpiresAt,
		TargetResponse:        SwapResponseInfo(s.TargetResponse),
		ManagerResponse:       SwapResponseInfo(s.ManagerResponse),
		HRResponse:            SwapResponseInfo(s.HRResponse),
		ExecutedAt:            s.ExecutedAt,
		Version:               s.Version,
		CreatedAt:             s.CreatedAt,
	}
	if s.Requestor != nil {
		resp.RequestorName = s.Requestor.Name
	}
	if s.Target != nil {
		resp.TargetName = s.Target.Name
	}
	return resp
}

// SwapHistoryResponse 流转历史条目
type SwapHistoryResponse struct {
	SequenceNumber int       `json:"sequence_number"`
	Action         string    `json:"action"`
	ActorID        string    `json:"actor_id"`
	ActorRole      string    `json:"actor_role"`
	PreviousStatus string    `json:"previous_status"`
	NewStatus      string    `json:"new_status"`
	Detail         string    `json:"detail,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewSwapHistoryResponse 从模型构造历史响应
func NewSwapHistoryResponse(h *model.SwapHistory) *SwapHistoryResponse {
	return &SwapHistoryResponse{
		SequenceNumber: h.SequenceNumber,
		Action:         h.Action,
		ActorID:        h.ActorID,
		ActorRole:      h.ActorRole,
		PreviousStatus: h.PreviousStatus,
		NewStatus:      h.NewStatus,
		Detail:         h.Detail,
		CreatedAt:      h.CreatedAt,
	}
}
