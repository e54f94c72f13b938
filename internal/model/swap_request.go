package model

import "time"

// 换班申请状态机
//
//	pending_target → pending_manager → pending_hr → approved → completed
//	                                          ↘ rejected / expired（终态）
//
// pending_hr 仅在需要跨部门审批时出现；approved 表示审批通过但班次尚未交换
const (
	SwapStatusPendingTarget  = "pending_target"  // 等待对方响应
	SwapStatusPendingManager = "pending_manager" // 等待主管审批
	SwapStatusPendingHR      = "pending_hr"      // 等待人事跨部门审批
	SwapStatusApproved       = "approved"        // 审批通过，待执行
	SwapStatusCompleted      = "completed"       // 班次已交换（终态）
	SwapStatusRejected       = "rejected"        // 任一环节拒绝（终态）
	SwapStatusExpired        = "expired"         // 超时未完成审批（终态）
)

// 响应动作
const (
	SwapActionAccept  = "accept"
	SwapActionReject  = "reject"
	SwapActionApprove = "approve"
)

// SwapResponse 单个审批环节的响应记录
type SwapResponse struct {
	Action      *string    `gorm:"type:varchar(10)" json:"action,omitempty"`
	Reason      string     `gorm:"type:varchar(500)" json:"reason,omitempty"`
	ActorID     *string    `gorm:"type:uuid" json:"actor_id,omitempty"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
}

// SwapRequest 换班申请
type SwapRequest struct {
	SwapRequestID   string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"swap_request_id"`
	RequestorID     string  `gorm:"type:uuid;not null;index" json:"requestor_id"`
	TargetID        string  `gorm:"type:uuid;not null;index" json:"target_id"`
	RequestorItemID string  `gorm:"type:uuid;not null" json:"requestor_item_id"`
	TargetItemID    *string `gorm:"type:uuid" json:"target_item_id,omitempty"` // 为空表示单向顶班
	Reason          string  `gorm:"type:varchar(500)" json:"reason"`

	RequiresCrossApproval bool      `gorm:"not null;default:false" json:"requires_cross_approval"`
	Status                string    `gorm:"type:varchar(20);not null;default:pending_target;index" json:"status"`
	ExpiresAt             time.Time `gorm:"not null" json:"expires_at"`

	TargetResponse  SwapResponse `gorm:"embedded;embeddedPrefix:target_" json:"target_response"`
	ManagerResponse SwapResponse `gorm:"embedded;embeddedPrefix:manager_" json:"manager_response"`
	HRResponse      SwapResponse `gorm:"embedded;embeddedPrefix:hr_" json:"hr_response"`

	ExecutedAt *time.Time `json:"executed_at,omitempty"`

	Requestor *User `gorm:"foreignKey:RequestorID" json:"requestor,omitempty"`
	Target    *User `gorm:"foreignKey:TargetID" json:"target,omitempty"`

	VersionedModel
}

// TableName 指定表名
func (SwapRequest) TableName() string {
	return "swap_requests"
}

// IsTerminal 判断是否处于终态
func (s *SwapRequest) IsTerminal() bool {
	switch s.Status {
	case SwapStatusCompleted, SwapStatusRejected, SwapStatusExpired:
		return true
	}
	return false
}

// IsPending 判断是否处于可超时的等待状态
func (s *SwapRequest) IsPending() bool {
	switch s.Status {
	case SwapStatusPendingTarget, SwapStatusPendingManager, SwapStatusPendingHR:
		return true
	}
	return false
}
