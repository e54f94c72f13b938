package model

import "time"

// 历史记录动作
const (
	HistoryActionCreated   = "created"
	HistoryActionAccepted  = "accepted"
	HistoryActionRejected  = "rejected"
	HistoryActionApproved  = "approved"
	HistoryActionEscalated = "escalated" // 主管通过后升级到人事审批
	HistoryActionExpired   = "expired"
	HistoryActionCompleted = "completed"
)

// SystemActor 系统自动操作（过期、执行完成）在历史中的操作者标识
const SystemActor = "system"

// SwapHistory 换班申请流转历史，只追加
// sequence_number 在单个申请内从 1 连续递增，(swap_request_id, sequence_number) 唯一
type SwapHistory struct {
	HistoryID      string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"history_id"`
	SwapRequestID  string    `gorm:"type:uuid;not null;index;uniqueIndex:uq_swap_history_seq" json:"swap_request_id"`
	SequenceNumber int       `gorm:"not null;uniqueIndex:uq_swap_history_seq" json:"sequence_number"`
	Action         string    `gorm:"type:varchar(20);not null" json:"action"`
	ActorID        string    `gorm:"type:varchar(64);not null" json:"actor_id"` // 用户 UUID 或 system
	ActorRole      string    `gorm:"type:varchar(20);not null" json:"actor_role"`
	PreviousStatus string    `gorm:"type:varchar(20);not null" json:"previous_status"`
	NewStatus      string    `gorm:"type:varchar(20);not null" json:"new_status"`
	Detail         string    `gorm:"type:varchar(500)" json:"detail,omitempty"`
	CreatedAt      time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName 指定表名
func (SwapHistory) TableName() string {
	return "swap_history"
}
