package model

// 通知类型
const (
	NotificationSwapCreated   = "swap_created"
	NotificationSwapAccepted  = "swap_accepted"
	NotificationSwapRejected  = "swap_rejected"
	NotificationSwapEscalated = "swap_escalated"
	NotificationSwapCompleted = "swap_completed"
	NotificationSwapExpired   = "swap_expired"
)

// Notification 站内通知
type Notification struct {
	NotificationID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"notification_id"`
	UserID         string  `gorm:"type:uuid;not null;index" json:"user_id"`
	Type           string  `gorm:"type:varchar(50);not null" json:"type"`
	Title          string  `gorm:"type:varchar(200);not null" json:"title"`
	Content        string  `gorm:"type:text;not null" json:"content"`
	IsRead         bool    `gorm:"not null;default:false" json:"is_read"`
	RelatedType    string  `gorm:"type:varchar(20)" json:"related_type,omitempty"`
	RelatedID      *string `gorm:"type:uuid" json:"related_id,omitempty"`

	SoftDeleteModel
}

// TableName 指定表名
func (Notification) TableName() string {
	return "notifications"
}
