package dto

// NotificationListRequest 通知列表查询
type NotificationListRequest struct {
	PaginationRequest
	UnreadOnly bool `form:"unread_only"`
}
