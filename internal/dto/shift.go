package dto

// CreateShiftRequest 创建排班（主管/管理员）
type CreateShiftRequest struct {
	MemberID  string `json:"member_id" binding:"required,uuid"`
	ShiftDate string `json:"shift_date" binding:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" binding:"required,datetime=15:04"`
	EndTime   string `json:"end_time" binding:"required,datetime=15:04"`
	Location  string `json:"location" binding:"max=100"`
}

// ShiftListRequest 排班列表查询
type ShiftListRequest struct {
	PaginationRequest
	MemberID  string `form:"member_id" binding:"omitempty,uuid"`
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
}
