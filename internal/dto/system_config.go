package dto

// UpdateSystemConfigRequest 更新系统配置（管理员）
type UpdateSystemConfigRequest struct {
	SwapDeadlineHours *int  `json:"swap_deadline_hours" binding:"omitempty,min=1,max=720"`
	CrossDeptApproval *bool `json:"cross_dept_approval"`
}
