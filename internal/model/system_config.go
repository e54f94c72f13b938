package model

// SystemConfig 系统配置（单行表）
type SystemConfig struct {
	Singleton         bool `gorm:"primaryKey;default:true" json:"-"`
	SwapDeadlineHours int  `gorm:"not null;default:48" json:"swap_deadline_hours"` // 换班申请有效时长（小时）
	CrossDeptApproval bool `gorm:"not null;default:true" json:"cross_dept_approval"`

	BaseModel
}

// TableName 指定表名
func (SystemConfig) TableName() string {
	return "system_config"
}
