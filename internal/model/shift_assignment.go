package model

import "time"

// ShiftAssignment 排班记录
// 一条记录表示某位组员在某天的一个班次；换班执行即交换两条记录的 member_id
type ShiftAssignment struct {
	ShiftAssignmentID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"shift_assignment_id"`
	MemberID          string    `gorm:"type:uuid;not null;index" json:"member_id"`
	ShiftDate         time.Time `gorm:"type:date;not null" json:"shift_date"`
	StartTime         string    `gorm:"type:varchar(5);not null" json:"start_time"` // HH:MM
	EndTime           string    `gorm:"type:varchar(5);not null" json:"end_time"`   // HH:MM
	Location          string    `gorm:"type:varchar(100)" json:"location"`

	Member *User `gorm:"foreignKey:MemberID" json:"member,omitempty"`

	VersionedModel
}

// TableName 指定表名
func (ShiftAssignment) TableName() string {
	return "shift_assignments"
}
