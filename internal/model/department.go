package model

// Department 部门
type Department struct {
	DepartmentID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"department_id"`
	Name         string `gorm:"type:varchar(50);not null" json:"name"`
	Description  string `gorm:"type:text" json:"description"`
	IsActive     bool   `gorm:"not null;default:true" json:"is_active"`

	VersionedModel
}

// TableName 指定表名
func (Department) TableName() string {
	return "departments"
}
