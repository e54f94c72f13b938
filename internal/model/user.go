package model

// 用户角色
const (
	RoleMember  = "member"  // 普通组员
	RoleManager = "manager" // 部门主管
	RoleHR      = "hr"      // 人事（跨部门审批人）
	RoleAdmin   = "admin"   // 系统管理员
)

// User 用户
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Name         string `gorm:"type:varchar(100);not null" json:"name"`
	EmployeeID   string `gorm:"type:varchar(20);not null" json:"employee_id"`
	Email        string `gorm:"type:varchar(255);not null" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	Role         string `gorm:"type:varchar(20);not null;default:member" json:"role"`
	DepartmentID string `gorm:"type:uuid;not null" json:"department_id"`

	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`

	VersionedModel
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
