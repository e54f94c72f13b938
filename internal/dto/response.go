package dto

// PaginationRequest 通用分页参数
type PaginationRequest struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

// GetPage 页码，默认 1
func (p *PaginationRequest) GetPage() int {
	if p.Page <= 0 {
		return 1
	}
	return p.Page
}

// GetPageSize 每页条数，默认 20，上限 100
func (p *PaginationRequest) GetPageSize() int {
	if p.PageSize <= 0 {
		return 20
	}
	if p.PageSize > 100 {
		return 100
	}
	return p.PageSize
}

// GetOffset 计算偏移量
func (p *PaginationRequest) GetOffset() int {
	return (p.GetPage() - 1) * p.GetPageSize()
}

// UserResponse 用户信息
type UserResponse struct {
	UserID       string `json:"user_id"`
	Name         string `json:"name"`
	EmployeeID   string `json:"employee_id"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	DepartmentID string `json:"department_id"`
	Department   string `json:"department,omitempty"`
}

// TokenResponse 登录/刷新返回的令牌对
type TokenResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresIn    int64         `json:"expires_in"` // 访问令牌有效期（秒）
	User         *UserResponse `json:"user,omitempty"`
}
