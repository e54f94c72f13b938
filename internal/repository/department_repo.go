package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shiftswap/backend/internal/model"
)

// DepartmentRepository 部门数据访问
type DepartmentRepository interface {
	GetByID(ctx context.Context, departmentID string) (*model.Department, error)
	List(ctx context.Context) ([]*model.Department, error)
}

type departmentRepo struct {
	db *gorm.DB
}

func newDepartmentRepo(db *gorm.DB) DepartmentRepository {
	return &departmentRepo{db: db}
}

func (r *departmentRepo) GetByID(ctx context.Context, departmentID string) (*model.Department, error) {
	var dept model.Department
	err := r.db.WithContext(ctx).First(&dept, "department_id = ?", departmentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepo) List(ctx context.Context) ([]*model.Department, error) {
	var depts []*model.Department
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("name").Find(&depts).Error
	return depts, err
}
