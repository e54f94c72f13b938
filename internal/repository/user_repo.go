package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shiftswap/backend/internal/model"
)

// UserRepository 用户数据访问
type UserRepository interface {
	GetByID(ctx context.Context, userID string) (*model.User, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*model.User, error)
	ListManagersByDepartment(ctx context.Context, departmentID string) ([]*model.User, error)
}

type userRepo struct {
	db *gorm.DB
}

func newUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) GetByID(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Preload("Department").
		First(&user, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByEmployeeID(ctx context.Context, employeeID string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Preload("Department").
		First(&user, "employee_id = ?", employeeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) ListManagersByDepartment(ctx context.Context, departmentID string) ([]*model.User, error) {
	var users []*model.User
	err := r.db.WithContext(ctx).
		Where("department_id = ? AND role = ?", departmentID, model.RoleManager).
		Find(&users).Error
	return users, err
}
