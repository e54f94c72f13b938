package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"shiftswap/backend/internal/model"
)

// ShiftAssignmentRepository 排班数据访问
type ShiftAssignmentRepository interface {
	Create(ctx context.Context, shift *model.ShiftAssignment) error
	GetByID(ctx context.Context, shiftID string) (*model.ShiftAssignment, error)
	List(ctx context.Context, memberID string, start, end *time.Time, offset, limit int) ([]*model.ShiftAssignment, int64, error)
	// UpdateMember 将班次转给另一位成员，换班执行时重复调用结果一致
	UpdateMember(ctx context.Context, shiftID, memberID string) error
}

type shiftAssignmentRepo struct {
	db *gorm.DB
}

func newShiftAssignmentRepo(db *gorm.DB) ShiftAssignmentRepository {
	return &shiftAssignmentRepo{db: db}
}

func (r *shiftAssignmentRepo) Create(ctx context.Context, shift *model.ShiftAssignment) error {
	return r.db.WithContext(ctx).Create(shift).Error
}

func (r *shiftAssignmentRepo) GetByID(ctx context.Context, shiftID string) (*model.ShiftAssignment, error) {
	var shift model.ShiftAssignment
	err := r.db.WithContext(ctx).First(&shift, "shift_assignment_id = ?", shiftID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *shiftAssignmentRepo) List(ctx context.Context, memberID string, start, end *time.Time, offset, limit int) ([]*model.ShiftAssignment, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.ShiftAssignment{})
	if memberID != "" {
		query = query.Where("member_id = ?", memberID)
	}
	if start != nil {
		query = query.Where("shift_date >= ?", *start)
	}
	if end != nil {
		query = query.Where("shift_date <= ?", *end)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var shifts []*model.ShiftAssignment
	err := query.Order("shift_date, start_time").
		Offset(offset).Limit(limit).
		Find(&shifts).Error
	return shifts, total, err
}

func (r *shiftAssignmentRepo) UpdateMember(ctx context.Context, shiftID, memberID string) error {
	return r.db.WithContext(ctx).Model(&model.ShiftAssignment{}).
		Where("shift_assignment_id = ?", shiftID).
		Update("member_id", memberID).Error
}
