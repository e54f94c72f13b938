package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 仓储聚合，服务层通过它访问所有数据
type Repository struct {
	User            UserRepository
	Department      DepartmentRepository
	ShiftAssignment ShiftAssignmentRepository
	SwapRequest     SwapRequestRepository
	SwapHistory     SwapHistoryRepository
	Notification    NotificationRepository
	SystemConfig    SystemConfigRepository

	db *gorm.DB
}

// NewRepository 创建仓储聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:            newUserRepo(db),
		Department:      newDepartmentRepo(db),
		ShiftAssignment: newShiftAssignmentRepo(db),
		SwapRequest:     newSwapRequestRepo(db),
		SwapHistory:     newSwapHistoryRepo(db),
		Notification:    newNotificationRepo(db),
		SystemConfig:    newSystemConfigRepo(db),
		db:              db,
	}
}

// WithTx 在数据库事务内执行 fn，fn 返回错误时回滚
// db 为空时（单元测试的内存实现）直接执行 fn
func (r *Repository) WithTx(ctx context.Context, fn func(tx *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}
