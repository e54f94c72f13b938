package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shiftswap/backend/internal/model"
)

// SystemConfigRepository 系统配置（单行表）
type SystemConfigRepository interface {
	Get(ctx context.Context) (*model.SystemConfig, error)
	Update(ctx context.Context, cfg *model.SystemConfig) error
}

type systemConfigRepo struct {
	db *gorm.DB
}

func newSystemConfigRepo(db *gorm.DB) SystemConfigRepository {
	return &systemConfigRepo{db: db}
}

func (r *systemConfigRepo) Get(ctx context.Context) (*model.SystemConfig, error) {
	var cfg model.SystemConfig
	err := r.db.WithContext(ctx).First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *systemConfigRepo) Update(ctx context.Context, cfg *model.SystemConfig) error {
	return r.db.WithContext(ctx).Model(&model.SystemConfig{}).
		Where("singleton = ?", true).
		Updates(map[string]interface{}{
			"swap_deadline_hours": cfg.SwapDeadlineHours,
			"cross_dept_approval": cfg.CrossDeptApproval,
			"updated_by":          cfg.UpdatedBy,
		}).Error
}
