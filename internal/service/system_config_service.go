package service

import (
	"context"
	"errors"

	"shiftswap/backend/internal/dto"
	"shiftswap/backend/internal/model"
	"shiftswap/backend/internal/repository"
)

// ErrConfigNotFound 系统配置行缺失（迁移未执行）
var ErrConfigNotFound = errors.New("系统配置不存在")

// SystemConfigService 系统配置服务
type SystemConfigService interface {
	Get(ctx context.Context) (*model.SystemConfig, error)
	Update(ctx context.Context, operatorID string, req *dto.UpdateSystemConfigRequest) (*model.SystemConfig, error)
}

type systemConfigService struct {
	repo *repository.Repository
}

// NewSystemConfigService 创建系统配置服务
func NewSystemConfigService(repo *repository.Repository) SystemConfigService {
	return &systemConfigService{repo: repo}
}

func (s *systemConfigService) Get(ctx context.Context) (*model.SystemConfig, error) {
	cfg, err := s.repo.SystemConfig.Get(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, ErrConfigNotFound
	}
	return cfg, nil
}

func (s *systemConfigService) Update(ctx context.Context, operatorID string, req *dto.UpdateSystemConfigRequest) (*model.SystemConfig, error) {
	cfg, err := s.repo.SystemConfig.Get(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, ErrConfigNotFound
	}

	if req.SwapDeadlineHours != nil {
		cfg.SwapDeadlineHours = *req.SwapDeadlineHours
	}
	if req.CrossDeptApproval != nil {
		cfg.CrossDeptApproval = *req.CrossDeptApproval
	}
	cfg.UpdatedBy = &operatorID

	if err := s.repo.SystemConfig.Update(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
