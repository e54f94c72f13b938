package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shiftswap/backend/internal/model"
	pkgerrors "shiftswap/backend/pkg/errors"
)

// SwapRequestRepository 换班申请数据访问
type SwapRequestRepository interface {
	Create(ctx context.Context, swap *model.SwapRequest) error
	GetByID(ctx context.Context, swapID string) (*model.SwapRequest, error)
	ListByUser(ctx context.Context, userID, status, role string, offset, limit int) ([]*model.SwapRequest, int64, error)
	ListAll(ctx context.Context, status string, offset, limit int) ([]*model.SwapRequest, int64, error)
	// UpdateStatus 带乐观锁的状态更新：version 不匹配时返回 ErrOptimisticLock
	UpdateStatus(ctx context.Context, swap *model.SwapRequest, expectedVersion int) error
}

type swapRequestRepo struct {
	db *gorm.DB
}

func newSwapRequestRepo(db *gorm.DB) SwapRequestRepository {
	return &swapRequestRepo{db: db}
}

func (r *swapRequestRepo) Create(ctx context.Context, swap *model.SwapRequest) error {
	return r.db.WithContext(ctx).Create(swap).Error
}

func (r *swapRequestRepo) GetByID(ctx context.Context, swapID string) (*model.SwapRequest, error) {
	var swap model.SwapRequest
	err := r.db.WithContext(ctx).
		Preload("Requestor").
		Preload("Target").
		First(&swap, "swap_request_id = ?", swapID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &swap, nil
}

func (r *swapRequestRepo) ListByUser(ctx context.Context, userID, status, role string, offset, limit int) ([]*model.SwapRequest, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.SwapRequest{})
	switch role {
	case "requestor":
		query = query.Where("requestor_id = ?", userID)
	case "target":
		query = query.Where("target_id = ?", userID)
	default:
		query = query.Where("requestor_id = ? OR target_id = ?", userID, userID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var swaps []*model.SwapRequest
	err := query.Preload("Requestor").Preload("Target").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&swaps).Error
	return swaps, total, err
}

func (r *swapRequestRepo) ListAll(ctx context.Context, status string, offset, limit int) ([]*model.SwapRequest, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.SwapRequest{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var swaps []*model.SwapRequest
	err := query.Preload("Requestor").Preload("Target").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&swaps).Error
	return swaps, total, err
}

func (r *swapRequestRepo) UpdateStatus(ctx context.Context, swap *model.SwapRequest, expectedVersion int) error {
	result := r.db.WithContext(ctx).Model(&model.SwapRequest{}).
		Where("swap_request_id = ? AND version = ?", swap.SwapRequestID, expectedVersion).
		Updates(map[string]interface{}{
			"status":               swap.Status,
			"target_action":        swap.TargetResponse.Action,
			"target_reason":        swap.TargetResponse.Reason,
			"target_actor_id":      swap.TargetResponse.ActorID,
			"target_responded_at":  swap.TargetResponse.RespondedAt,
			"manager_action":       swap.ManagerResponse.Action,
			"manager_reason":       swap.ManagerResponse.Reason,
			"manager_actor_id":     swap.ManagerResponse.ActorID,
			"manager_responded_at": swap.ManagerResponse.RespondedAt,
			"hr_action":            swap.HRResponse.Action,
			"hr_reason":            swap.HRResponse.Reason,
			"hr_actor_id":          swap.HRResponse.ActorID,
			"hr_responded_at":      swap.HRResponse.RespondedAt,
			"executed_at":          swap.ExecutedAt,
			"updated_by":           swap.UpdatedBy,
			"version":              expectedVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	swap.Version = expectedVersion + 1
	return nil
}
