package repository

import (
	"context"

	"gorm.io/gorm"

	"shiftswap/backend/internal/model"
)

// SwapHistoryRepository 换班流转历史，只追加
type SwapHistoryRepository interface {
	Append(ctx context.Context, entry *model.SwapHistory) error
	ListByRequest(ctx context.Context, swapID string) ([]*model.SwapHistory, error)
	// NextSequence 返回该申请的下一个历史序号（已有 n 条时返回 n+1）
	NextSequence(ctx context.Context, swapID string) (int, error)
}

type swapHistoryRepo struct {
	db *gorm.DB
}

func newSwapHistoryRepo(db *gorm.DB) SwapHistoryRepository {
	return &swapHistoryRepo{db: db}
}

func (r *swapHistoryRepo) Append(ctx context.Context, entry *model.SwapHistory) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *swapHistoryRepo) ListByRequest(ctx context.Context, swapID string) ([]*model.SwapHistory, error) {
	var entries []*model.SwapHistory
	err := r.db.WithContext(ctx).
		Where("swap_request_id = ?", swapID).
		Order("sequence_number").
		Find(&entries).Error
	return entries, err
}

func (r *swapHistoryRepo) NextSequence(ctx context.Context, swapID string) (int, error) {
	var max int
	err := r.db.WithContext(ctx).Model(&model.SwapHistory{}).
		Where("swap_request_id = ?", swapID).
		Select("COALESCE(MAX(sequence_number), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}
