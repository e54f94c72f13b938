package service

import (
	"context"

	"shiftswap/backend/internal/dto"
	"shiftswap/backend/internal/model"
	"shiftswap/backend/internal/repository"
)

// NotificationService 通知服务
type NotificationService interface {
	List(ctx context.Context, userID string, req *dto.NotificationListRequest) ([]*model.Notification, int64, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
}

type notificationService struct {
	repo *repository.Repository
}

// NewNotificationService 创建通知服务
func NewNotificationService(repo *repository.Repository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) List(ctx context.Context, userID string, req *dto.NotificationListRequest) ([]*model.Notification, int64, error) {
	return s.repo.Notification.ListByUser(ctx, userID, req.UnreadOnly, req.GetOffset(), req.GetPageSize())
}

func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	return s.repo.Notification.MarkRead(ctx, userID, notificationID)
}
