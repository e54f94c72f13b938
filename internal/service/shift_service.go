package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"shiftswap/backend/internal/dto"
	"shiftswap/backend/internal/model"
	"shiftswap/backend/internal/repository"
)

// ErrShiftTimeInvalid 班次结束时间不晚于开始时间
var ErrShiftTimeInvalid = errors.New("班次结束时间必须晚于开始时间")

// ShiftService 排班服务
type ShiftService interface {
	Create(ctx context.Context, operatorID string, req *dto.CreateShiftRequest) (*model.ShiftAssignment, error)
	Get(ctx context.Context, shiftID string) (*model.ShiftAssignment, error)
	List(ctx context.Context, req *dto.ShiftListRequest) ([]*model.ShiftAssignment, int64, error)
}

type shiftService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewShiftService 创建排班服务
func NewShiftService(repo *repository.Repository, logger *zap.Logger) ShiftService {
	return &shiftService{repo: repo, logger: logger}
}

func (s *shiftService) Create(ctx context.Context, operatorID string, req *dto.CreateShiftRequest) (*model.ShiftAssignment, error) {
	member, err := s.repo.User.GetByID(ctx, req.MemberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrUserNotFound
	}

	if req.EndTime <= req.StartTime {
		return nil, ErrShiftTimeInvalid
	}

	shiftDate, err := time.Parse("2006-01-02", req.ShiftDate)
	if err != nil {
		return nil, err
	}

	shift := &model.ShiftAssignment{
		MemberID:  req.MemberID,
		ShiftDate: shiftDate,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Location:  req.Location,
	}
	shift.CreatedBy = &operatorID

	if err := s.repo.ShiftAssignment.Create(ctx, shift); err != nil {
		return nil, err
	}
	return shift, nil
}

func (s *shiftService) Get(ctx context.Context, shiftID string) (*model.ShiftAssignment, error) {
	shift, err := s.repo.ShiftAssignment.GetByID(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, ErrShiftAssignmentNotFound
	}
	return shift, nil
}

func (s *shiftService) List(ctx context.Context, req *dto.ShiftListRequest) ([]*model.ShiftAssignment, int64, error) {
	var start, end *time.Time
	if req.StartDate != "" {
		t, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return nil, 0, err
		}
		start = &t
	}
	if req.EndDate != "" {
		t, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return nil, 0, err
		}
		end = &t
	}
	return s.repo.ShiftAssignment.List(ctx, req.MemberID, start, end, req.GetOffset(), req.GetPageSize())
}
