package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"shiftswap/backend/config"
	"shiftswap/backend/internal/dto"
	"shiftswap/backend/internal/model"
	"shiftswap/backend/internal/repository"
	pkgerrors "shiftswap/backend/pkg/errors"
)

// 换班业务错误
var (
	ErrSwapNotFound            = errors.New("换班申请不存在")
	ErrSwapInvalidState        = errors.New("当前状态不允许该操作")
	ErrSwapUnauthorized        = errors.New("无权执行该操作")
	ErrSwapExpired             = errors.New("换班申请已过期")
	ErrSwapConflict            = errors.New("申请已被其他操作修改，请刷新后重试")
	ErrSwapExecutionFailed     = errors.New("班次交换执行失败")
	ErrSwapTargetInvalid       = errors.New("换班对象无效")
	ErrSwapShiftNotOwned       = errors.New("班次不属于指定成员")
	ErrShiftAssignmentNotFound = errors.New("排班记录不存在")
)

// SwapService 换班申请服务
type SwapService interface {
	Create(ctx context.Context, requestorID string, req *dto.CreateSwapRequest) (*dto.SwapResponse, error)
	RespondAsTarget(ctx context.Context, actorID, swapID string, req *dto.SwapDecisionRequest) (*dto.SwapResponse, error)
	RespondAsManager(ctx context.Context, actorID, swapID string, req *dto.SwapDecisionRequest) (*dto.SwapResponse, error)
	RespondAsCrossApprover(ctx context.Context, actorID, swapID string, req *dto.SwapDecisionRequest) (*dto.SwapResponse, error)
	Get(ctx context.Context, swapID string) (*dto.SwapResponse, error)
	List(ctx context.Context, userID string, req *dto.SwapListRequest) ([]*dto.SwapResponse, int64, error)
	ListHistory(ctx context.Context, swapID string) ([]*dto.SwapHistoryResponse, error)
}

type swapService struct {
	repo   *repository.Repository
	cfg    *config.Config
	logger *zap.Logger
	now    func() time.Time // 测试中可替换
}

// NewSwapService 创建换班服务
func NewSwapService(repo *repository.Repository, cfg *config.Config, logger *zap.Logger) SwapService {
	return &swapService{
		repo:   repo,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// ═══════════════════════════════════════════
// 发起申请
// ═══════════════════════════════════════════

func (s *swapService) Create(ctx context.Context, requestorID string, req *dto.CreateSwapRequest) (*dto.SwapResponse, error) {
	requestor, err := s.repo.User.GetByID(ctx, requestorID)
	if err != nil {
		return nil, err
	}
	if requestor == nil {
		return nil, ErrSwapUnauthorized
	}

	if req.TargetID == requestorID {
		return nil, fmt.Errorf("%w: 不能与自己换班", ErrSwapTargetInvalid)
	}
	target, err := s.repo.User.GetByID(ctx, req.TargetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, ErrSwapTargetInvalid
	}

	// 申请人的班次必须属于申请人
	requestorItem, err := s.repo.ShiftAssignment.GetByID(ctx, req.RequestorItemID)
	if err != nil {
		return nil, err
	}
	if requestorItem == nil {
		return nil, ErrShiftAssignmentNotFound
	}
	if requestorItem.MemberID != requestorID {
		return nil, ErrSwapShiftNotOwned
	}

	// 双向换班时对方的班次必须属于对方
	if req.TargetItemID != nil {
		targetItem, err := s.repo.ShiftAssignment.GetByID(ctx, *req.TargetItemID)
		if err != nil {
			return nil, err
		}
		if targetItem == nil {
			return nil, ErrShiftAssignmentNotFound
		}
		if targetItem.MemberID != req.TargetID {
			return nil, ErrSwapShiftNotOwned
		}
	}

	sysCfg, err := s.repo.SystemConfig.Get(ctx)
	if err != nil {
		return nil, err
	}

	// 跨部门换班强制人事审批（系统配置开启时）
	requiresCross := req.RequiresCrossApproval
	if requestor.DepartmentID != target.DepartmentID {
		if sysCfg == nil || sysCfg.CrossDeptApproval {
			requiresCross = true
		}
	}

	ttlHours := s.cfg.Swap.DefaultTTLHours
	if sysCfg != nil && sysCfg.SwapDeadlineHours > 0 {
		ttlHours = sysCfg.SwapDeadlineHours
	}

	now := s.now()
	swap := &model.SwapRequest{
		RequestorID:           requestorID,
		TargetID:              req.TargetID,
		RequestorItemID:       req.RequestorItemID,
		TargetItemID:          req.TargetItemID,
		Reason:                req.Reason,
		RequiresCrossApproval: requiresCross,
		Status:                model.SwapStatusPendingTarget,
		ExpiresAt:             now.Add(time.Duration(ttlHours) * time.Hour),
	}
	swap.CreatedBy = &requestorID

	err = s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		if err := tx.SwapRequest.Create(ctx, swap); err != nil {
			return err
		}
		return tx.SwapHistory.Append(ctx, &model.SwapHistory{
			SwapRequestID:  swap.SwapRequestID,
			SequenceNumber: 1,
			Action:         model.HistoryActionCreated,
			ActorID:        requestorID,
			ActorRole:      requestor.Role,
			PreviousStatus: "",
			NewStatus:      model.SwapStatusPendingTarget,
			Detail:         req.Reason,
		})
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, swap.TargetID, model.NotificationSwapCreated, "收到换班请求",
		fmt.Sprintf("%s 向你发起了换班请求", requestor.Name), swap.SwapRequestID)

	swap.Requestor = requestor
	swap.Target = target
	return dto.NewSwapResponse(swap), nil
}

// ═══════════════════════════════════════════
// 审批响应
// ═══════════════════════════════════════════

func (s *swapService) RespondAsTarget(ctx context.Context, actorID, swapID string, req *dto.SwapDecisionRequest) (*dto.SwapResponse, error) {
	trig := triggerTargetReject
	if req.Approve {
		trig = triggerTargetAccept
	}
	return s.apply(ctx, actorID, swapID, trig, req.Reason)
}

func (s *swapService) RespondAsManager(ctx context.Context, actorID, swapID string, req *dto.SwapDecisionRequest) (*dto.SwapResponse, error) {
	trig := triggerManagerReject
	if req.Approve {
		trig = triggerManagerApprove
	}
	return s.apply(ctx, actorID, swapID, trig, req.Reason)
}

func (s *swapService) RespondAsCrossApprover(ctx context.Context, actorID, swapID string, req *dto.SwapDecisionRequest) (*dto.SwapResponse, error) {
	trig := triggerHRReject
	if req.Approve {
		trig = triggerHRApprove
	}
	return s.apply(ctx, actorID, swapID, trig, req.Reason)
}

// apply 状态机核心：加载 → 惰性过期 → 状态检查 → 权限检查 → 事务内转移 → 执行
// 检查顺序固定：先状态后权限，过期优先于两者
func (s *swapService) apply(ctx context.Context, actorID, swapID string, trig trigger, reason string) (*dto.SwapResponse, error) {
	swap, err := s.repo.SwapRequest.GetByID(ctx, swapID)
	if err != nil {
		return nil, err
	}
	if swap == nil {
		return nil, ErrSwapNotFound
	}

	expired, err := s.expireIfNeeded(ctx, swap)
	if err != nil {
		return nil, err
	}
	if expired {
		return nil, ErrSwapExpired
	}

	actor, err := s.repo.User.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, ErrSwapUnauthorized
	}

	// 审批已通过但执行失败的申请：同一审批人重试 approve 只重新执行交换
	if swap.Status == model.SwapStatusApproved && s.isFinalApprove(swap, trig) {
		requestor, err := s.loadRequestor(ctx, swap)
		if err != nil {
			return nil, err
		}
		if !authorized(actor, requestor, swap, trig) {
			return nil, ErrSwapUnauthorized
		}
		if err := s.execute(ctx, swap); err != nil {
			return nil, err
		}
		return dto.NewSwapResponse(swap), nil
	}

	if !triggerAllowed(swap.Status, trig) {
		return nil, fmt.Errorf("%w: 当前状态为 %s", ErrSwapInvalidState, swap.Status)
	}

	requestor, err := s.loadRequestor(ctx, swap)
	if err != nil {
		return nil, err
	}
	if !authorized(actor, requestor, swap, trig) {
		return nil, ErrSwapUnauthorized
	}

	newStatus := nextStatus(swap, trig)
	action := historyAction(trig, newStatus)
	prevStatus := swap.Status
	now := s.now()

	swap.Status = newStatus
	s.recordResponse(swap, trig, actorID, reason, now)
	swap.UpdatedBy = &actorID

	err = s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		if err := tx.SwapRequest.UpdateStatus(ctx, swap, swap.Version); err != nil {
			return err
		}
		seq, err := tx.SwapHistory.NextSequence(ctx, swap.SwapRequestID)
		if err != nil {
			return err
		}
		return tx.SwapHistory.Append(ctx, &model.SwapHistory{
			SwapRequestID:  swap.SwapRequestID,
			SequenceNumber: seq,
			Action:         action,
			ActorID:        actorID,
			ActorRole:      actor.Role,
			PreviousStatus: prevStatus,
			NewStatus:      newStatus,
			Detail:         reason,
		})
	})
	if errors.Is(err, pkgerrors.ErrOptimisticLock) {
		return nil, ErrSwapConflict
	}
	if err != nil {
		return nil, err
	}

	s.notifyTransition(ctx, swap, action)

	// 审批链走完后立即执行班次交换；执行失败时申请停留在 approved，可重试
	if newStatus == model.SwapStatusApproved {
		if err := s.execute(ctx, swap); err != nil {
			return nil, err
		}
	}

	return dto.NewSwapResponse(swap), nil
}

// isFinalApprove 判断该动作是否是将申请推到 approved 的最终审批
func (s *swapService) isFinalApprove(swap *model.SwapRequest, trig trigger) bool {
	if swap.RequiresCrossApproval {
		return trig == triggerHRApprove
	}
	return trig == triggerManagerApprove
}

// recordResponse 把响应写入对应的审批环节字段
func (s *swapService) recordResponse(swap *model.SwapRequest, trig trigger, actorID, reason string, at time.Time) {
	action := model.SwapActionReject
	switch trig {
	case triggerTargetAccept:
		action = model.SwapActionAccept
	case triggerManagerApprove, triggerHRApprove:
		action = model.SwapActionApprove
	}
	resp := model.SwapResponse{
		Action:      &action,
		Reason:      reason,
		ActorID:     &actorID,
		RespondedAt: &at,
	}
	switch trig {
	case triggerTargetAccept, triggerTargetReject:
		swap.TargetResponse = resp
	case triggerManagerApprove, triggerManagerReject:
		swap.ManagerResponse = resp
	case triggerHRApprove, triggerHRReject:
		swap.HRResponse = resp
	}
}

// ═══════════════════════════════════════════
// 执行班次交换
// ═══════════════════════════════════════════

// execute 幂等执行：班次易主 + 状态置为 completed + 系统历史记录，单事务完成
// 乐观锁失败时重读，若已是 completed 说明并发调用已完成，视为成功
func (s *swapService) execute(ctx context.Context, swap *model.SwapRequest) error {
	if swap.Status == model.SwapStatusCompleted || swap.ExecutedAt != nil {
		return nil
	}

	prevStatus := swap.Status
	now := s.now()
	swap.Status = model.SwapStatusCompleted
	swap.ExecutedAt = &now

	err := s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		if err := tx.ShiftAssignment.UpdateMember(ctx, swap.RequestorItemID, swap.TargetID); err != nil {
			return err
		}
		if swap.TargetItemID != nil {
			if err := tx.ShiftAssignment.UpdateMember(ctx, *swap.TargetItemID, swap.RequestorID); err != nil {
				return err
			}
		}
		if err := tx.SwapRequest.UpdateStatus(ctx, swap, swap.Version); err != nil {
			return err
		}
		seq, err := tx.SwapHistory.NextSequence(ctx, swap.SwapRequestID)
		if err != nil {
			return err
		}
		return tx.SwapHistory.Append(ctx, &model.SwapHistory{
			SwapRequestID:  swap.SwapRequestID,
			SequenceNumber: seq,
			Action:         model.HistoryActionCompleted,
			ActorID:        model.SystemActor,
			ActorRole:      model.SystemActor,
			PreviousStatus: prevStatus,
			NewStatus:      model.SwapStatusCompleted,
		})
	})
	if errors.Is(err, pkgerrors.ErrOptimisticLock) {
		fresh, rerr := s.repo.SwapRequest.GetByID(ctx, swap.SwapRequestID)
		if rerr == nil && fresh != nil && fresh.Status == model.SwapStatusCompleted {
			*swap = *fresh
			return nil
		}
		return ErrSwapConflict
	}
	if err != nil {
		// 申请停留在 approved，审批结果已持久化，可重试执行
		swap.Status = prevStatus
		swap.ExecutedAt = nil
		s.logger.Error("班次交换执行失败",
			zap.String("swap_request_id", swap.SwapRequestID),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %v", ErrSwapExecutionFailed, err)
	}

	s.notify(ctx, swap.RequestorID, model.NotificationSwapCompleted, "换班已完成", "你的换班申请已执行", swap.SwapRequestID)
	s.notify(ctx, swap.TargetID, model.NotificationSwapCompleted, "换班已完成", "换班申请已执行", swap.SwapRequestID)
	return nil
}

// ═══════════════════════════════════════════
// 惰性过期
// ═══════════════════════════════════════════

// expireIfNeeded 读取路径上的惰性过期：等待中的申请超过截止时间即转为 expired
// 并发下另一操作先行转移时以重读结果为准
func (s *swapService) expireIfNeeded(ctx context.Context, swap *model.SwapRequest) (bool, error) {
	if !swap.IsPending() || s.now().Before(swap.ExpiresAt) {
		return swap.Status == model.SwapStatusExpired, nil
	}

	prevStatus := swap.Status
	swap.Status = model.SwapStatusExpired

	err := s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		if err := tx.SwapRequest.UpdateStatus(ctx, swap, swap.Version); err != nil {
			return err
		}
		seq, err := tx.SwapHistory.NextSequence(ctx, swap.SwapRequestID)
		if err != nil {
			return err
		}
		return tx.SwapHistory.Append(ctx, &model.SwapHistory{
			SwapRequestID:  swap.SwapRequestID,
			SequenceNumber: seq,
			Action:         model.HistoryActionExpired,
			ActorID:        model.SystemActor,
			ActorRole:      model.SystemActor,
			PreviousStatus: prevStatus,
			NewStatus:      model.SwapStatusExpired,
		})
	})
	if errors.Is(err, pkgerrors.ErrOptimisticLock) {
		fresh, rerr := s.repo.SwapRequest.GetByID(ctx, swap.SwapRequestID)
		if rerr != nil {
			return false, rerr
		}
		if fresh != nil {
			*swap = *fresh
		}
		return swap.Status == model.SwapStatusExpired, nil
	}
	if err != nil {
		return false, err
	}

	s.notify(ctx, swap.RequestorID, model.NotificationSwapExpired, "换班申请已过期", "你的换班申请超时未完成审批", swap.SwapRequestID)
	return true, nil
}

// ═══════════════════════════════════════════
// 查询
// ═══════════════════════════════════════════

func (s *swapService) Get(ctx context.Context, swapID string) (*dto.SwapResponse, error) {
	swap, err := s.repo.SwapRequest.GetByID(ctx, swapID)
	if err != nil {
		return nil, err
	}
	if swap == nil {
		return nil, ErrSwapNotFound
	}
	// 读取时惰性过期，返回过期后的最新状态
	if _, err := s.expireIfNeeded(ctx, swap); err != nil {
		return nil, err
	}
	return dto.NewSwapResponse(swap), nil
}

func (s *swapService) List(ctx context.Context, userID string, req *dto.SwapListRequest) ([]*dto.SwapResponse, int64, error) {
	swaps, total, err := s.repo.SwapRequest.ListByUser(ctx, userID, req.Status, req.Role, req.GetOffset(), req.GetPageSize())
	if err != nil {
		return nil, 0, err
	}
	resps := make([]*dto.SwapResponse, 0, len(swaps))
	for _, swap := range swaps {
		resps = append(resps, dto.NewSwapResponse(swap))
	}
	return resps, total, nil
}

func (s *swapService) ListHistory(ctx context.Context, swapID string) ([]*dto.SwapHistoryResponse, error) {
	swap, err := s.repo.SwapRequest.GetByID(ctx, swapID)
	if err != nil {
		return nil, err
	}
	if swap == nil {
		return nil, ErrSwapNotFound
	}
	entries, err := s.repo.SwapHistory.ListByRequest(ctx, swapID)
	if err != nil {
		return nil, err
	}
	resps := make([]*dto.SwapHistoryResponse, 0, len(entries))
	for _, entry := range entries {
		resps = append(resps, dto.NewSwapHistoryResponse(entry))
	}
	return resps, nil
}

// ═══════════════════════════════════════════
// 辅助
// ═══════════════════════════════════════════

func (s *swapService) loadRequestor(ctx context.Context, swap *model.SwapRequest) (*model.User, error) {
	if swap.Requestor != nil {
		return swap.Requestor, nil
	}
	requestor, err := s.repo.User.GetByID(ctx, swap.RequestorID)
	if err != nil {
		return nil, err
	}
	if requestor == nil {
		return nil, ErrSwapNotFound
	}
	return requestor, nil
}

// notifyTransition 按动作通知相关方，通知失败不影响主流程
func (s *swapService) notifyTransition(ctx context.Context, swap *model.SwapRequest, action string) {
	switch action {
	case model.HistoryActionAccepted:
		s.notify(ctx, swap.RequestorID, model.NotificationSwapAccepted, "对方已同意换班", "换班请求已进入主管审批", swap.SwapRequestID)
	case model.HistoryActionRejected:
		s.notify(ctx, swap.RequestorID, model.NotificationSwapRejected, "换班申请被拒绝", "你的换班申请未通过", swap.SwapRequestID)
	case model.HistoryActionEscalated:
		s.notify(ctx, swap.RequestorID, model.NotificationSwapEscalated, "换班申请升级审批", "主管已通过，等待人事跨部门审批", swap.SwapRequestID)
	}
}

func (s *swapService) notify(ctx context.Context, userID, ntype, title, content, swapID string) {
	err := s.repo.Notification.Create(ctx, &model.Notification{
		UserID:      userID,
		Type:        ntype,
		Title:       title,
		Content:     content,
		RelatedType: "swap_request",
		RelatedID:   &swapID,
	})
	if err != nil {
		s.logger.Warn("通知发送失败",
			zap.String("user_id", userID),
			zap.String("type", ntype),
			zap.Error(err),
		)
	}
}
