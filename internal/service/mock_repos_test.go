package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"shiftswap/backend/internal/model"
	pkgerrors "shiftswap/backend/pkg/errors"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) GetByID(_ context.Context, userID string) (*model.User, error) {
	if u, ok := m.users[userID]; ok {
		return u, nil
	}
	return nil, nil
}

func (m *mockUserRepo) GetByEmployeeID(_ context.Context, employeeID string) (*model.User, error) {
	for _, u := range m.users {
		if u.EmployeeID == employeeID {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) ListManagersByDepartment(_ context.Context, departmentID string) ([]*model.User, error) {
	var result []*model.User
	for _, u := range m.users {
		if u.DepartmentID == departmentID && u.Role == model.RoleManager {
			result = append(result, u)
		}
	}
	return result, nil
}

// ── Mock DepartmentRepository ──

type mockDeptRepo struct {
	depts map[string]*model.Department
}

func newMockDeptRepo() *mockDeptRepo {
	return &mockDeptRepo{depts: make(map[string]*model.Department)}
}

func (m *mockDeptRepo) GetByID(_ context.Context, departmentID string) (*model.Department, error) {
	if d, ok := m.depts[departmentID]; ok {
		return d, nil
	}
	return nil, nil
}

func (m *mockDeptRepo) List(_ context.Context) ([]*model.Department, error) {
	var result []*model.Department
	for _, d := range m.depts {
		result = append(result, d)
	}
	return result, nil
}

// ── Mock ShiftAssignmentRepository ──

type mockShiftRepo struct {
	mu              sync.Mutex
	shifts          map[string]*model.ShiftAssignment
	updateMemberErr error // 注入执行失败
	updateCalls     int
}

func newMockShiftRepo() *mockShiftRepo {
	return &mockShiftRepo{shifts: make(map[string]*model.ShiftAssignment)}
}

func (m *mockShiftRepo) Create(_ context.Context, shift *model.ShiftAssignment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if shift.ShiftAssignmentID == "" {
		shift.ShiftAssignmentID = fmt.Sprintf("shift-%d", len(m.shifts)+1)
	}
	cp := *shift
	m.shifts[shift.ShiftAssignmentID] = &cp
	return nil
}

func (m *mockShiftRepo) GetByID(_ context.Context, shiftID string) (*model.ShiftAssignment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.shifts[shiftID]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (m *mockShiftRepo) List(_ context.Context, memberID string, _, _ *time.Time, _, _ int) ([]*model.ShiftAssignment, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []*model.ShiftAssignment
	for _, s := range m.shifts {
		if memberID == "" || s.MemberID == memberID {
			cp := *s
			result = append(result, &cp)
		}
	}
	return result, int64(len(result)), nil
}

func (m *mockShiftRepo) UpdateMember(_ context.Context, shiftID, memberID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateMemberErr != nil {
		return m.updateMemberErr
	}
	if s, ok := m.shifts[shiftID]; ok {
		s.MemberID = memberID
		m.updateCalls++
	}
	return nil
}

// ── Mock SwapRequestRepository ──

type mockSwapRepo struct {
	mu        sync.Mutex
	swaps     map[string]*model.SwapRequest
	updateErr error // 注入一次性更新失败
}

func newMockSwapRepo() *mockSwapRepo {
	return &mockSwapRepo{swaps: make(map[string]*model.SwapRequest)}
}

func (m *mockSwapRepo) Create(_ context.Context, swap *model.SwapRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if swap.SwapRequestID == "" {
		swap.SwapRequestID = fmt.Sprintf("swap-%d", len(m.swaps)+1)
	}
	if swap.Version == 0 {
		swap.Version = 1
	}
	swap.CreatedAt = time.Now()
	cp := *swap
	m.swaps[swap.SwapRequestID] = &cp
	return nil
}

func (m *mockSwapRepo) GetByID(_ context.Context, swapID string) (*model.SwapRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.swaps[swapID]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (m *mockSwapRepo) ListByUser(_ context.Context, userID, status, role string, _, _ int) ([]*model.SwapRequest, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []*model.SwapRequest
	for _, s := range m.swaps {
		match := false
		switch role {
		case "requestor":
			match = s.RequestorID == userID
		case "target":
			match = s.TargetID == userID
		default:
			match = s.RequestorID == userID || s.TargetID == userID
		}
		if match && (status == "" || s.Status == status) {
			cp := *s
			result = append(result, &cp)
		}
	}
	return result, int64(len(result)), nil
}

func (m *mockSwapRepo) ListAll(_ context.Context, status string, offset, limit int) ([]*model.SwapRequest, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []*model.SwapRequest
	for _, s := range m.swaps {
		if status == "" || s.Status == status {
			cp := *s
			result = append(result, &cp)
		}
	}
	if offset >= len(result) {
		return nil, int64(len(result)), nil
	}
	end := offset + limit
	if end > len(result) {
		end = len(result)
	}
	return result[offset:end], int64(len(result)), nil
}

// UpdateStatus 与真实实现一致：版本不匹配返回 ErrOptimisticLock
func (m *mockSwapRepo) UpdateStatus(_ context.Context, swap *model.SwapRequest, expectedVersion int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		err := m.updateErr
		m.updateErr = nil
		return err
	}
	stored, ok := m.swaps[swap.SwapRequestID]
	if !ok || stored.Version != expectedVersion {
		return pkgerrors.ErrOptimisticLock
	}
	cp := *swap
	cp.Version = expectedVersion + 1
	cp.CreatedAt = stored.CreatedAt
	m.swaps[swap.SwapRequestID] = &cp
	swap.Version = cp.Version
	return nil
}

// ── Mock SwapHistoryRepository ──

type mockHistoryRepo struct {
	mu      sync.Mutex
	entries []*model.SwapHistory
}

func newMockHistoryRepo() *mockHistoryRepo {
	return &mockHistoryRepo{}
}

func (m *mockHistoryRepo) Append(_ context.Context, entry *model.SwapHistory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if entry.HistoryID == "" {
		entry.HistoryID = fmt.Sprintf("hist-%d", len(m.entries)+1)
	}
	entry.CreatedAt = time.Now()
	cp := *entry
	m.entries = append(m.entries, &cp)
	return nil
}

func (m *mockHistoryRepo) ListByRequest(_ context.Context, swapID string) ([]*model.SwapHistory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []*model.SwapHistory
	for _, e := range m.entries {
		if e.SwapRequestID == swapID {
			cp := *e
			result = append(result, &cp)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].SequenceNumber < result[j].SequenceNumber
	})
	return result, nil
}

func (m *mockHistoryRepo) NextSequence(_ context.Context, swapID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	max := 0
	for _, e := range m.entries {
		if e.SwapRequestID == swapID && e.SequenceNumber > max {
			max = e.SequenceNumber
		}
	}
	return max + 1, nil
}

// ── Mock NotificationRepository ──

type mockNotificationRepo struct {
	mu            sync.Mutex
	notifications []*model.Notification
	createErr     error // 注入通知失败
}

func newMockNotificationRepo() *mockNotificationRepo {
	return &mockNotificationRepo{}
}

func (m *mockNotificationRepo) Create(_ context.Context, n *model.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	if n.NotificationID == "" {
		n.NotificationID = fmt.Sprintf("notif-%d", len(m.notifications)+1)
	}
	cp := *n
	m.notifications = append(m.notifications, &cp)
	return nil
}

func (m *mockNotificationRepo) ListByUser(_ context.Context, userID string, unreadOnly bool, _, _ int) ([]*model.Notification, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []*model.Notification
	for _, n := range m.notifications {
		if n.UserID == userID && (!unreadOnly || !n.IsRead) {
			cp := *n
			result = append(result, &cp)
		}
	}
	return result, int64(len(result)), nil
}

func (m *mockNotificationRepo) MarkRead(_ context.Context, userID, notificationID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, n := range m.notifications {
		if n.NotificationID == notificationID && n.UserID == userID {
			n.IsRead = true
		}
	}
	return nil
}

// ── Mock SystemConfigRepository ──

type mockSystemConfigRepo struct {
	cfg *model.SystemConfig
}

func newMockSystemConfigRepo() *mockSystemConfigRepo {
	return &mockSystemConfigRepo{
		cfg: &model.SystemConfig{
			Singleton:         true,
			SwapDeadlineHours: 48,
			CrossDeptApproval: true,
		},
	}
}

func (m *mockSystemConfigRepo) Get(_ context.Context) (*model.SystemConfig, error) {
	if m.cfg == nil {
		return nil, nil
	}
	cp := *m.cfg
	return &cp, nil
}

func (m *mockSystemConfigRepo) Update(_ context.Context, cfg *model.SystemConfig) error {
	cp := *cfg
	m.cfg = &cp
	return nil
}
