package service

import (
	"context"
	"errors"
	"testing"

	"shiftswap/backend/internal/dto"
	"shiftswap/backend/internal/repository"
)

// ── 测试辅助 ──

func setupTestSystemConfigService() (SystemConfigService, *mockSystemConfigRepo) {
	configRepo := newMockSystemConfigRepo()
	repo := &repository.Repository{
		User:            newMockUserRepo(),
		Department:      newMockDeptRepo(),
		ShiftAssignment: newMockShiftRepo(),
		SwapRequest:     newMockSwapRepo(),
		SwapHistory:     newMockHistoryRepo(),
		Notification:    newMockNotificationRepo(),
		SystemConfig:    configRepo,
	}
	return NewSystemConfigService(repo), configRepo
}

// ── Get 测试 ──

func TestSystemConfigService_Get_Success(t *testing.T) {
	svc, _ := setupTestSystemConfigService()

	result, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("Get 应成功: %v", err)
	}
	if result.SwapDeadlineHours != 48 {
		t.Errorf("期望SwapDeadlineHours=48，实际=%d", result.SwapDeadlineHours)
	}
	if !result.CrossDeptApproval {
		t.Error("期望CrossDeptApproval=true")
	}
}

func TestSystemConfigService_Get_NotFound(t *testing.T) {
	svc, configRepo := setupTestSystemConfigService()
	configRepo.cfg = nil

	_, err := svc.Get(context.Background())
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("期望 ErrConfigNotFound，实际: %v", err)
	}
}

// ── Update 测试 ──

func TestSystemConfigService_Update_Success(t *testing.T) {
	svc, _ := setupTestSystemConfigService()

	newHours := 24
	result, err := svc.Update(context.Background(), "admin-001", &dto.UpdateSystemConfigRequest{
		SwapDeadlineHours: &newHours,
	})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if result.SwapDeadlineHours != 24 {
		t.Errorf("期望SwapDeadlineHours=24，实际=%d", result.SwapDeadlineHours)
	}
	// 未修改的字段应保持原值
	if !result.CrossDeptApproval {
		t.Error("期望CrossDeptApproval保持true")
	}
}

func TestSystemConfigService_Update_PartialUpdate(t *testing.T) {
	svc, configRepo := setupTestSystemConfigService()

	off := false
	result, err := svc.Update(context.Background(), "admin-001", &dto.UpdateSystemConfigRequest{
		CrossDeptApproval: &off,
	})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if result.CrossDeptApproval {
		t.Error("期望CrossDeptApproval=false")
	}
	if configRepo.cfg.SwapDeadlineHours != 48 {
		t.Errorf("期望SwapDeadlineHours保持48，实际=%d", configRepo.cfg.SwapDeadlineHours)
	}
}
