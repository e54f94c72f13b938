package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"shiftswap/backend/config"
	"shiftswap/backend/internal/dto"
	"shiftswap/backend/internal/model"
	"shiftswap/backend/internal/repository"
	"shiftswap/backend/pkg/jwt"
)

// ── 测试辅助 ──

func setupTestAuthService(t *testing.T) AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("生成密码哈希失败: %v", err)
	}

	userRepo := newMockUserRepo()
	userRepo.users["user-001"] = &model.User{
		UserID:       "user-001",
		Name:         "张三",
		EmployeeID:   "EMP001",
		Email:        "zhangsan@example.com",
		PasswordHash: string(hash),
		Role:         model.RoleMember,
		DepartmentID: "dept-a",
	}

	repo := &repository.Repository{
		User:            userRepo,
		Department:      newMockDeptRepo(),
		ShiftAssignment: newMockShiftRepo(),
		SwapRequest:     newMockSwapRepo(),
		SwapHistory:     newMockHistoryRepo(),
		Notification:    newMockNotificationRepo(),
		SystemConfig:    newMockSystemConfigRepo(),
	}

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:               "test-secret-key-for-unit-testing-2026",
			AccessTokenTTL:          15 * time.Minute,
			RefreshTokenTTLDefault:  24 * time.Hour,
			RefreshTokenTTLRemember: 7 * 24 * time.Hour,
		},
	}
	jwtMgr := jwt.NewManager(&cfg.Auth)

	// Redis 缺席时认证服务应降级可用
	return NewAuthService(repo, cfg, jwtMgr, nil, zap.NewNop())
}

// ── Login ──

func TestAuthService_Login_Success(t *testing.T) {
	svc := setupTestAuthService(t)

	tokens, err := svc.Login(context.Background(), &dto.LoginRequest{
		EmployeeID: "EMP001",
		Password:   "correct-password",
	})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Error("令牌对不应为空")
	}
	if tokens.User == nil || tokens.User.UserID != "user-001" {
		t.Errorf("用户信息应随令牌返回，实际=%+v", tokens.User)
	}
	if tokens.ExpiresIn != int64((15 * time.Minute).Seconds()) {
		t.Errorf("期望ExpiresIn=900，实际=%d", tokens.ExpiresIn)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := setupTestAuthService(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		EmployeeID: "EMP001",
		Password:   "wrong-password",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

func TestAuthService_Login_UnknownEmployee(t *testing.T) {
	svc := setupTestAuthService(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		EmployeeID: "EMP999",
		Password:   "any",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("未知工号应与密码错误返回同一错误，实际: %v", err)
	}
}

// ── RefreshToken ──

func TestAuthService_RefreshToken_Success(t *testing.T) {
	svc := setupTestAuthService(t)
	ctx := context.Background()

	tokens, err := svc.Login(ctx, &dto.LoginRequest{EmployeeID: "EMP001", Password: "correct-password"})
	if err != nil {
		t.Fatalf("Login 失败: %v", err)
	}

	refreshed, err := svc.RefreshToken(ctx, tokens.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken 应成功: %v", err)
	}
	if refreshed.AccessToken == "" {
		t.Error("刷新后应返回新的访问令牌")
	}
}

func TestAuthService_RefreshToken_RejectsAccessToken(t *testing.T) {
	svc := setupTestAuthService(t)
	ctx := context.Background()

	tokens, err := svc.Login(ctx, &dto.LoginRequest{EmployeeID: "EMP001", Password: "correct-password"})
	if err != nil {
		t.Fatalf("Login 失败: %v", err)
	}

	// 用访问令牌冒充刷新令牌
	_, err = svc.RefreshToken(ctx, tokens.AccessToken)
	if !errors.Is(err, ErrRefreshTokenInvalid) {
		t.Errorf("期望 ErrRefreshTokenInvalid，实际: %v", err)
	}
}

func TestAuthService_RefreshToken_Garbage(t *testing.T) {
	svc := setupTestAuthService(t)

	_, err := svc.RefreshToken(context.Background(), "not-a-token")
	if !errors.Is(err, ErrRefreshTokenInvalid) {
		t.Errorf("期望 ErrRefreshTokenInvalid，实际: %v", err)
	}
}

// ── GetCurrentUser ──

func TestAuthService_GetCurrentUser(t *testing.T) {
	svc := setupTestAuthService(t)

	user, err := svc.GetCurrentUser(context.Background(), "user-001")
	if err != nil {
		t.Fatalf("GetCurrentUser 应成功: %v", err)
	}
	if user.EmployeeID != "EMP001" {
		t.Errorf("期望EmployeeID=EMP001，实际=%s", user.EmployeeID)
	}

	_, err = svc.GetCurrentUser(context.Background(), "user-ghost")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("期望 ErrUserNotFound，实际: %v", err)
	}
}
