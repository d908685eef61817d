package service

import (
	"errors"
	"obe_backend/internal/config"
	"obe_backend/internal/model"
	"obe_backend/internal/util"
	"testing"
	"time"
)

func newAuthService(env *testEnv) *AuthService {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-not-for-production-use"
	cfg.JWT.ExpireTime = time.Hour
	return NewAuthService(env.users, cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)
	svc := newAuthService(env)

	user, err := svc.Register(RegisterRequest{
		Name:     "Alice",
		Email:    "alice@obe.local",
		Password: "s3cret123",
		Role:     model.RoleTeacher,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Role != model.RoleTeacher {
		t.Fatalf("role = %q, want teacher", user.Role)
	}
	if user.Password == "s3cret123" {
		t.Fatal("password stored in plain text")
	}

	resp, err := svc.Login(LoginRequest{Email: "alice@obe.local", Password: "s3cret123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("empty token")
	}

	claims, err := util.ParseJWT(resp.Token, "test-secret-not-for-production-use")
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != model.RoleTeacher {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	svc := newAuthService(env)

	req := RegisterRequest{Name: "Alice", Email: "alice@obe.local", Password: "s3cret123"}
	if _, err := svc.Register(req); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	_, err := svc.Register(req)
	if !errors.Is(err, util.ErrEmailRegistered) {
		t.Fatalf("err = %v, want ErrEmailRegistered", err)
	}
}

func TestRegisterNeverGrantsAdmin(t *testing.T) {
	env := newTestEnv(t)
	svc := newAuthService(env)

	user, err := svc.Register(RegisterRequest{
		Name:     "Mallory",
		Email:    "mallory@obe.local",
		Password: "s3cret123",
		Role:     model.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Role != model.RoleStudent {
		t.Fatalf("role = %q, want fallback to student", user.Role)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	svc := newAuthService(env)

	if _, err := svc.Register(RegisterRequest{
		Name: "Alice", Email: "alice@obe.local", Password: "s3cret123",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := svc.Login(LoginRequest{Email: "alice@obe.local", Password: "wrong"})
	if !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("err = %v, want ErrPermissionDenied", err)
	}
}

func TestLoginDisabledAccount(t *testing.T) {
	env := newTestEnv(t)
	svc := newAuthService(env)

	user, err := svc.Register(RegisterRequest{
		Name: "Alice", Email: "alice@obe.local", Password: "s3cret123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := env.db.Model(user).Update("disabled", true).Error; err != nil {
		t.Fatalf("disable: %v", err)
	}

	_, err = svc.Login(LoginRequest{Email: "alice@obe.local", Password: "s3cret123"})
	if !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("err = %v, want ErrPermissionDenied", err)
	}
}
