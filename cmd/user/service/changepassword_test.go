package service

import (
	"context"
	"errors"
	"testing"

	"VidTube.com/cmd/user/dal/db"
	"VidTube.com/pkg/errno"
)

// TestChangePassword 测试密码修改: 旧密码校验 + 新密码生效
func TestChangePassword(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	user, err := NewCreateUserService(ctx).CreateUser(ctx, &CreateUserParam{
		UserName: "bob",
		Email:    "bob@example.com",
		Password: "old-secret",
	})
	if err != nil {
		t.Fatalf("create user failed: %v", err)
	}

	svc := NewChangePasswordService(ctx)

	t.Run("WrongOldPasswordRejected", func(t *testing.T) {
		err := svc.ChangePassword(ctx, user.UserId, "guess", "new-secret")
		var e errno.ErrNo
		if !errors.As(err, &e) || e.ErrCode != errno.UnauthorizedCode {
			t.Errorf("expected unauthorized, got %v", err)
		}
	})

	t.Run("EmptyNewPasswordRejected", func(t *testing.T) {
		if err := svc.ChangePassword(ctx, user.UserId, "old-secret", ""); err == nil {
			t.Error("expected error for empty new password")
		}
	})

	t.Run("AnonymousRejected", func(t *testing.T) {
		err := svc.ChangePassword(ctx, 0, "old-secret", "new-secret")
		var e errno.ErrNo
		if !errors.As(err, &e) || e.ErrCode != errno.UnauthorizedCode {
			t.Errorf("expected unauthorized, got %v", err)
		}
	})

	t.Run("NewPasswordTakesEffect", func(t *testing.T) {
		if err := svc.ChangePassword(ctx, user.UserId, "old-secret", "new-secret"); err != nil {
			t.Fatalf("change password failed: %v", err)
		}
		if _, err := db.CheckUser(ctx, "bob", "new-secret"); err != nil {
			t.Errorf("login with new password failed: %v", err)
		}
		if _, err := db.CheckUser(ctx, "bob", "old-secret"); err == nil {
			t.Error("old password still accepted")
		}
	})

	t.Run("UnknownUser", func(t *testing.T) {
		err := svc.ChangePassword(ctx, 404, "old-secret", "new-secret")
		var e errno.ErrNo
		if !errors.As(err, &e) || e.ErrCode != errno.UserNotExistCode {
			t.Errorf("expected user not exist, got %v", err)
		}
	})
}
