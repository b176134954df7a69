package errno

import (
	"testing"

	"github.com/pkg/errors"
)

// TestConvertErr 测试错误转换
func TestConvertErr(t *testing.T) {
	t.Run("NilError", func(t *testing.T) {
		e := ConvertErr(nil)
		if e.ErrCode != SuccessCode {
			t.Errorf("expected success code, got %d", e.ErrCode)
		}
	})

	t.Run("ErrNoPassthrough", func(t *testing.T) {
		e := ConvertErr(UserNotExistErr)
		if e.ErrCode != UserNotExistCode {
			t.Errorf("expected %d, got %d", UserNotExistCode, e.ErrCode)
		}
	})

	t.Run("WrappedErrNo", func(t *testing.T) {
		// NotFound语义包一层后也要原样透传
		wrapped := errors.Wrap(VideoNotExistErr, "query detail")
		e := ConvertErr(wrapped)
		if e.ErrCode != VideoNotExistCode {
			t.Errorf("expected %d, got %d", VideoNotExistCode, e.ErrCode)
		}
	})

	t.Run("PlainError", func(t *testing.T) {
		e := ConvertErr(errors.New("boom"))
		if e.ErrCode != ServiceErrCode {
			t.Errorf("expected service error code, got %d", e.ErrCode)
		}
		if e.ErrMsg != "boom" {
			t.Errorf("expected original message, got %s", e.ErrMsg)
		}
	})
}

// TestWithMessage 测试错误信息覆盖
func TestWithMessage(t *testing.T) {
	e := NotFoundErr.WithMessage("channel not found")
	if e.ErrCode != NotFoundErrCode {
		t.Errorf("code should not change, got %d", e.ErrCode)
	}
	if e.ErrMsg != "channel not found" {
		t.Errorf("unexpected message: %s", e.ErrMsg)
	}
	// 原值不受影响
	if NotFoundErr.ErrMsg != "resource not found" {
		t.Errorf("base errno mutated: %s", NotFoundErr.ErrMsg)
	}
}
