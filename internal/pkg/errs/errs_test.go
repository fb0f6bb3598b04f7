//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"service-marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	base := errors.New("card declined")

	tests := []struct {
		name   string
		err    error
		expect errs.Kind
	}{
		{name: "正常系: 直接の種別", err: errs.Conflict("slot taken"), expect: errs.KindConflict},
		{name: "正常系: Wrapを経由しても種別を保持", err: errs.Wrap(errs.NotFound("booking not found"), "load booking"), expect: errs.KindNotFound},
		{name: "正常系: 決済失敗は原因を保持", err: errs.PaymentFailed(base, "payment failed"), expect: errs.KindPaymentFailed},
		{name: "正常系: WrapKind", err: errs.WrapKind(base, errs.KindInvalidState, "cannot cancel"), expect: errs.KindInvalidState},
		{name: "異常系: 未分類", err: base, expect: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, errs.KindOf(tc.err))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	cause := errors.New("gateway timeout")
	err := errs.PaymentFailed(cause, "payment failed")

	var e *errs.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "payment failed", e.Message())
	assert.Equal(t, "payment failed: gateway timeout", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestMark(t *testing.T) {
	sentinel := errs.New("transaction failed after max retries")

	t.Run("正常系: 元のエラーと印の両方で判定できる", func(t *testing.T) {
		cause := errors.New("serialization failure")
		marked := errs.Mark(cause, sentinel)
		assert.True(t, errs.Is(marked, sentinel))
		assert.True(t, errs.Is(marked, cause))
	})

	t.Run("正常系: nilは印そのもの", func(t *testing.T) {
		assert.Equal(t, sentinel, errs.Mark(nil, sentinel))
	})
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "x"))
	assert.NoError(t, errs.Wrapf(nil, "x %d", 1))
	assert.NoError(t, errs.WrapKind(nil, errs.KindConflict, "x"))
}

func TestExtractStackLines(t *testing.T) {
	err := errs.Wrap(errs.New("root"), "outer")

	lines := errs.ExtractStackLines(err, 3)
	require.Len(t, lines, 3)
	for _, l := range lines {
		assert.NotEmpty(t, l)
	}
	assert.Nil(t, errs.ExtractStackLines(nil, 3))
}
