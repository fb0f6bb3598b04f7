//go:build unit

package httperr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"service-marketplace/internal/handler/httperr"
	"service-marketplace/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectStatus int
		expectMsg    string
		expectOK     bool
	}{
		{name: "正常系: 入力不正は400", err: errs.Validation("card number is invalid"), expectStatus: http.StatusBadRequest, expectMsg: "card number is invalid", expectOK: true},
		{name: "正常系: 未検出は404", err: errs.NotFound("booking not found"), expectStatus: http.StatusNotFound, expectMsg: "booking not found", expectOK: true},
		{name: "正常系: 権限なしは403", err: errs.Forbidden("not your booking"), expectStatus: http.StatusForbidden, expectMsg: "not your booking", expectOK: true},
		{name: "正常系: 競合は409", err: errs.Conflict("slot is not available"), expectStatus: http.StatusConflict, expectMsg: "slot is not available", expectOK: true},
		{name: "正常系: 状態不正は422", err: errs.InvalidState("booking cannot be cancelled"), expectStatus: http.StatusUnprocessableEntity, expectMsg: "booking cannot be cancelled", expectOK: true},
		{name: "正常系: 決済失敗は402で原因を隠す", err: errs.PaymentFailed(errors.New("declined by issuer"), "payment failed"), expectStatus: http.StatusPaymentRequired, expectMsg: "payment failed", expectOK: true},
		{name: "正常系: ラップされても分類できる", err: errs.Wrap(errs.Conflict("email is already registered"), "register"), expectStatus: http.StatusConflict, expectMsg: "email is already registered", expectOK: true},
		{name: "異常系: 未分類", err: errors.New("boom"), expectOK: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, msg, ok := httperr.Classify(tc.err)
			assert.Equal(t, tc.expectOK, ok)
			assert.Equal(t, tc.expectStatus, status)
			assert.Equal(t, tc.expectMsg, msg)
		})
	}
}

func TestAbortWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	cause := errors.New("db down")
	httperr.AbortWithError(c, http.StatusInternalServerError, cause, "Internal server error", nil)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.Len(t, c.Errors, 1)
	assert.ErrorIs(t, c.Errors[0].Err, cause)
	assert.Equal(t, gin.ErrorTypePublic, c.Errors[0].Type)
	assert.Equal(t, httperr.NewResponse(http.StatusInternalServerError, "Internal server error", nil), c.Errors[0].Meta)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, map[string]any{"error": map[string]any{"message": "Internal server error"}}, body)
}
