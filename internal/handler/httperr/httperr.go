package httperr

import (
	"errors"
	"net/http"

	"service-marketplace/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	return resp
}

var kindStatus = map[errs.Kind]int{
	errs.KindValidation:    http.StatusBadRequest,
	errs.KindNotFound:      http.StatusNotFound,
	errs.KindForbidden:     http.StatusForbidden,
	errs.KindConflict:      http.StatusConflict,
	errs.KindInvalidState:  http.StatusUnprocessableEntity,
	errs.KindPaymentFailed: http.StatusPaymentRequired,
}

// Classify returns the status and client-facing message for a categorized
// business error. ok is false for anything that should surface as a 500.
func Classify(err error) (status int, msg string, ok bool) {
	var e *errs.Error
	if !errors.As(err, &e) {
		return 0, "", false
	}
	status, ok = kindStatus[e.Kind]
	if !ok {
		return 0, "", false
	}
	return status, e.Message(), true
}

// AbortWithError keeps the original error on the context for the logger.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, msg, detail)
	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
