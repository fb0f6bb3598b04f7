package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"service-marketplace/internal/handler/httperr"
	"service-marketplace/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error a handler attached with c.Error when
// nothing has been written yet. A prepared httperr.Response in Meta is sent
// as is; other errors are classified by kind, and unknown ones become a 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if last := c.Errors.Last(); last != nil {
			writeError(c, last)
			return
		}
		// handlers that only set a status, e.g. 204
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Writer.WriteHeaderNow()
			return
		}
		internalError(c)
	}
}

func writeError(c *gin.Context, e *gin.Error) {
	if resp, ok := e.Meta.(httperr.Response); ok {
		c.JSON(resp.Status, resp)
		return
	}
	if status, msg, ok := httperr.Classify(e.Err); ok {
		c.JSON(status, httperr.NewResponse(status, msg, nil))
		return
	}
	slog.Error("unhandled error",
		"route", c.FullPath(),
		"request_id", GetRequestID(c),
		"error", e.Err.Error(),
		"stack", errs.ExtractStackLines(e.Err, 12))
	internalError(c)
}

func internalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, httperr.NewResponse(http.StatusInternalServerError, "Internal server error", nil))
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("recovered from panic",
					"panic", rec,
					"route", c.FullPath(),
					"request_id", GetRequestID(c),
					"stack", panicStack())
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httperr.NewResponse(http.StatusInternalServerError, "Internal server error", nil))
			}
		}()
		c.Next()
	}
}

// panicStack drops the runtime and recovery frames at the top of the trace.
func panicStack() []string {
	lines := strings.Split(strings.TrimSpace(string(debug.Stack())), "\n")
	const skip = 7
	if len(lines) > skip {
		lines = lines[skip:]
	}
	return lines[:min(len(lines), 16)]
}
