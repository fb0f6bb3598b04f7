package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"service-marketplace/internal/handler/httperr"
	"service-marketplace/internal/handler/middleware"
	"service-marketplace/internal/pkg/errs"
	"service-marketplace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errUnauthenticated = errors.New("no authenticated user in context")

// respondError is the single place business errors become HTTP statuses.
// Uncategorized errors are logged with their stack and hidden behind a 500.
func respondError(c *gin.Context, err error) {
	if status, msg, ok := httperr.Classify(err); ok {
		httperr.AbortWithError(c, status, err, msg, nil)
		return
	}

	slog.Error("unhandled error",
		"path", c.FullPath(),
		"request_id", middleware.GetRequestID(c),
		"error", err.Error(),
		"stack", errs.ExtractStackLines(err, 12))
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func badRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}

func actorID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
	}
	return id, ok
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		badRequest(c, err, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// pageParams reads ?limit= and ?after= the way every list endpoint does.
func pageParams(c *gin.Context) (*queries.Cursor, int) {
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	return cursor, limit
}

func pageResponse(key string, items any, next *queries.Cursor) gin.H {
	resp := gin.H{key: items}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	return resp
}

// actOnTarget runs op for the authenticated actor against the :id path
// parameter and answers 204 on success.
func actOnTarget(c *gin.Context, op func(ctx context.Context, actor, target uuid.UUID) error) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	target, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := op(c.Request.Context(), actor, target); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
