//go:build unit

package api_test

import (
	"service-marketplace/internal/domain/user"
	"service-marketplace/internal/handler/middleware"
	"service-marketplace/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// withActorAs stands in for the auth middleware: requests carrying an
// Authorization header run as the given user.
func withActorAs(id uuid.UUID, role user.Role, h gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			middleware.SetPrincipal(c, usecase.Principal{UserID: id, Role: role})
		}
		h(c)
	}
}

func withActor(h gin.HandlerFunc) gin.HandlerFunc {
	return withActorAs(uuid.New(), user.RoleCustomer, h)
}
