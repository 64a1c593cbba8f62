package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/handler"
	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/repository"
	"github.com/connersimmonsmayne/weddingplanner-sub000/pkg/rbac"
)

// MembershipMiddleware resolves the :id wedding parameter and requires the
// authenticated user to be a member. The member's role is stored for the
// permission checks that follow. Non-members get 404 rather than 403 so
// wedding ids are not probeable.
func MembershipMiddleware(weddingRepo *repository.WeddingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		weddingID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid wedding id"})
			c.Abort()
			return
		}

		role, err := weddingRepo.MemberRole(c.Request.Context(), weddingID, c.GetInt(handler.CtxUserID))
		if err != nil {
			if repository.IsNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": "wedding not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check membership"})
			}
			c.Abort()
			return
		}

		c.Set(handler.CtxWeddingID, weddingID)
		c.Set(handler.CtxRole, role)

		c.Next()
	}
}

// RequirePermission gates a route on the membership role set by
// MembershipMiddleware.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(handler.CtxRole)
		if role == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			c.Abort()
			return
		}

		if err := rbac.CheckPermission(role, permission); err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		c.Next()
	}
}
