package handler

import (
	"github.com/gin-gonic/gin"
)

// Context keys set by the auth and membership middleware.
const (
	CtxUserID    = "user_id"
	CtxWeddingID = "wedding_id"
	CtxRole      = "role"
)

// weddingID returns the tenant id resolved by the membership middleware.
func weddingID(c *gin.Context) int {
	return c.GetInt(CtxWeddingID)
}

// userID returns the authenticated user id.
func userID(c *gin.Context) int {
	return c.GetInt(CtxUserID)
}
