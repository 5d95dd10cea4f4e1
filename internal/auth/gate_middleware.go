package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"myyeargroup/backend/internal/models"
	"myyeargroup/backend/internal/store"
)

// ApprovedMiddleware gates application areas behind the account-approval
// decision. It must be used AFTER AuthMiddleware. The check itself lives on
// models.User.CanAccess; this is the only place the HTTP layer applies it.
func ApprovedMiddleware(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c, users)
		if user == nil {
			return
		}

		if !user.CanAccess() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Your account is pending approval"})
			return
		}

		c.Set("currentUser", user)
		c.Next()
	}
}

// AdminMiddleware creates a gin middleware to check for the superadmin role.
// It must be used AFTER the standard AuthMiddleware.
func AdminMiddleware(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c, users)
		if user == nil {
			return
		}

		if user.Role != models.RoleSuperadmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		c.Set("currentUser", user)
		c.Next()
	}
}

func currentUser(c *gin.Context, users store.UserStore) *models.User {
	userID, exists := c.Get("userID")
	if !exists {
		// This should not happen if AuthMiddleware is used before it
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return nil
	}

	user, err := users.ByID(c.Request.Context(), userID.(string))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Authenticated user not found"})
		return nil
	}
	return user
}
