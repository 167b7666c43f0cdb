package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Suggarr/OnlineStore-sub000/models"
)

// SuperAdminGuard protects the privilege hierarchy on role-change and
// account-delete routes. A superadmin may never change their own role,
// delete themselves, or touch another superadmin. Callers below superadmin
// pass through untouched; the ordinary role policy governs them.
//
// The target's role is always read from the database, never from the
// request, so a forged payload cannot change how the rules evaluate.
func SuperAdminGuard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, role, ok := CallerIdentity(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		if role != models.RoleSuperAdmin {
			c.Next()
			return
		}

		targetID := c.Param("id")
		isDelete := c.Request.Method == http.MethodDelete

		if targetID == callerID {
			if isDelete {
				c.JSON(http.StatusForbidden, gin.H{"error": "Cannot delete self"})
			} else {
				c.JSON(http.StatusForbidden, gin.H{"error": "Cannot change own role"})
			}
			c.Abort()
			return
		}

		var target models.User
		if err := db.First(&target, "id = ?", targetID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Unknown target: let the handler report 404.
				c.Next()
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve target user"})
			c.Abort()
			return
		}
		if target.Role == models.RoleSuperAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Cannot modify another SuperAdmin"})
			c.Abort()
			return
		}

		c.Next()
	}
}
