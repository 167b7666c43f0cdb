package userControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Suggarr/OnlineStore-sub000/models"
	"github.com/Suggarr/OnlineStore-sub000/services"
)

type UpdateUserInput struct {
	Username string `json:"username" binding:"omitempty,min=3,max=64"`
	Email    string `json:"email" binding:"omitempty,email"`
}

type ChangePasswordInput struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=72"`
}

type ChangeRoleInput struct {
	Role string `json:"role" binding:"required"`
}

// selfOrAdmin reports whether the caller is the target user or holds at
// least the admin role.
func selfOrAdmin(c *gin.Context, targetID string) bool {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return false
	}
	if userIDVal.(string) == targetID {
		return true
	}
	roleVal, _ := c.Get("role")
	role, _ := roleVal.(models.Role)
	return role.AtLeast(models.RoleAdmin)
}

// GET /api/users (admin only, enforced in routing)
func GetUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := services.ListUsers(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// GET /api/users/:id
func GetUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		targetID := c.Param("id")
		if !selfOrAdmin(c, targetID) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}

		user, err := services.GetUser(db, targetID)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// PUT /api/users/:id
func UpdateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		targetID := c.Param("id")
		if !selfOrAdmin(c, targetID) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}

		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, err := services.UpdateUser(db, targetID, input.Username, input.Email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			case errors.Is(err, services.ErrConflict):
				c.JSON(http.StatusConflict, gin.H{"error": "Username or email already taken"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			}
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// PATCH /api/users/:id/password (self only; the old password must match)
func ChangePassword(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		targetID := c.Param("id")
		userIDVal, exists := c.Get("user_id")
		if !exists || userIDVal.(string) != targetID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}

		var input ChangePasswordInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		err := services.ChangePassword(db, targetID, input.OldPassword, input.NewPassword)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrWrongPassword):
				c.JSON(http.StatusConflict, gin.H{"error": "Old password does not match"})
			case errors.Is(err, services.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Password changed"})
	}
}

// PUT /api/users/:id/role (admin only, behind the superadmin guard)
func ChangeRole(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		targetID := c.Param("id")

		var input ChangeRoleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, err := services.ChangeRole(db, targetID, models.Role(input.Role))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidRole):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Role must be user or admin"})
			case errors.Is(err, services.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change role"})
			}
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// DELETE /api/users/:id (self or admin, behind the superadmin guard)
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		targetID := c.Param("id")
		if !selfOrAdmin(c, targetID) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}

		if err := services.DeleteUser(db, targetID); err != nil {
			if errors.Is(err, services.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
