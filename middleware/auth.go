package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Suggarr/OnlineStore-sub000/auth"
	"github.com/Suggarr/OnlineStore-sub000/models"
)

// ValidateToken reads the auth cookie, verifies the token and puts the
// caller's id and role on the context.
func ValidateToken(c *gin.Context) {
	tokenString, err := c.Cookie(auth.CookieName)
	if err != nil || tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication cookie is missing"})
		c.Abort()
		return
	}

	userID, role, err := auth.ParseToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}

	c.Set("user_id", userID)
	c.Set("role", role)

	c.Next()
}

// CallerIdentity pulls the authenticated id and role set by ValidateToken.
func CallerIdentity(c *gin.Context) (string, models.Role, bool) {
	idVal, exists := c.Get("user_id")
	if !exists {
		return "", "", false
	}
	userID, ok := idVal.(string)
	if !ok || userID == "" {
		return "", "", false
	}
	roleVal, _ := c.Get("role")
	role, _ := roleVal.(models.Role)
	return userID, role, role.Valid()
}

// RequireRole rejects callers below the given role rank.
func RequireRole(min models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, role, ok := CallerIdentity(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		if !role.AtLeast(min) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient privileges"})
			c.Abort()
			return
		}
		c.Next()
	}
}
