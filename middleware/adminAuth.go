package middleware

import (
	"context"
	"net/http"
	"strings"

	adminRepo "gatherly/database/repository/admin"
	"gatherly/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthAdminMiddleware validates the bearer token and loads the admin
// account it belongs to. Downstream handlers read the actor from "adminID".
func JWTAuthAdminMiddleware(admins adminRepo.AdminRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		adminID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || adminID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		admin, err := admins.GetByID(context.Background(), adminID)
		if err != nil || admin == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("adminID", admin.ID)
		c.Set("adminRole", admin.Role)
		c.Next()
	}
}
