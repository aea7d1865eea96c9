package handlers

import (
	"net/http"
	"time"

	adminRepo "gatherly/database/repository/admin"
	"gatherly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const adminTokenTTL = 12 * time.Hour

// AuthHandler handles admin sign-in.
type AuthHandler struct {
	AdminRepo adminRepo.AdminRepository
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(repo adminRepo.AdminRepository) *AuthHandler {
	return &AuthHandler{AdminRepo: repo}
}

// LoginHandler checks the credentials and returns a bearer token.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	admin, err := h.AdminRepo.GetByEmail(c, input.Email)
	if err != nil || admin == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(admin.ID, admin.Email, adminTokenTTL)
	if err != nil {
		zap.L().Error("Failed to mint admin token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign in"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"admin": gin.H{
			"id":    admin.ID,
			"name":  admin.Name,
			"email": admin.Email,
			"role":  admin.Role,
		},
	})
}
