package controllers

import (
	"errors"
	"net/http"

	"github.com/Asahu22/E-commerce/models"
	"github.com/Asahu22/E-commerce/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthController struct {
	auth services.AuthAPI
}

func NewAuthController(auth services.AuthAPI) *AuthController {
	return &AuthController{auth: auth}
}

// Login verifies the admin credentials and returns a session token.
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	token, err := ac.auth.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			zap.L().Warn("Admin login rejected", zap.String("username", req.Username))
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
			return
		}
		zap.L().Error("Failed to issue session token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error logging in"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token, "message": "Login successful"})
}
