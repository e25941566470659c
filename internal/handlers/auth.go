package handlers

import (
	"net/http"

	"realestate-backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var creds LoginRequest
	if err := bindJSON(c, &creds); err != nil {
		fail(c, err)
		return
	}
	token, err := h.authService.Login(c.Request.Context(), creds.Username, creds.Password)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, token)
}
