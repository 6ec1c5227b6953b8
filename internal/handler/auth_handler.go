package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mycontacts/internal/apperr"
	"mycontacts/internal/model"
	"mycontacts/internal/service"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperr.Wrap(apperr.KindValidation, "Invalid request body", err))
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": user.ID, "email": user.Email})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperr.Wrap(apperr.KindValidation, "Invalid request body", err))
		return
	}

	token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}

// Current acknowledges a validated token. The JWT middleware has already
// rejected anything unauthenticated by the time this runs.
func (h *AuthHandler) Current(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Current user information"})
}

// RegisterAuthRoutes registers user routes under /api
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	users := rg.Group("/users")
	{
		users.POST("/register", h.Register)
		users.POST("/login", h.Login)
		users.POST("/current", authMW, h.Current)
	}
}
