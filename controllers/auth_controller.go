package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stayhub-backend/services"
	"stayhub-backend/utils"
)

type AuthController struct {
	Svc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Svc: svc}
}

type registerPayload struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=200"`
}

type loginPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a BUYER account and signs the caller in.
func (ac *AuthController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	user, token, err := ac.Svc.Register(payload.Name, payload.Email, payload.Password)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.SetSessionCookie(c, token)
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"user": user})
}

func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	user, token, err := ac.Svc.Login(payload.Email, payload.Password)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.SetSessionCookie(c, token)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"user": user})
}

func (ac *AuthController) Logout(c *gin.Context) {
	utils.ClearSessionCookie(c)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"ok": true})
}

// Me answers with the current user or null; it never errors, an invalid or
// expired session simply reads as anonymous.
func (ac *AuthController) Me(c *gin.Context) {
	token, ok := utils.GetSessionCookie(c)
	if !ok {
		utils.JSONSuccess(c, http.StatusOK, gin.H{"user": nil})
		return
	}

	user, err := ac.Svc.Authenticate(token)
	if err != nil {
		utils.JSONSuccess(c, http.StatusOK, gin.H{"user": nil})
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"user": user})
}
