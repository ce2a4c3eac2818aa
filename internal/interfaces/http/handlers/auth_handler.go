package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"reward-ops.backend/internal/domain/entities"
	"reward-ops.backend/internal/interfaces/http/response"
	"reward-ops.backend/internal/usecases"
)

// AuthHandler handles OTP login endpoints
type AuthHandler struct {
	login *usecases.LoginUsecase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(login *usecases.LoginUsecase) *AuthHandler {
	return &AuthHandler{login: login}
}

// RequestLogin starts an OTP login challenge for an approved account
// POST /api/v1/auth/login
func (h *AuthHandler) RequestLogin(c *gin.Context) {
	var input entities.LoginRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_INPUT", "message": err.Error()})
		return
	}

	resp, err := h.login.Request(c.Request.Context(), input.Phone)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// VerifyLogin checks the OTP code and issues a token pair
// POST /api/v1/auth/login/verify
func (h *AuthHandler) VerifyLogin(c *gin.Context) {
	var input entities.VerifyOtpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_INPUT", "message": err.Error()})
		return
	}

	resp, err := h.login.Verify(c.Request.Context(), input.Handle, input.Code)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}
