package handler

import (
	"net/http"
	"time"

	"mobile-wallet-core/internal/adapter/http/dto"
	"mobile-wallet-core/internal/core/domain"
	"mobile-wallet-core/internal/core/ports"
	"mobile-wallet-core/pkg/apperror"
	"mobile-wallet-core/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles the password authentication endpoints.
type AuthHandler struct {
	passwordSvc ports.PasswordAuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(passwordSvc ports.PasswordAuthService) *AuthHandler {
	return &AuthHandler{passwordSvc: passwordSvc}
}

// Register handles POST /v1/auth/password/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.passwordSvc.Register(c.Request.Context(), ports.RegisterRequest{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "/v1/users/"+result.User.ID.String(), dto.AuthResponse{
		User:   toUserResponse(result.User),
		Tokens: toTokenPairResponse(result.Tokens),
	})
}

// Login handles POST /v1/auth/password/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.passwordSvc.Login(c.Request.Context(), req.Email, req.Password, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.AuthResponse{
		User:   toUserResponse(result.User),
		Tokens: toTokenPairResponse(result.Tokens),
	})
}

// Refresh handles POST /v1/auth/password/refresh.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	pair, err := h.passwordSvc.Refresh(c.Request.Context(), req.RefreshToken, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toTokenPairResponse(*pair))
}

// Logout handles POST /v1/auth/password/logout. Always succeeds.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	_ = h.passwordSvc.Logout(c.Request.Context(), req.RefreshToken)
	response.OK(c, dto.SuccessResponse{Success: true})
}

// RequestVerification handles POST /v1/auth/password/verify/request.
// Succeeds silently whether or not the email exists.
func (h *AuthHandler) RequestVerification(c *gin.Context) {
	var req dto.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.passwordSvc.RequestVerification(c.Request.Context(), req.Email); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.SuccessResponse{Success: true})
}

// ConfirmVerification handles POST /v1/auth/password/verify/confirm.
func (h *AuthHandler) ConfirmVerification(c *gin.Context) {
	var req dto.ConfirmTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.passwordSvc.ConfirmVerification(c.Request.Context(), req.Token); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.SuccessResponse{Success: true})
}

// RequestPasswordReset handles POST /v1/auth/password/reset/request.
// Succeeds silently whether or not the email exists.
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req dto.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.passwordSvc.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.SuccessResponse{Success: true})
}

// ConfirmPasswordReset handles POST /v1/auth/password/reset/confirm.
func (h *AuthHandler) ConfirmPasswordReset(c *gin.Context) {
	var req dto.ConfirmResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.passwordSvc.ConfirmPasswordReset(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.SuccessResponse{Success: true})
}

// HealthCheck handles GET /health, verifying all dependencies.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "ok"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}

func toUserResponse(u *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:            u.ID.String(),
		Email:         u.Email,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toTokenPairResponse(p ports.TokenPair) dto.TokenPairResponse {
	return dto.TokenPairResponse{
		AccessToken:      p.AccessToken,
		AccessExpiresAt:  p.AccessExpiresAt.UTC().Format(time.RFC3339),
		RefreshToken:     p.RefreshToken,
		RefreshExpiresAt: p.RefreshExpiresAt.UTC().Format(time.RFC3339),
	}
}
