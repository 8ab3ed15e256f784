package handler

import (
	"time"

	"mobile-wallet-core/internal/adapter/http/dto"
	"mobile-wallet-core/internal/adapter/http/middleware"
	"mobile-wallet-core/internal/core/ports"
	"mobile-wallet-core/pkg/apperror"
	"mobile-wallet-core/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PasskeyHandler handles the biometric login and step-up endpoints.
type PasskeyHandler struct {
	bioSvc ports.BiometricAuthService
}

// NewPasskeyHandler creates a new PasskeyHandler.
func NewPasskeyHandler(bioSvc ports.BiometricAuthService) *PasskeyHandler {
	return &PasskeyHandler{bioSvc: bioSvc}
}

// Challenge handles POST /v1/auth/challenge. Unauthenticated; the user
// is identified by email XOR userId.
func (h *PasskeyHandler) Challenge(c *gin.Context) {
	var req dto.ChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	challengeReq := ports.LoginChallengeRequest{
		Email:    req.Email,
		ClientIP: c.ClientIP(),
	}
	if req.UserID != nil {
		id, err := uuid.Parse(*req.UserID)
		if err != nil {
			response.Error(c, apperror.Validation("userId must be a valid UUID"))
			return
		}
		challengeReq.UserID = &id
	}

	challenge, err := h.bioSvc.BeginLogin(c.Request.Context(), challengeReq)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ChallengeResponse{
		ChallengeID:                challenge.ChallengeID,
		PublicKeyCredentialOptions: challenge.Options,
	})
}

// Verify handles POST /v1/auth/verify. Unauthenticated; a valid
// assertion against the challenge establishes the session.
func (h *PasskeyHandler) Verify(c *gin.Context) {
	var req dto.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.bioSvc.FinishLogin(c.Request.Context(), req.ChallengeID, req.Credential)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.AuthResponse{
		User:   toUserResponse(result.User),
		Tokens: toTokenPairResponse(result.Tokens),
	})
}

// StepUpChallenge handles POST /v1/auth/step-up/challenge.
func (h *PasskeyHandler) StepUpChallenge(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.Unauthorized(""))
		return
	}

	var req dto.StepUpChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	challenge, err := h.bioSvc.BeginStepUp(c.Request.Context(), userID, req.Purpose, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ChallengeResponse{
		ChallengeID:                challenge.ChallengeID,
		PublicKeyCredentialOptions: challenge.Options,
	})
}

// StepUpVerify handles POST /v1/auth/step-up/verify. The challenge must
// belong to the session user.
func (h *PasskeyHandler) StepUpVerify(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.Unauthorized(""))
		return
	}

	var req dto.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	token, expiresAt, err := h.bioSvc.FinishStepUp(c.Request.Context(), userID, req.ChallengeID, req.Credential)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.StepUpTokenResponse{
		StepUpToken: token,
		ExpiresAt:   expiresAt.UTC().Format(time.RFC3339),
	})
}
