package handler

import (
	"mobile-wallet-core/internal/adapter/http/dto"
	"mobile-wallet-core/internal/adapter/http/middleware"
	"mobile-wallet-core/internal/core/ports"
	"mobile-wallet-core/pkg/apperror"
	"mobile-wallet-core/pkg/response"

	"github.com/gin-gonic/gin"
)

// EnrollHandler handles credential enrollment endpoints.
type EnrollHandler struct {
	enrollSvc ports.EnrollmentService
}

// NewEnrollHandler creates a new EnrollHandler.
func NewEnrollHandler(enrollSvc ports.EnrollmentService) *EnrollHandler {
	return &EnrollHandler{enrollSvc: enrollSvc}
}

// Challenge handles POST /v1/enroll/challenge. Requires a session.
func (h *EnrollHandler) Challenge(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.Unauthorized(""))
		return
	}

	var req dto.EnrollChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	challenge, err := h.enrollSvc.BeginEnrollment(c.Request.Context(), userID, req.DeviceName, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ChallengeResponse{
		ChallengeID:                challenge.ChallengeID,
		PublicKeyCredentialOptions: challenge.Options,
	})
}

// Verify handles POST /v1/enroll/verify. Unauthenticated at the HTTP
// layer; the enrolling user is bound into the challenge state.
func (h *EnrollHandler) Verify(c *gin.Context) {
	var req dto.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.enrollSvc.FinishEnrollment(c.Request.Context(), req.ChallengeID, req.Credential)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.EnrollResultResponse{
		CredentialID: result.CredentialID,
		DeviceID:     result.DeviceID.String(),
	})
}
