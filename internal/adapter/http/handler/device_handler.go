package handler

import (
	"time"

	"mobile-wallet-core/internal/adapter/http/dto"
	"mobile-wallet-core/internal/adapter/http/middleware"
	"mobile-wallet-core/internal/core/domain"
	"mobile-wallet-core/internal/core/ports"
	"mobile-wallet-core/pkg/apperror"
	"mobile-wallet-core/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DeviceHandler handles device listing and revocation.
type DeviceHandler struct {
	credSvc ports.CredentialService
}

// NewDeviceHandler creates a new DeviceHandler.
func NewDeviceHandler(credSvc ports.CredentialService) *DeviceHandler {
	return &DeviceHandler{credSvc: credSvc}
}

// List handles GET /v1/devices.
func (h *DeviceHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.Unauthorized(""))
		return
	}

	devices, err := h.credSvc.ListDevices(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.DeviceResponse, 0, len(devices))
	for i := range devices {
		items = append(items, toDeviceResponse(&devices[i]))
	}
	response.OK(c, items)
}

// Revoke handles DELETE /v1/devices/:id.
func (h *DeviceHandler) Revoke(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.Unauthorized(""))
		return
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("device id must be a valid UUID"))
		return
	}

	if err := h.credSvc.RevokeDevice(c.Request.Context(), userID, deviceID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func toDeviceResponse(d *domain.Device) dto.DeviceResponse {
	return dto.DeviceResponse{
		ID:                d.ID.String(),
		CredentialID:      d.CredentialID,
		Label:             d.Label,
		Active:            d.Active,
		DeactivatedReason: d.DeactivatedReason,
		CreatedAt:         d.CreatedAt.UTC().Format(time.RFC3339),
	}
}
