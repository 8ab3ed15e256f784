package handler

import (
	"strings"

	"mobile-wallet-core/internal/adapter/http/dto"
	"mobile-wallet-core/internal/adapter/http/middleware"
	"mobile-wallet-core/internal/core/ports"
	"mobile-wallet-core/pkg/apperror"
	"mobile-wallet-core/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderStepUpToken carries the step-up proof for high-value
// transfers. Takes precedence over the body field.
const HeaderStepUpToken = "X-Step-Up-Token"

// TransferHandler handles the internal transfer endpoints.
type TransferHandler struct {
	transferSvc ports.TransferService
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(transferSvc ports.TransferService) *TransferHandler {
	return &TransferHandler{transferSvc: transferSvc}
}

// Transfer handles POST /v1/transactions/transfer.
func (h *TransferHandler) Transfer(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.Unauthorized(""))
		return
	}

	var req dto.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	recipient, err := parseRecipient(req.Recipient)
	if err != nil {
		response.Error(c, err)
		return
	}

	stepUpToken := strings.TrimSpace(c.GetHeader(HeaderStepUpToken))
	if stepUpToken == "" && req.StepUpToken != nil {
		stepUpToken = strings.TrimSpace(*req.StepUpToken)
	}

	result, err := h.transferSvc.Transfer(c.Request.Context(), ports.TransferRequest{
		SenderUserID:    userID,
		Recipient:       recipient,
		AmountMinor:     req.AmountMinor,
		Currency:        req.Currency,
		Note:            req.Note,
		ClientReference: req.ClientReference,
		StepUpToken:     stepUpToken,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "/v1/transactions/"+result.Transaction.ID.String(),
		toTransactionResponse(result.Transaction, result.Role))
}

// Get handles GET /v1/transactions/:id. Only parties to the
// transaction can see it.
func (h *TransferHandler) Get(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.Unauthorized(""))
		return
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("transaction id must be a valid UUID"))
		return
	}

	result, err := h.transferSvc.GetTransactionForUser(c.Request.Context(), userID, transactionID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toTransactionResponse(result.Transaction, result.Role))
}

// ResolveRecipient handles POST /v1/transactions/recipients/resolve.
func (h *TransferHandler) ResolveRecipient(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.Unauthorized(""))
		return
	}

	var req dto.ResolveRecipientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	identifier, err := parseRecipient(req.Identifier)
	if err != nil {
		response.Error(c, err)
		return
	}

	info, err := h.transferSvc.ResolveRecipient(c.Request.Context(), userID, identifier)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.RecipientResponse{
		UserID:           info.UserID.String(),
		MaskedIdentifier: info.MaskedIdentifier,
		MaskedName:       info.MaskedName,
		WalletStatus:     string(info.WalletStatus),
	})
}

func parseRecipient(d dto.RecipientIdentifierDTO) (ports.RecipientIdentifier, error) {
	identifier := ports.RecipientIdentifier{Email: d.Email}
	if d.UserID != nil {
		id, err := uuid.Parse(*d.UserID)
		if err != nil {
			return ports.RecipientIdentifier{}, apperror.Validation("recipient userId must be a valid UUID")
		}
		identifier.UserID = &id
	}
	return identifier, nil
}
