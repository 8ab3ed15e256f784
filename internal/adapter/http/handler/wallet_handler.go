package handler

import (
	"strconv"
	"time"

	"mobile-wallet-core/internal/adapter/http/dto"
	"mobile-wallet-core/internal/adapter/http/middleware"
	"mobile-wallet-core/internal/core/domain"
	"mobile-wallet-core/internal/core/ports"
	"mobile-wallet-core/pkg/apperror"
	"mobile-wallet-core/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles the owner's wallet views.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// GetWallet handles GET /v1/wallets/me.
func (h *WalletHandler) GetWallet(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.Unauthorized(""))
		return
	}

	view, err := h.walletSvc.GetWalletView(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.WalletResponse{
		ID:                    view.Wallet.ID.String(),
		Currency:              view.Wallet.Currency,
		Status:                string(view.Wallet.Status),
		AvailableBalanceMinor: view.Wallet.AvailableBalanceMinor,
		Limits: dto.WalletLimitsResponse{
			MinAmountMinor:         view.Limits.MinAmountMinor,
			PerTransactionMaxMinor: view.Limits.PerTransactionMaxMinor,
			DailyMaxMinor:          view.Limits.DailyMaxMinor,
			DailyUsedMinor:         view.Limits.DailyUsedMinor,
		},
	})
}

// ListTransactions handles GET /v1/wallets/me/transactions with cursor
// pagination.
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.Unauthorized(""))
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.Error(c, apperror.Validation("limit must be a non-negative integer"))
			return
		}
		limit = parsed
	}

	page, err := h.walletSvc.ListTransactions(c.Request.Context(), userID, c.Query("cursor"), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.TransactionListItemResponse, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, dto.TransactionListItemResponse{
			TransactionResponse: toTransactionResponse(item.Transaction, item.Role),
			CounterpartyID:      item.CounterpartyID,
			CounterpartyName:    item.CounterpartyName,
		})
	}
	response.OKList(c, items, page.NextCursor, page.Limit)
}

func toTransactionResponse(txn *domain.WalletTransaction, role domain.TransferRole) dto.TransactionResponse {
	resp := dto.TransactionResponse{
		ID:              txn.ID.String(),
		Type:            string(txn.Type),
		Status:          string(txn.Status),
		Role:            string(role),
		AmountMinor:     txn.AmountMinor,
		FeeMinor:        txn.FeeMinor,
		Currency:        txn.Currency,
		Note:            txn.Note,
		ClientReference: txn.ClientReference,
		StepUpUsed:      txn.StepUpUsed,
		CreatedAt:       txn.CreatedAt.UTC().Format(time.RFC3339),
	}
	if txn.CompletedAt != nil {
		completed := txn.CompletedAt.UTC().Format(time.RFC3339)
		resp.CompletedAt = &completed
	}
	return resp
}
