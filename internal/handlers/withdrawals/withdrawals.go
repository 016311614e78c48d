package withdrawals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"watchearn/internal/domain"
	"watchearn/internal/dto"
	"watchearn/internal/service/withdrawalservice"
	"watchearn/pkg/auth"
	"watchearn/pkg/utils"
)

//go:generate mockgen -source=withdrawals.go -destination=withdrawals_mock.go -package=withdrawals

type Service interface {
	Request(ctx context.Context, userID int, amount decimal.Decimal, method, details string) (*domain.Withdrawal, error)
	GetForUser(ctx context.Context, userID int) ([]domain.Withdrawal, decimal.Decimal, error)
}

type WithdrawalHandler struct {
	withdrawalService Service
}

func New(withdrawalService Service) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalService: withdrawalService,
	}
}

func withdrawalToDTO(wd domain.Withdrawal) dto.WithdrawalDTO {
	return dto.WithdrawalDTO{
		ID:             wd.ID,
		Amount:         wd.Amount,
		Status:         wd.Status,
		PaymentMethod:  wd.PaymentMethod,
		PaymentDetails: wd.PaymentDetails,
		AdminNote:      wd.AdminNote,
		CreatedAt:      wd.CreatedAt,
		ProcessedAt:    wd.ProcessedAt,
	}
}

// GetWithdrawals godoc
//
//	@Summary		Get withdrawal history
//	@Description	Withdrawal requests of the authenticated user, newest first, with the current balance.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WithdrawalListResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/withdrawals [get]
func (h *WithdrawalHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	withdrawals, balance, err := h.withdrawalService.GetForUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawals")
		return
	}

	response := dto.WithdrawalListResponseDTO{
		Withdrawals: make([]dto.WithdrawalDTO, 0, len(withdrawals)),
		Balance:     balance,
	}
	for _, wd := range withdrawals {
		response.Withdrawals = append(response.Withdrawals, withdrawalToDTO(wd))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// RequestWithdrawal godoc
//
//	@Summary		Request a withdrawal
//	@Description	Debit the amount from the balance immediately and queue the request for administrator decision.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawalRequestDTO	true	"Withdrawal request payload"
//	@Success		201		{object}	dto.WithdrawalDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount or payment method"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		422		{object}	utils.Response	"Invalid card number"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/withdrawals [post]
func (h *WithdrawalHandler) RequestWithdrawal(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.WithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	withdrawal, err := h.withdrawalService.Request(r.Context(), userID, req.Amount, req.PaymentMethod, req.PaymentDetails)
	if err != nil {
		switch {
		case errors.Is(err, withdrawalservice.ErrInvalidAmount),
			errors.Is(err, withdrawalservice.ErrInvalidPaymentMethod):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, withdrawalservice.ErrInvalidCardNumber):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, withdrawalservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, withdrawalToDTO(*withdrawal))
}
