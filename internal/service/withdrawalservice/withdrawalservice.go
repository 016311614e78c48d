package withdrawalservice

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"watchearn/internal/domain"
	"watchearn/internal/pg"
	"watchearn/pkg/validate"
)

//go:generate mockgen -source=withdrawalservice.go -destination=withdrawalservice_mock.go -package=withdrawalservice

type WithdrawalRepo interface {
	Create(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error)
	FindByID(ctx context.Context, id int) (*domain.Withdrawal, error)
	ListByUserID(ctx context.Context, userID int) ([]domain.Withdrawal, error)
	ListAll(ctx context.Context) ([]domain.Withdrawal, error)
	Decide(ctx context.Context, id int, status string, adminNote *string, processedAt time.Time) (*domain.Withdrawal, error)
}

type BalanceRepo interface {
	GetBalance(ctx context.Context, userID int) (decimal.Decimal, error)
	Credit(ctx context.Context, userID int, amount decimal.Decimal) error
	DebitIfSufficient(ctx context.Context, userID int, amount decimal.Decimal) (bool, error)
}

var (
	ErrInvalidAmount        = errors.New("invalid withdrawal amount")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrInvalidPaymentMethod = errors.New("unsupported payment method")
	ErrInvalidCardNumber    = errors.New("invalid card number")
	ErrWithdrawalNotFound   = errors.New("withdrawal not found")
	ErrAlreadyProcessed     = errors.New("withdrawal already processed")
	ErrInvalidDecision      = errors.New("decision must be approved or rejected")
)

var knownMethods = map[string]bool{
	domain.PaymentMethodPaypal: true,
	domain.PaymentMethodBank:   true,
	domain.PaymentMethodCard:   true,
	domain.PaymentMethodCrypto: true,
}

type Service struct {
	withdrawalRepo WithdrawalRepo
	balanceRepo    BalanceRepo
	txManager      pg.TXManager
}

func New(withdrawalRepo WithdrawalRepo, balanceRepo BalanceRepo, txManager pg.TXManager) *Service {
	return &Service{
		withdrawalRepo: withdrawalRepo,
		balanceRepo:    balanceRepo,
		txManager:      txManager,
	}
}

// Request debits the balance and records the pending request in one
// transaction. The debit is conditional on the balance covering the amount,
// so concurrent requests can never jointly overdraw.
func (s *Service) Request(ctx context.Context, userID int, amount decimal.Decimal, method, details string) (*domain.Withdrawal, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if !knownMethods[method] {
		return nil, ErrInvalidPaymentMethod
	}
	if method == domain.PaymentMethodCard && !validate.IsCardNumber(details) {
		return nil, ErrInvalidCardNumber
	}

	withdrawal := &domain.Withdrawal{
		UserID:         userID,
		Amount:         amount,
		PaymentMethod:  method,
		PaymentDetails: details,
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		debited, err := s.balanceRepo.DebitIfSufficient(ctx, userID, amount)
		if err != nil {
			return err
		}
		if !debited {
			return ErrInsufficientBalance
		}
		_, err = s.withdrawalRepo.Create(ctx, withdrawal)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientBalance) {
			zap.L().Error("can't create withdrawal", zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("withdrawal requested",
		zap.Int("user_id", userID),
		zap.String("amount", amount.String()),
		zap.String("method", method),
	)
	return withdrawal, nil
}

// GetForUser returns the user's withdrawal history together with the
// current balance.
func (s *Service) GetForUser(ctx context.Context, userID int) ([]domain.Withdrawal, decimal.Decimal, error) {
	withdrawals, err := s.withdrawalRepo.ListByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, decimal.Zero, err
	}
	balance, err := s.balanceRepo.GetBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, decimal.Zero, err
	}
	return withdrawals, balance, nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Withdrawal, error) {
	withdrawals, err := s.withdrawalRepo.ListAll(ctx)
	if err != nil {
		zap.L().Error("failed to fetch all withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}

// Decide settles a pending request. Rejection refunds the debited amount;
// the refund rides on the guarded status flip, so a re-decision can never
// refund twice. Terminal requests stay immutable.
func (s *Service) Decide(ctx context.Context, id int, decision string, adminNote *string) (*domain.Withdrawal, error) {
	if decision != domain.WithdrawalStatusApproved && decision != domain.WithdrawalStatusRejected {
		return nil, ErrInvalidDecision
	}

	var decided *domain.Withdrawal
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		wd, err := s.withdrawalRepo.Decide(ctx, id, decision, adminNote, time.Now())
		if err != nil {
			return err
		}
		if wd == nil {
			existing, err := s.withdrawalRepo.FindByID(ctx, id)
			if err != nil {
				return err
			}
			if existing == nil {
				return ErrWithdrawalNotFound
			}
			return ErrAlreadyProcessed
		}
		if decision == domain.WithdrawalStatusRejected {
			if err := s.balanceRepo.Credit(ctx, wd.UserID, wd.Amount); err != nil {
				return err
			}
		}
		decided = wd
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrWithdrawalNotFound) && !errors.Is(err, ErrAlreadyProcessed) {
			zap.L().Error("can't decide withdrawal", zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("withdrawal decided",
		zap.Int("withdrawal_id", id),
		zap.String("decision", decision),
	)
	return decided, nil
}
