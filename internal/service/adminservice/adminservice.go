package adminservice

import (
	"context"
	"errors"
	"math"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"watchearn/internal/domain"
)

//go:generate mockgen -source=adminservice.go -destination=adminservice_mock.go -package=adminservice

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdateStatus(ctx context.Context, id int, status string) (*domain.User, error)
	Stats(ctx context.Context) (*domain.UserStats, error)
}

type TaskStatsRepo interface {
	Stats(ctx context.Context) (*domain.TaskStats, error)
}

type CompletionRepo interface {
	FindByID(ctx context.Context, id int) (*domain.TaskCompletion, error)
	FlagFraud(ctx context.Context, id int) (bool, error)
	Stats(ctx context.Context) (*domain.CompletionStats, error)
}

type WithdrawalStatsRepo interface {
	Stats(ctx context.Context) (*domain.WithdrawalStats, error)
}

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrAdminAccount       = errors.New("admin accounts cannot be suspended")
	ErrInvalidUserStatus  = errors.New("status must be active or suspended")
	ErrCompletionNotFound = errors.New("completion not found")
	ErrNotCompleted       = errors.New("only completed records can be flagged as fraud")
)

type Service struct {
	userRepo       UserRepo
	taskRepo       TaskStatsRepo
	completionRepo CompletionRepo
	withdrawalRepo WithdrawalStatsRepo
}

func New(userRepo UserRepo, taskRepo TaskStatsRepo, completionRepo CompletionRepo, withdrawalRepo WithdrawalStatsRepo) *Service {
	return &Service{
		userRepo:       userRepo,
		taskRepo:       taskRepo,
		completionRepo: completionRepo,
		withdrawalRepo: withdrawalRepo,
	}
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list users", zap.Error(err))
		return nil, err
	}
	return users, nil
}

// SetUserStatus suspends or activates an account. Admin accounts are never
// touchable through this operation.
func (s *Service) SetUserStatus(ctx context.Context, id int, status string) (*domain.User, error) {
	if status != domain.UserStatusActive && status != domain.UserStatusSuspended {
		return nil, ErrInvalidUserStatus
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.Role == domain.RoleAdmin {
		return nil, ErrAdminAccount
	}

	updated, err := s.userRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		zap.L().Error("can't update user status", zap.Error(err))
		return nil, err
	}
	if updated == nil {
		// the role flipped to admin between the check and the update
		return nil, ErrAdminAccount
	}

	zap.L().Info("user status updated", zap.Int("user_id", id), zap.String("status", status))
	return updated, nil
}

// FlagFraud marks a completed claim as fraudulent. The trigger is always an
// external/administrative judgement; no detection runs here.
func (s *Service) FlagFraud(ctx context.Context, completionID int) error {
	completion, err := s.completionRepo.FindByID(ctx, completionID)
	if err != nil {
		return err
	}
	if completion == nil {
		return ErrCompletionNotFound
	}

	flagged, err := s.completionRepo.FlagFraud(ctx, completionID)
	if err != nil {
		zap.L().Error("can't flag fraud", zap.Error(err))
		return err
	}
	if !flagged {
		return ErrNotCompleted
	}

	zap.L().Info("completion flagged as fraud", zap.Int("completion_id", completionID))
	return nil
}

// AnalyticsReport is the aggregate snapshot shown on the admin dashboard.
type AnalyticsReport struct {
	Users       domain.UserStats
	Tasks       domain.TaskStats
	Completions domain.CompletionStats
	Withdrawals domain.WithdrawalStats

	// integer percentages over all attempts
	CompletionRate int
	DropOffRate    int
}

// Analytics gathers the four aggregates concurrently and derives the rates.
func (s *Service) Analytics(ctx context.Context) (*AnalyticsReport, error) {
	var report AnalyticsReport

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := s.userRepo.Stats(gctx)
		if err != nil {
			return err
		}
		report.Users = *stats
		return nil
	})
	g.Go(func() error {
		stats, err := s.taskRepo.Stats(gctx)
		if err != nil {
			return err
		}
		report.Tasks = *stats
		return nil
	})
	g.Go(func() error {
		stats, err := s.completionRepo.Stats(gctx)
		if err != nil {
			return err
		}
		report.Completions = *stats
		return nil
	})
	g.Go(func() error {
		stats, err := s.withdrawalRepo.Stats(gctx)
		if err != nil {
			return err
		}
		report.Withdrawals = *stats
		return nil
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to collect analytics", zap.Error(err))
		return nil, err
	}

	if report.Completions.Total > 0 {
		total := float64(report.Completions.Total)
		report.CompletionRate = int(math.Round(float64(report.Completions.Completed) / total * 100))
		report.DropOffRate = int(math.Round(float64(report.Completions.Failed+report.Completions.Pending) / total * 100))
	}
	return &report, nil
}
