package taskservice

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"watchearn/internal/domain"
	"watchearn/internal/pg"
	completionrepo "watchearn/internal/repo/completion-repo"
)

//go:generate mockgen -source=taskservice.go -destination=taskservice_mock.go -package=taskservice

type TaskRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Task, error)
	ListAll(ctx context.Context) ([]domain.Task, error)
	ListEnabled(ctx context.Context) ([]domain.Task, error)
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Delete(ctx context.Context, id int) (bool, error)
	IncrementCompleted(ctx context.Context, id int) error
}

type CompletionRepo interface {
	CreateClaim(ctx context.Context, taskID, userID int) (*domain.TaskCompletion, error)
	FindByTaskAndUser(ctx context.Context, taskID, userID int) (*domain.TaskCompletion, error)
	ListByUserID(ctx context.Context, userID int) ([]domain.TaskCompletion, error)
	CompleteClaim(ctx context.Context, id int, status string, pct int, earned decimal.Decimal, completedAt time.Time) (bool, error)
}

type BalanceRepo interface {
	GetBalance(ctx context.Context, userID int) (decimal.Decimal, error)
	Credit(ctx context.Context, userID int, amount decimal.Decimal) error
}

var (
	ErrTaskNotFound     = errors.New("task not found or disabled")
	ErrTaskLimitReached = errors.New("task limit reached")
	ErrAlreadyStarted   = errors.New("task already started")
	ErrTaskNotStarted   = errors.New("task not started")
	ErrAlreadyCompleted = errors.New("task already completed")
	ErrValidation       = errors.New("validation failed")
)

// DefaultMaxUsers is applied when an admin creates a task without a
// claimant limit.
const DefaultMaxUsers = 500

var knownActions = map[string]bool{
	domain.ActionWatch:     true,
	domain.ActionLike:      true,
	domain.ActionSubscribe: true,
	domain.ActionComment:   true,
}

type Service struct {
	taskRepo       TaskRepo
	completionRepo CompletionRepo
	balanceRepo    BalanceRepo
	txManager      pg.TXManager
	minCompletion  int
}

func New(taskRepo TaskRepo, completionRepo CompletionRepo, balanceRepo BalanceRepo, txManager pg.TXManager, minCompletion int) *Service {
	return &Service{
		taskRepo:       taskRepo,
		completionRepo: completionRepo,
		balanceRepo:    balanceRepo,
		txManager:      txManager,
		minCompletion:  minCompletion,
	}
}

// TaskWithClaim pairs a catalog task with the caller's completion record,
// nil when the task has not been claimed yet.
type TaskWithClaim struct {
	Task  domain.Task
	Claim *domain.TaskCompletion
}

type TaskLists struct {
	Available []TaskWithClaim
	Ongoing   []TaskWithClaim
	Completed []TaskWithClaim
	Balance   decimal.Decimal
}

// CompletionResult is what the reward engine reports back after a
// percentage is submitted.
type CompletionResult struct {
	Passed        bool
	Earned        decimal.Decimal
	CompletionPct int
	MinRequired   int
}

// ListForUser partitions the enabled catalog into available, ongoing and
// completed sets relative to the caller's claims.
func (s *Service) ListForUser(ctx context.Context, userID int) (*TaskLists, error) {
	tasks, err := s.taskRepo.ListEnabled(ctx)
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Error(err))
		return nil, err
	}
	claims, err := s.completionRepo.ListByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list user claims", zap.Error(err))
		return nil, err
	}
	balance, err := s.balanceRepo.GetBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}

	claimByTask := make(map[int]*domain.TaskCompletion, len(claims))
	for i := range claims {
		claimByTask[claims[i].TaskID] = &claims[i]
	}

	lists := &TaskLists{Balance: balance}
	for _, task := range tasks {
		claim, ok := claimByTask[task.ID]
		switch {
		case !ok:
			if task.CompletedCount < task.MaxUsers {
				lists.Available = append(lists.Available, TaskWithClaim{Task: task})
			}
		case claim.Status == domain.CompletionStatusPending:
			lists.Ongoing = append(lists.Ongoing, TaskWithClaim{Task: task, Claim: claim})
		default:
			lists.Completed = append(lists.Completed, TaskWithClaim{Task: task, Claim: claim})
		}
	}
	return lists, nil
}

// Start claims a task for the user. The capacity predicate is re-checked by
// the insert itself and uniqueness is enforced by the (task_id, user_id)
// constraint, so concurrent starts resolve without over-claiming.
func (s *Service) Start(ctx context.Context, userID, taskID int) (*domain.TaskCompletion, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil || !task.IsEnabled {
		return nil, ErrTaskNotFound
	}
	if task.CompletedCount >= task.MaxUsers {
		return nil, ErrTaskLimitReached
	}

	claim, err := s.completionRepo.CreateClaim(ctx, taskID, userID)
	if err != nil {
		if errors.Is(err, completionrepo.ErrDuplicateClaim) {
			zap.L().Info("task already started", zap.Int("task_id", taskID), zap.Int("user_id", userID))
			return nil, ErrAlreadyStarted
		}
		zap.L().Error("can't create claim", zap.Error(err))
		return nil, err
	}
	if claim == nil {
		// the task filled up or got disabled between the check and the insert
		return nil, ErrTaskLimitReached
	}
	return claim, nil
}

// Complete evaluates a self-reported percentage against the reward
// threshold. The record transition, the balance credit and the counter
// increment commit as one transaction.
func (s *Service) Complete(ctx context.Context, userID, taskID, reportedPct int) (*CompletionResult, error) {
	claim, err := s.completionRepo.FindByTaskAndUser(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}
	if claim == nil {
		return nil, ErrTaskNotStarted
	}
	if claim.Status != domain.CompletionStatusPending {
		return nil, ErrAlreadyCompleted
	}

	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	pct := clampPct(reportedPct)
	passed := pct >= s.minCompletion

	earned := decimal.Zero
	status := domain.CompletionStatusFailed
	if passed {
		earned = task.RewardAmount
		status = domain.CompletionStatusCompleted
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.completionRepo.CompleteClaim(ctx, claim.ID, status, pct, earned, time.Now())
		if err != nil {
			return err
		}
		if !ok {
			return ErrAlreadyCompleted
		}
		if !passed {
			return nil
		}
		if err := s.balanceRepo.Credit(ctx, userID, earned); err != nil {
			return err
		}
		return s.taskRepo.IncrementCompleted(ctx, taskID)
	})
	if err != nil {
		if !errors.Is(err, ErrAlreadyCompleted) {
			zap.L().Error("can't complete task", zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("task completion processed",
		zap.Int("task_id", taskID),
		zap.Int("user_id", userID),
		zap.Bool("passed", passed),
		zap.String("earned", earned.String()),
	)
	return &CompletionResult{
		Passed:        passed,
		Earned:        earned,
		CompletionPct: pct,
		MinRequired:   s.minCompletion,
	}, nil
}

func clampPct(pct int) int {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
