package taskservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"watchearn/internal/domain"
	"watchearn/internal/pg"
	completionrepo "watchearn/internal/repo/completion-repo"
)

func NewMock(t *testing.T) (*Service, *MockTaskRepo, *MockCompletionRepo, *MockBalanceRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	taskRepo := NewMockTaskRepo(ctrl)
	completionRepo := NewMockCompletionRepo(ctrl)
	balanceRepo := NewMockBalanceRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(taskRepo, completionRepo, balanceRepo, txManager, 75)
	defer ctrl.Finish()
	return service, taskRepo, completionRepo, balanceRepo, txManager
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		})
}

func TestListForUser(t *testing.T) {
	service, taskRepo, completionRepo, balanceRepo, _ := NewMock(t)

	reward := decimal.RequireFromString("2.50")
	balance := decimal.RequireFromString("10.00")
	tasks := []domain.Task{
		{ID: 1, Title: "Open task", MaxUsers: 500, CompletedCount: 3, IsEnabled: true, RewardAmount: reward},
		{ID: 2, Title: "Ongoing task", MaxUsers: 500, IsEnabled: true, RewardAmount: reward},
		{ID: 3, Title: "Done task", MaxUsers: 500, IsEnabled: true, RewardAmount: reward},
		{ID: 4, Title: "Full task", MaxUsers: 10, CompletedCount: 10, IsEnabled: true, RewardAmount: reward},
	}
	claims := []domain.TaskCompletion{
		{ID: 20, TaskID: 2, UserID: 1, Status: domain.CompletionStatusPending},
		{ID: 30, TaskID: 3, UserID: 1, Status: domain.CompletionStatusCompleted},
	}

	t.Run("Partitions catalog by claim state", func(t *testing.T) {
		taskRepo.EXPECT().ListEnabled(gomock.Any()).Return(tasks, nil)
		completionRepo.EXPECT().ListByUserID(gomock.Any(), 1).Return(claims, nil)
		balanceRepo.EXPECT().GetBalance(gomock.Any(), 1).Return(balance, nil)

		lists, err := service.ListForUser(context.Background(), 1)
		assert.NoError(t, err)
		assert.Len(t, lists.Available, 1)
		assert.Equal(t, 1, lists.Available[0].Task.ID)
		assert.Len(t, lists.Ongoing, 1)
		assert.Equal(t, 2, lists.Ongoing[0].Task.ID)
		assert.Len(t, lists.Completed, 1)
		assert.Equal(t, 3, lists.Completed[0].Task.ID)
		assert.True(t, lists.Balance.Equal(balance))
	})

	t.Run("Full unclaimed task is hidden", func(t *testing.T) {
		taskRepo.EXPECT().ListEnabled(gomock.Any()).Return(tasks, nil)
		completionRepo.EXPECT().ListByUserID(gomock.Any(), 1).Return(claims, nil)
		balanceRepo.EXPECT().GetBalance(gomock.Any(), 1).Return(balance, nil)

		lists, err := service.ListForUser(context.Background(), 1)
		assert.NoError(t, err)
		for _, tw := range lists.Available {
			assert.NotEqual(t, 4, tw.Task.ID)
		}
	})

	t.Run("Repo error is surfaced", func(t *testing.T) {
		taskRepo.EXPECT().ListEnabled(gomock.Any()).Return(nil, errors.New("database error"))

		lists, err := service.ListForUser(context.Background(), 1)
		assert.Error(t, err)
		assert.Nil(t, lists)
	})
}

func TestStart(t *testing.T) {
	service, taskRepo, completionRepo, _, _ := NewMock(t)

	openTask := &domain.Task{ID: 10, MaxUsers: 500, CompletedCount: 3, IsEnabled: true}
	claim := &domain.TaskCompletion{ID: 1, TaskID: 10, UserID: 2, Status: domain.CompletionStatusPending}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedClaim *domain.TaskCompletion
		expectedError error
	}{
		{
			name: "Claim created for open task",
			prepareMock: func() {
				taskRepo.EXPECT().FindByID(gomock.Any(), 10).Return(openTask, nil)
				completionRepo.EXPECT().CreateClaim(gomock.Any(), 10, 2).Return(claim, nil)
			},
			expectedClaim: claim,
		},
		{
			name: "Unknown task",
			prepareMock: func() {
				taskRepo.EXPECT().FindByID(gomock.Any(), 10).Return(nil, nil)
			},
			expectedError: ErrTaskNotFound,
		},
		{
			name: "Disabled task",
			prepareMock: func() {
				taskRepo.EXPECT().FindByID(gomock.Any(), 10).
					Return(&domain.Task{ID: 10, MaxUsers: 500, IsEnabled: false}, nil)
			},
			expectedError: ErrTaskNotFound,
		},
		{
			name: "Task at capacity",
			prepareMock: func() {
				taskRepo.EXPECT().FindByID(gomock.Any(), 10).
					Return(&domain.Task{ID: 10, MaxUsers: 10, CompletedCount: 10, IsEnabled: true}, nil)
			},
			expectedError: ErrTaskLimitReached,
		},
		{
			name: "Duplicate claim",
			prepareMock: func() {
				taskRepo.EXPECT().FindByID(gomock.Any(), 10).Return(openTask, nil)
				completionRepo.EXPECT().CreateClaim(gomock.Any(), 10, 2).Return(nil, completionrepo.ErrDuplicateClaim)
			},
			expectedError: ErrAlreadyStarted,
		},
		{
			name: "Task filled between check and insert",
			prepareMock: func() {
				taskRepo.EXPECT().FindByID(gomock.Any(), 10).Return(openTask, nil)
				completionRepo.EXPECT().CreateClaim(gomock.Any(), 10, 2).Return(nil, nil)
			},
			expectedError: ErrTaskLimitReached,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			result, err := service.Start(context.Background(), 2, 10)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedClaim, result)
			}
		})
	}
}

func TestComplete(t *testing.T) {
	service, taskRepo, completionRepo, balanceRepo, txManager := NewMock(t)

	reward := decimal.RequireFromString("2.50")
	task := &domain.Task{ID: 10, RewardAmount: reward, MaxUsers: 500, IsEnabled: true}
	pendingClaim := &domain.TaskCompletion{ID: 1, TaskID: 10, UserID: 2, Status: domain.CompletionStatusPending}

	tests := []struct {
		name           string
		reportedPct    int
		prepareMock    func()
		expectedResult *CompletionResult
		expectedError  error
	}{
		{
			name:        "Threshold met pays the full reward",
			reportedPct: 90,
			prepareMock: func() {
				completionRepo.EXPECT().FindByTaskAndUser(gomock.Any(), 10, 2).Return(pendingClaim, nil)
				taskRepo.EXPECT().FindByID(gomock.Any(), 10).Return(task, nil)
				passthroughTx(txManager)
				completionRepo.EXPECT().
					CompleteClaim(gomock.Any(), 1, domain.CompletionStatusCompleted, 90, reward, gomock.Any()).
					Return(true, nil)
				balanceRepo.EXPECT().Credit(gomock.Any(), 2, reward).Return(nil)
				taskRepo.EXPECT().IncrementCompleted(gomock.Any(), 10).Return(nil)
			},
			expectedResult: &CompletionResult{Passed: true, Earned: reward, CompletionPct: 90, MinRequired: 75},
		},
		{
			name:        "Exactly at threshold passes",
			reportedPct: 75,
			prepareMock: func() {
				completionRepo.EXPECT().FindByTaskAndUser(gomock.Any(), 10, 2).Return(pendingClaim, nil)
				taskRepo.EXPECT().FindByID(gomock.Any(), 10).Return(task, nil)
				passthroughTx(txManager)
				completionRepo.EXPECT().
					CompleteClaim(gomock.Any(), 1, domain.CompletionStatusCompleted, 75, reward, gomock.Any()).
					Return(true, nil)
				balanceRepo.EXPECT().Credit(gomock.Any(), 2, reward).Return(nil)
				taskRepo.EXPECT().IncrementCompleted(gomock.Any(), 10).Return(nil)
			},
			expectedResult: &CompletionResult{Passed: true, Earned: reward, CompletionPct: 75, MinRequired: 75},
		},
		{
			name:        "Below threshold earns nothing",
			reportedPct: 74,
			prepareMock: func() {
				completionRepo.EXPECT().FindByTaskAndUser(gomock.Any(), 10, 2).Return(pendingClaim, nil)
				taskRepo.EXPECT().FindByID(gomock.Any(), 10).Return(task, nil)
				passthroughTx(txManager)
				completionRepo.EXPECT().
					CompleteClaim(gomock.Any(), 1, domain.CompletionStatusFailed, 74, decimal.Zero, gomock.Any()).
					Return(true, nil)
			},
			expectedResult: &CompletionResult{Passed: false, Earned: decimal.Zero, CompletionPct: 74, MinRequired: 75},
		},
		{
			name:        "Percentage above 100 is clamped",
			reportedPct: 250,
			prepareMock: func() {
				completionRepo.EXPECT().FindByTaskAndUser(gomock.Any(), 10, 2).Return(pendingClaim, nil)
				taskRepo.EXPECT().FindByID(gomock.Any(), 10).Return(task, nil)
				passthroughTx(txManager)
				completionRepo.EXPECT().
					CompleteClaim(gomock.Any(), 1, domain.CompletionStatusCompleted, 100, reward, gomock.Any()).
					Return(true, nil)
				balanceRepo.EXPECT().Credit(gomock.Any(), 2, reward).Return(nil)
				taskRepo.EXPECT().IncrementCompleted(gomock.Any(), 10).Return(nil)
			},
			expectedResult: &CompletionResult{Passed: true, Earned: reward, CompletionPct: 100, MinRequired: 75},
		},
		{
			name:        "Negative percentage is clamped to zero",
			reportedPct: -5,
			prepareMock: func() {
				completionRepo.EXPECT().FindByTaskAndUser(gomock.Any(), 10, 2).Return(pendingClaim, nil)
				taskRepo.EXPECT().FindByID(gomock.Any(), 10).Return(task, nil)
				passthroughTx(txManager)
				completionRepo.EXPECT().
					CompleteClaim(gomock.Any(), 1, domain.CompletionStatusFailed, 0, decimal.Zero, gomock.Any()).
					Return(true, nil)
			},
			expectedResult: &CompletionResult{Passed: false, Earned: decimal.Zero, CompletionPct: 0, MinRequired: 75},
		},
		{
			name:        "No claim for the task",
			reportedPct: 90,
			prepareMock: func() {
				completionRepo.EXPECT().FindByTaskAndUser(gomock.Any(), 10, 2).Return(nil, nil)
			},
			expectedError: ErrTaskNotStarted,
		},
		{
			name:        "Claim already settled",
			reportedPct: 90,
			prepareMock: func() {
				completionRepo.EXPECT().FindByTaskAndUser(gomock.Any(), 10, 2).
					Return(&domain.TaskCompletion{ID: 1, Status: domain.CompletionStatusCompleted}, nil)
			},
			expectedError: ErrAlreadyCompleted,
		},
		{
			name:        "Raced settlement loses inside the transaction",
			reportedPct: 90,
			prepareMock: func() {
				completionRepo.EXPECT().FindByTaskAndUser(gomock.Any(), 10, 2).Return(pendingClaim, nil)
				taskRepo.EXPECT().FindByID(gomock.Any(), 10).Return(task, nil)
				passthroughTx(txManager)
				completionRepo.EXPECT().
					CompleteClaim(gomock.Any(), 1, domain.CompletionStatusCompleted, 90, reward, gomock.Any()).
					Return(false, nil)
			},
			expectedError: ErrAlreadyCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			result, err := service.Complete(context.Background(), 2, 10, tt.reportedPct)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedResult, result)
			}
		})
	}
}

func TestClampPct(t *testing.T) {
	assert.Equal(t, 0, clampPct(-10))
	assert.Equal(t, 0, clampPct(0))
	assert.Equal(t, 50, clampPct(50))
	assert.Equal(t, 100, clampPct(100))
	assert.Equal(t, 100, clampPct(300))
}
