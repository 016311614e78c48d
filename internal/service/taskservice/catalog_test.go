package taskservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"watchearn/internal/domain"
)

func TestCreateTask(t *testing.T) {
	service, taskRepo, _, _, _ := NewMock(t)

	reward := decimal.RequireFromString("2.50")

	tests := []struct {
		name          string
		task          *domain.Task
		prepareMock   func()
		check         func(t *testing.T, created *domain.Task)
		expectedError error
	}{
		{
			name: "Defaults applied before insert",
			task: &domain.Task{Title: "  Watch review  ", ChannelName: "TechChannel", RewardAmount: reward},
			prepareMock: func() {
				taskRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, task *domain.Task) (*domain.Task, error) {
						task.ID = 7
						return task, nil
					})
			},
			check: func(t *testing.T, created *domain.Task) {
				assert.Equal(t, "Watch review", created.Title)
				assert.Equal(t, DefaultMaxUsers, created.MaxUsers)
				assert.Equal(t, []string{}, created.RequiredActions)
			},
		},
		{
			name:          "Empty title rejected",
			task:          &domain.Task{Title: "   ", ChannelName: "TechChannel", RewardAmount: reward},
			prepareMock:   func() {},
			expectedError: ErrValidation,
		},
		{
			name:          "Non-positive reward rejected",
			task:          &domain.Task{Title: "Watch review", ChannelName: "TechChannel", RewardAmount: decimal.Zero},
			prepareMock:   func() {},
			expectedError: ErrValidation,
		},
		{
			name: "Unknown action rejected",
			task: &domain.Task{
				Title: "Watch review", ChannelName: "TechChannel", RewardAmount: reward,
				RequiredActions: []string{"watch", "share"},
			},
			prepareMock:   func() {},
			expectedError: ErrValidation,
		},
		{
			name: "Repo error is surfaced",
			task: &domain.Task{Title: "Watch review", ChannelName: "TechChannel", RewardAmount: reward},
			prepareMock: func() {
				taskRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			created, err := service.CreateTask(context.Background(), tt.task)

			if tt.expectedError != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectedError, ErrValidation) {
					assert.ErrorIs(t, err, ErrValidation)
				}
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				tt.check(t, created)
			}
		})
	}
}

func TestUpdateTask(t *testing.T) {
	service, taskRepo, _, _, _ := NewMock(t)

	reward := decimal.RequireFromString("2.50")
	stored := func() *domain.Task {
		return &domain.Task{
			ID: 1, Title: "Watch review", ChannelName: "TechChannel",
			RequiredActions: []string{"watch"}, RewardAmount: reward,
			MaxUsers: 500, CompletedCount: 5, IsEnabled: true,
		}
	}

	newTitle := "Watch full review"
	disabled := false

	tests := []struct {
		name          string
		update        TaskUpdate
		prepareMock   func()
		check         func(t *testing.T, updated *domain.Task)
		expectedError error
	}{
		{
			name:   "Partial update keeps omitted fields",
			update: TaskUpdate{Title: &newTitle, IsEnabled: &disabled},
			prepareMock: func() {
				taskRepo.EXPECT().FindByID(gomock.Any(), 1).Return(stored(), nil)
				taskRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, task *domain.Task) (*domain.Task, error) {
						return task, nil
					})
			},
			check: func(t *testing.T, updated *domain.Task) {
				assert.Equal(t, "Watch full review", updated.Title)
				assert.False(t, updated.IsEnabled)
				assert.Equal(t, "TechChannel", updated.ChannelName)
				assert.Equal(t, 500, updated.MaxUsers)
			},
		},
		{
			name:   "Unknown task",
			update: TaskUpdate{Title: &newTitle},
			prepareMock: func() {
				taskRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrTaskNotFound,
		},
		{
			name: "Merged result is validated",
			update: TaskUpdate{RewardAmount: func() *decimal.Decimal {
				d := decimal.NewFromInt(-1)
				return &d
			}()},
			prepareMock: func() {
				taskRepo.EXPECT().FindByID(gomock.Any(), 1).Return(stored(), nil)
			},
			expectedError: ErrValidation,
		},
		{
			name:   "Task deleted between read and write",
			update: TaskUpdate{Title: &newTitle},
			prepareMock: func() {
				taskRepo.EXPECT().FindByID(gomock.Any(), 1).Return(stored(), nil)
				taskRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			expectedError: ErrTaskNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			updated, err := service.UpdateTask(context.Background(), 1, tt.update)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, updated)
			} else {
				assert.NoError(t, err)
				tt.check(t, updated)
			}
		})
	}
}

func TestDeleteTask(t *testing.T) {
	service, taskRepo, _, _, _ := NewMock(t)

	t.Run("Existing task removed", func(t *testing.T) {
		taskRepo.EXPECT().Delete(gomock.Any(), 1).Return(true, nil)
		assert.NoError(t, service.DeleteTask(context.Background(), 1))
	})

	t.Run("Unknown task", func(t *testing.T) {
		taskRepo.EXPECT().Delete(gomock.Any(), 99).Return(false, nil)
		assert.ErrorIs(t, service.DeleteTask(context.Background(), 99), ErrTaskNotFound)
	})

	t.Run("Repo error is surfaced", func(t *testing.T) {
		taskRepo.EXPECT().Delete(gomock.Any(), 1).Return(false, errors.New("database error"))
		assert.Error(t, service.DeleteTask(context.Background(), 1))
	})
}

func TestListAllTasks(t *testing.T) {
	service, taskRepo, _, _, _ := NewMock(t)

	t.Run("Returns the whole catalog", func(t *testing.T) {
		tasks := []domain.Task{{ID: 1}, {ID: 2, IsEnabled: true}}
		taskRepo.EXPECT().ListAll(gomock.Any()).Return(tasks, nil)

		result, err := service.ListAllTasks(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, tasks, result)
	})
}
