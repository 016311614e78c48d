package taskservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"watchearn/internal/domain"
)

// TaskUpdate carries a partial catalog edit. Nil fields keep their current
// value.
type TaskUpdate struct {
	Title           *string
	ChannelName     *string
	VideoThumbnail  *string
	VideoLength     *string
	RequiredActions *[]string
	RewardAmount    *decimal.Decimal
	MaxUsers        *int
	IsEnabled       *bool
}

func (s *Service) ListAllTasks(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.taskRepo.ListAll(ctx)
	if err != nil {
		zap.L().Error("failed to list all tasks", zap.Error(err))
		return nil, err
	}
	return tasks, nil
}

func (s *Service) CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	task.Title = strings.TrimSpace(task.Title)
	task.ChannelName = strings.TrimSpace(task.ChannelName)

	if task.MaxUsers == 0 {
		task.MaxUsers = DefaultMaxUsers
	}
	if task.RequiredActions == nil {
		task.RequiredActions = []string{}
	}
	if err := validateTask(task); err != nil {
		return nil, err
	}

	created, err := s.taskRepo.Create(ctx, task)
	if err != nil {
		zap.L().Error("can't create task", zap.Error(err))
		return nil, err
	}
	zap.L().Info("task created", zap.Int("task_id", created.ID), zap.String("title", created.Title))
	return created, nil
}

// UpdateTask merges the partial edit into the stored task and writes it
// back. completed_count is never part of the merge.
func (s *Service) UpdateTask(ctx context.Context, id int, update TaskUpdate) (*domain.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	if update.Title != nil {
		task.Title = strings.TrimSpace(*update.Title)
	}
	if update.ChannelName != nil {
		task.ChannelName = strings.TrimSpace(*update.ChannelName)
	}
	if update.VideoThumbnail != nil {
		task.VideoThumbnail = *update.VideoThumbnail
	}
	if update.VideoLength != nil {
		task.VideoLength = *update.VideoLength
	}
	if update.RequiredActions != nil {
		task.RequiredActions = *update.RequiredActions
	}
	if update.RewardAmount != nil {
		task.RewardAmount = *update.RewardAmount
	}
	if update.MaxUsers != nil {
		task.MaxUsers = *update.MaxUsers
	}
	if update.IsEnabled != nil {
		task.IsEnabled = *update.IsEnabled
	}
	if err := validateTask(task); err != nil {
		return nil, err
	}

	updated, err := s.taskRepo.Update(ctx, task)
	if err != nil {
		zap.L().Error("can't update task", zap.Error(err))
		return nil, err
	}
	if updated == nil {
		return nil, ErrTaskNotFound
	}
	return updated, nil
}

func (s *Service) DeleteTask(ctx context.Context, id int) error {
	deleted, err := s.taskRepo.Delete(ctx, id)
	if err != nil {
		zap.L().Error("can't delete task", zap.Error(err))
		return err
	}
	if !deleted {
		return ErrTaskNotFound
	}
	zap.L().Info("task deleted", zap.Int("task_id", id))
	return nil
}

func validateTask(task *domain.Task) error {
	if task.Title == "" {
		return fmt.Errorf("%w: title cannot be empty", ErrValidation)
	}
	if task.ChannelName == "" {
		return fmt.Errorf("%w: channel name cannot be empty", ErrValidation)
	}
	if !task.RewardAmount.IsPositive() {
		return fmt.Errorf("%w: reward amount must be a positive number", ErrValidation)
	}
	if task.MaxUsers <= 0 {
		return fmt.Errorf("%w: max users must be a positive number", ErrValidation)
	}
	for _, action := range task.RequiredActions {
		if !knownActions[action] {
			return fmt.Errorf("%w: unknown required action %q", ErrValidation, action)
		}
	}
	return nil
}
