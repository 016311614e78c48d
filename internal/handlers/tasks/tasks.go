package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"watchearn/internal/domain"
	"watchearn/internal/dto"
	"watchearn/internal/service/taskservice"
	"watchearn/pkg/auth"
	"watchearn/pkg/utils"
)

//go:generate mockgen -source=tasks.go -destination=tasks_mock.go -package=tasks

type Service interface {
	ListForUser(ctx context.Context, userID int) (*taskservice.TaskLists, error)
	Start(ctx context.Context, userID, taskID int) (*domain.TaskCompletion, error)
	Complete(ctx context.Context, userID, taskID, reportedPct int) (*taskservice.CompletionResult, error)
}

type TaskHandler struct {
	taskService Service
}

func New(taskService Service) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

func taskToDTO(t domain.Task, claim *domain.TaskCompletion) dto.TaskDTO {
	d := dto.TaskDTO{
		ID:              t.ID,
		Title:           t.Title,
		ChannelName:     t.ChannelName,
		VideoThumbnail:  t.VideoThumbnail,
		VideoLength:     t.VideoLength,
		RequiredActions: t.RequiredActions,
		RewardAmount:    t.RewardAmount,
		MaxUsers:        t.MaxUsers,
		CompletedCount:  t.CompletedCount,
		IsEnabled:       t.IsEnabled,
		CreatedAt:       t.CreatedAt,
	}
	if claim != nil {
		c := completionToDTO(claim)
		d.UserStatus = &c
	}
	return d
}

func completionToDTO(c *domain.TaskCompletion) dto.CompletionDTO {
	return dto.CompletionDTO{
		TaskID:        c.TaskID,
		Status:        c.Status,
		CompletionPct: c.CompletionPct,
		EarnedAmount:  c.EarnedAmount,
		StartedAt:     c.StartedAt,
		CompletedAt:   c.CompletedAt,
	}
}

func tasksToDTO(list []taskservice.TaskWithClaim) []dto.TaskDTO {
	out := make([]dto.TaskDTO, 0, len(list))
	for _, item := range list {
		out = append(out, taskToDTO(item.Task, item.Claim))
	}
	return out
}

// GetTasks godoc
//
//	@Summary		List tasks for the authenticated user
//	@Description	Partition the task catalog into available, ongoing and completed sets, with the current balance.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.TaskListResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/tasks [get]
func (h *TaskHandler) GetTasks(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	lists, err := h.taskService.ListForUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.TaskListResponseDTO{
		Available: tasksToDTO(lists.Available),
		Ongoing:   tasksToDTO(lists.Ongoing),
		Completed: tasksToDTO(lists.Completed),
		Balance:   lists.Balance,
	})
}

// StartTask godoc
//
//	@Summary		Claim a task
//	@Description	Create a pending completion record for the task, subject to capacity and uniqueness.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.StartTaskRequestDTO	true	"Task to start"
//	@Success		201		{object}	dto.CompletionDTO
//	@Failure		400		{object}	utils.Response	"Task limit reached"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Task not found or disabled"
//	@Failure		409		{object}	utils.Response	"Task already started"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/tasks/start [post]
func (h *TaskHandler) StartTask(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.StartTaskRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.TaskID == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Task ID required")
		return
	}

	claim, err := h.taskService.Start(r.Context(), userID, req.TaskID)
	if err != nil {
		switch {
		case errors.Is(err, taskservice.ErrTaskNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, taskservice.ErrTaskLimitReached):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, taskservice.ErrAlreadyStarted):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, completionToDTO(claim))
}

// CompleteTask godoc
//
//	@Summary		Report task completion
//	@Description	Submit the watched percentage; clears the threshold to earn the full reward, anything below earns nothing.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CompleteTaskRequestDTO	true	"Completion report"
//	@Success		200		{object}	dto.CompleteTaskResponseDTO
//	@Failure		400		{object}	utils.Response	"Already completed"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Task not started"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/tasks/complete [post]
func (h *TaskHandler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CompleteTaskRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.TaskID == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Task ID and completion percentage required")
		return
	}

	result, err := h.taskService.Complete(r.Context(), userID, req.TaskID, req.CompletionPct)
	if err != nil {
		switch {
		case errors.Is(err, taskservice.ErrTaskNotStarted), errors.Is(err, taskservice.ErrTaskNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, taskservice.ErrAlreadyCompleted):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CompleteTaskResponseDTO{
		Passed:        result.Passed,
		Earned:        result.Earned,
		CompletionPct: result.CompletionPct,
		MinRequired:   result.MinRequired,
	})
}
