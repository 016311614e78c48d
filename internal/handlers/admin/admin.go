package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"watchearn/internal/domain"
	"watchearn/internal/dto"
	"watchearn/internal/service/adminservice"
	"watchearn/internal/service/taskservice"
	"watchearn/internal/service/withdrawalservice"
	"watchearn/pkg/utils"
)

//go:generate mockgen -source=admin.go -destination=admin_mock.go -package=admin

type TaskService interface {
	ListAllTasks(ctx context.Context) ([]domain.Task, error)
	CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error)
	UpdateTask(ctx context.Context, id int, update taskservice.TaskUpdate) (*domain.Task, error)
	DeleteTask(ctx context.Context, id int) error
}

type WithdrawalService interface {
	ListAll(ctx context.Context) ([]domain.Withdrawal, error)
	Decide(ctx context.Context, id int, decision string, adminNote *string) (*domain.Withdrawal, error)
}

type Service interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	SetUserStatus(ctx context.Context, id int, status string) (*domain.User, error)
	FlagFraud(ctx context.Context, completionID int) error
	Analytics(ctx context.Context) (*adminservice.AnalyticsReport, error)
}

type AdminHandler struct {
	taskService       TaskService
	withdrawalService WithdrawalService
	adminService      Service
}

func New(taskService TaskService, withdrawalService WithdrawalService, adminService Service) *AdminHandler {
	return &AdminHandler{
		taskService:       taskService,
		withdrawalService: withdrawalService,
		adminService:      adminService,
	}
}

func taskToDTO(t domain.Task) dto.TaskDTO {
	return dto.TaskDTO{
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
}

func withdrawalToDTO(wd domain.Withdrawal) dto.AdminWithdrawalDTO {
	return dto.AdminWithdrawalDTO{
		WithdrawalDTO: dto.WithdrawalDTO{
			ID:             wd.ID,
			Amount:         wd.Amount,
			Status:         wd.Status,
			PaymentMethod:  wd.PaymentMethod,
			PaymentDetails: wd.PaymentDetails,
			AdminNote:      wd.AdminNote,
			CreatedAt:      wd.CreatedAt,
			ProcessedAt:    wd.ProcessedAt,
		},
		UserEmail: wd.UserEmail,
		UserName:  wd.UserName,
	}
}

func userToDTO(u domain.User) dto.AdminUserDTO {
	return dto.AdminUserDTO{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		Balance:   u.Balance,
		CreatedAt: u.CreatedAt,
	}
}

// ListTasks godoc
//
//	@Summary		List the whole task catalog
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TaskDTO
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/tasks [get]
func (h *AdminHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListAllTasks(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		response = append(response, taskToDTO(t))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreateTask godoc
//
//	@Summary		Create a task
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateTaskRequestDTO	true	"Task fields"
//	@Success		201		{object}	dto.TaskDTO
//	@Failure		400		{object}	utils.Response	"Validation failed"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/tasks [post]
func (h *AdminHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTaskRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	task := &domain.Task{
		Title:           req.Title,
		ChannelName:     req.ChannelName,
		VideoThumbnail:  req.VideoThumbnail,
		VideoLength:     req.VideoLength,
		RequiredActions: req.RequiredActions,
		RewardAmount:    req.RewardAmount,
		MaxUsers:        req.MaxUsers,
		IsEnabled:       req.IsEnabled == nil || *req.IsEnabled,
	}

	created, err := h.taskService.CreateTask(r.Context(), task)
	if err != nil {
		if errors.Is(err, taskservice.ErrValidation) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, taskToDTO(*created))
}

// UpdateTask godoc
//
//	@Summary		Update a task
//	@Description	Partial update; omitted fields keep their current value. The completed count is never editable.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateTaskRequestDTO	true	"Fields to update"
//	@Success		200		{object}	dto.TaskDTO
//	@Failure		400		{object}	utils.Response	"Validation failed"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		404		{object}	utils.Response	"Task not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/tasks [put]
func (h *AdminHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateTaskRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Task ID required")
		return
	}

	update := taskservice.TaskUpdate{
		Title:           req.Title,
		ChannelName:     req.ChannelName,
		VideoThumbnail:  req.VideoThumbnail,
		VideoLength:     req.VideoLength,
		RequiredActions: req.RequiredActions,
		RewardAmount:    req.RewardAmount,
		MaxUsers:        req.MaxUsers,
		IsEnabled:       req.IsEnabled,
	}

	updated, err := h.taskService.UpdateTask(r.Context(), req.ID, update)
	if err != nil {
		switch {
		case errors.Is(err, taskservice.ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, taskservice.ErrTaskNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, taskToDTO(*updated))
}

// DeleteTask godoc
//
//	@Summary		Delete a task
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DeleteTaskRequestDTO	true	"Task to delete"
//	@Success		200		{object}	utils.Response
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		404		{object}	utils.Response	"Task not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/tasks [delete]
func (h *AdminHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	var req dto.DeleteTaskRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Task ID required")
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), req.ID); err != nil {
		if errors.Is(err, taskservice.ErrTaskNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "task deleted"})
}

// ListWithdrawals godoc
//
//	@Summary		List all withdrawal requests
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.AdminWithdrawalDTO
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals [get]
func (h *AdminHandler) ListWithdrawals(w http.ResponseWriter, r *http.Request) {
	withdrawals, err := h.withdrawalService.ListAll(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.AdminWithdrawalDTO, 0, len(withdrawals))
	for _, wd := range withdrawals {
		response = append(response, withdrawalToDTO(wd))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// DecideWithdrawal godoc
//
//	@Summary		Approve or reject a withdrawal
//	@Description	Rejection refunds the debited amount. Decided requests are immutable.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DecideWithdrawalRequestDTO	true	"Decision"
//	@Success		200		{object}	dto.WithdrawalDTO
//	@Failure		400		{object}	utils.Response	"Invalid decision"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		404		{object}	utils.Response	"Withdrawal not found"
//	@Failure		409		{object}	utils.Response	"Withdrawal already processed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals [put]
func (h *AdminHandler) DecideWithdrawal(w http.ResponseWriter, r *http.Request) {
	var req dto.DecideWithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == 0 || req.Status == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "ID and status required")
		return
	}

	decided, err := h.withdrawalService.Decide(r.Context(), req.ID, req.Status, req.AdminNote)
	if err != nil {
		switch {
		case errors.Is(err, withdrawalservice.ErrInvalidDecision):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, withdrawalservice.ErrWithdrawalNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, withdrawalservice.ErrAlreadyProcessed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, withdrawalToDTO(*decided).WithdrawalDTO)
}

// ListUsers godoc
//
//	@Summary		List all accounts
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.AdminUserDTO
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users [get]
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminService.ListUsers(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.AdminUserDTO, 0, len(users))
	for _, u := range users {
		response = append(response, userToDTO(u))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdateUserStatus godoc
//
//	@Summary		Suspend or activate an account
//	@Description	Admin accounts can never be suspended.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateUserStatusRequestDTO	true	"New status"
//	@Success		200		{object}	dto.AdminUserDTO
//	@Failure		400		{object}	utils.Response	"Invalid status"
//	@Failure		403		{object}	utils.Response	"Admin account"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users [put]
func (h *AdminHandler) UpdateUserStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateUserStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == 0 || req.Status == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "ID and status required")
		return
	}

	user, err := h.adminService.SetUserStatus(r.Context(), req.ID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, adminservice.ErrInvalidUserStatus):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, adminservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, adminservice.ErrAdminAccount):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, userToDTO(*user))
}

// FlagFraud godoc
//
//	@Summary		Flag a completed claim as fraud
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.FlagFraudRequestDTO	true	"Completion to flag"
//	@Success		200		{object}	utils.Response
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		404		{object}	utils.Response	"Completion not found"
//	@Failure		409		{object}	utils.Response	"Record is not completed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/completions/fraud [put]
func (h *AdminHandler) FlagFraud(w http.ResponseWriter, r *http.Request) {
	var req dto.FlagFraudRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CompletionID == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Completion ID required")
		return
	}

	if err := h.adminService.FlagFraud(r.Context(), req.CompletionID); err != nil {
		switch {
		case errors.Is(err, adminservice.ErrCompletionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, adminservice.ErrNotCompleted):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "completion flagged as fraud"})
}

// Analytics godoc
//
//	@Summary		Aggregate platform analytics
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.AnalyticsResponseDTO
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/analytics [get]
func (h *AdminHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	report, err := h.adminService.Analytics(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AnalyticsResponseDTO{
		TotalUsers:          report.Users.Total,
		ActiveUsers:         report.Users.Active,
		SuspendedUsers:      report.Users.Suspended,
		TotalTasks:          report.Tasks.Total,
		ActiveTasks:         report.Tasks.Active,
		TotalCompletions:    report.Completions.Completed,
		PendingCompletions:  report.Completions.Pending,
		FailedCompletions:   report.Completions.Failed,
		FraudFlags:          report.Completions.Fraud,
		CompletionRate:      report.CompletionRate,
		DropOffRate:         report.DropOffRate,
		TotalEarned:         report.Completions.TotalEarned,
		PendingWithdrawals:  report.Withdrawals.PendingCount,
		TotalPendingAmount:  report.Withdrawals.PendingAmount,
		TotalApprovedAmount: report.Withdrawals.ApprovedAmount,
	})
}
