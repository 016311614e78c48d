package admin

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"watchearn/internal/domain"
	"watchearn/internal/dto"
	"watchearn/internal/service/adminservice"
	"watchearn/internal/service/taskservice"
	"watchearn/internal/service/withdrawalservice"
)

func NewMock(t *testing.T) (*AdminHandler, *MockTaskService, *MockWithdrawalService, *MockService) {
	ctrl := gomock.NewController(t)
	taskService := NewMockTaskService(ctrl)
	withdrawalService := NewMockWithdrawalService(ctrl)
	adminService := NewMockService(ctrl)
	handler := New(taskService, withdrawalService, adminService)
	defer ctrl.Finish()
	return handler, taskService, withdrawalService, adminService
}

func newRequest(method, target, body string) *http.Request {
	if body == "" {
		return httptest.NewRequest(method, target, nil)
	}
	return httptest.NewRequest(method, target, bytes.NewBufferString(body))
}

func TestListTasksHandler(t *testing.T) {
	handler, taskService, _, _ := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Returns the full catalog",
			prepareMock: func() {
				taskService.EXPECT().ListAllTasks(gomock.Any()).Return([]domain.Task{
					{ID: 10, Title: "Watch review", IsEnabled: true},
					{ID: 11, Title: "Watch teaser", IsEnabled: false},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Service failure",
			prepareMock: func() {
				taskService.EXPECT().ListAllTasks(gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()

			handler.ListTasks(w, newRequest(http.MethodGet, "/api/admin/tasks", ""))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var resp []dto.TaskDTO
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Len(t, resp, 2)
			}
		})
	}
}

func TestCreateTaskHandler(t *testing.T) {
	handler, taskService, _, _ := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Created enabled by default",
			body: `{"title":"Watch review","channel_name":"TechDaily","reward_amount":"0.75"}`,
			prepareMock: func() {
				taskService.EXPECT().CreateTask(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, task *domain.Task) (*domain.Task, error) {
						assert.Equal(t, "Watch review", task.Title)
						assert.True(t, task.IsEnabled)
						task.ID = 10
						return task, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Created disabled when requested",
			body: `{"title":"Watch teaser","channel_name":"TechDaily","reward_amount":"0.50","is_enabled":false}`,
			prepareMock: func() {
				taskService.EXPECT().CreateTask(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, task *domain.Task) (*domain.Task, error) {
						assert.False(t, task.IsEnabled)
						task.ID = 11
						return task, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Invalid request body",
			body:         `{invalid json`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Validation rejected",
			body: `{"title":"","channel_name":"TechDaily","reward_amount":"0.75"}`,
			prepareMock: func() {
				taskService.EXPECT().CreateTask(gomock.Any(), gomock.Any()).
					Return(nil, taskservice.ErrValidation)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Service failure",
			body: `{"title":"Watch review","channel_name":"TechDaily","reward_amount":"0.75"}`,
			prepareMock: func() {
				taskService.EXPECT().CreateTask(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()

			handler.CreateTask(w, newRequest(http.MethodPost, "/api/admin/tasks", tt.body))

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestUpdateTaskHandler(t *testing.T) {
	handler, taskService, _, _ := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Partial update",
			body: `{"id":10,"title":"Watch the full review"}`,
			prepareMock: func() {
				taskService.EXPECT().UpdateTask(gomock.Any(), 10, gomock.Any()).
					DoAndReturn(func(_ any, _ int, update taskservice.TaskUpdate) (*domain.Task, error) {
						assert.Equal(t, "Watch the full review", *update.Title)
						assert.Nil(t, update.RewardAmount)
						return &domain.Task{ID: 10, Title: *update.Title}, nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing task ID",
			body:         `{"title":"Watch the full review"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Validation rejected",
			body: `{"id":10,"reward_amount":"-1"}`,
			prepareMock: func() {
				taskService.EXPECT().UpdateTask(gomock.Any(), 10, gomock.Any()).
					Return(nil, taskservice.ErrValidation)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown task",
			body: `{"id":99,"title":"Watch the full review"}`,
			prepareMock: func() {
				taskService.EXPECT().UpdateTask(gomock.Any(), 99, gomock.Any()).
					Return(nil, taskservice.ErrTaskNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()

			handler.UpdateTask(w, newRequest(http.MethodPut, "/api/admin/tasks", tt.body))

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestDeleteTaskHandler(t *testing.T) {
	handler, taskService, _, _ := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Deleted",
			body: `{"id":10}`,
			prepareMock: func() {
				taskService.EXPECT().DeleteTask(gomock.Any(), 10).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing task ID",
			body:         `{}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown task",
			body: `{"id":99}`,
			prepareMock: func() {
				taskService.EXPECT().DeleteTask(gomock.Any(), 99).Return(taskservice.ErrTaskNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()

			handler.DeleteTask(w, newRequest(http.MethodDelete, "/api/admin/tasks", tt.body))

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestListWithdrawalsHandler(t *testing.T) {
	handler, _, withdrawalService, _ := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Returns pending queue with requester info",
			prepareMock: func() {
				withdrawalService.EXPECT().ListAll(gomock.Any()).Return([]domain.Withdrawal{
					{ID: 3, UserID: 2, Amount: decimal.NewFromInt(20), Status: domain.WithdrawalStatusPending, UserEmail: "user@example.com", UserName: "John"},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Service failure",
			prepareMock: func() {
				withdrawalService.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()

			handler.ListWithdrawals(w, newRequest(http.MethodGet, "/api/admin/withdrawals", ""))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var resp []dto.AdminWithdrawalDTO
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Len(t, resp, 1)
				assert.Equal(t, "user@example.com", resp[0].UserEmail)
			}
		})
	}
}

func TestDecideWithdrawalHandler(t *testing.T) {
	handler, _, withdrawalService, _ := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Approved",
			body: `{"id":3,"status":"approved"}`,
			prepareMock: func() {
				withdrawalService.EXPECT().Decide(gomock.Any(), 3, "approved", gomock.Any()).
					Return(&domain.Withdrawal{ID: 3, Status: domain.WithdrawalStatusApproved}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Rejected with note",
			body: `{"id":3,"status":"rejected","admin_note":"details mismatch"}`,
			prepareMock: func() {
				withdrawalService.EXPECT().Decide(gomock.Any(), 3, "rejected", gomock.Any()).
					Return(&domain.Withdrawal{ID: 3, Status: domain.WithdrawalStatusRejected}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing fields",
			body:         `{"id":3}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown decision",
			body: `{"id":3,"status":"maybe"}`,
			prepareMock: func() {
				withdrawalService.EXPECT().Decide(gomock.Any(), 3, "maybe", gomock.Any()).
					Return(nil, withdrawalservice.ErrInvalidDecision)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown withdrawal",
			body: `{"id":99,"status":"approved"}`,
			prepareMock: func() {
				withdrawalService.EXPECT().Decide(gomock.Any(), 99, "approved", gomock.Any()).
					Return(nil, withdrawalservice.ErrWithdrawalNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Already processed",
			body: `{"id":3,"status":"approved"}`,
			prepareMock: func() {
				withdrawalService.EXPECT().Decide(gomock.Any(), 3, "approved", gomock.Any()).
					Return(nil, withdrawalservice.ErrAlreadyProcessed)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()

			handler.DecideWithdrawal(w, newRequest(http.MethodPut, "/api/admin/withdrawals", tt.body))

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestListUsersHandler(t *testing.T) {
	handler, _, _, adminService := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Returns all accounts",
			prepareMock: func() {
				adminService.EXPECT().ListUsers(gomock.Any()).Return([]domain.User{
					{ID: 1, Email: "admin@example.com", Role: domain.RoleAdmin, Status: domain.UserStatusActive},
					{ID: 2, Email: "user@example.com", Role: domain.RoleUser, Status: domain.UserStatusSuspended},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Service failure",
			prepareMock: func() {
				adminService.EXPECT().ListUsers(gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()

			handler.ListUsers(w, newRequest(http.MethodGet, "/api/admin/users", ""))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var resp []dto.AdminUserDTO
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Len(t, resp, 2)
			}
		})
	}
}

func TestUpdateUserStatusHandler(t *testing.T) {
	handler, _, _, adminService := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Suspended",
			body: `{"id":2,"status":"suspended"}`,
			prepareMock: func() {
				adminService.EXPECT().SetUserStatus(gomock.Any(), 2, "suspended").
					Return(&domain.User{ID: 2, Status: domain.UserStatusSuspended}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing fields",
			body:         `{"id":2}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown status",
			body: `{"id":2,"status":"banned"}`,
			prepareMock: func() {
				adminService.EXPECT().SetUserStatus(gomock.Any(), 2, "banned").
					Return(nil, adminservice.ErrInvalidUserStatus)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown user",
			body: `{"id":99,"status":"suspended"}`,
			prepareMock: func() {
				adminService.EXPECT().SetUserStatus(gomock.Any(), 99, "suspended").
					Return(nil, adminservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Admin account",
			body: `{"id":1,"status":"suspended"}`,
			prepareMock: func() {
				adminService.EXPECT().SetUserStatus(gomock.Any(), 1, "suspended").
					Return(nil, adminservice.ErrAdminAccount)
			},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()

			handler.UpdateUserStatus(w, newRequest(http.MethodPut, "/api/admin/users", tt.body))

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestFlagFraudHandler(t *testing.T) {
	handler, _, _, adminService := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Flagged",
			body: `{"completion_id":5}`,
			prepareMock: func() {
				adminService.EXPECT().FlagFraud(gomock.Any(), 5).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing completion ID",
			body:         `{}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown completion",
			body: `{"completion_id":99}`,
			prepareMock: func() {
				adminService.EXPECT().FlagFraud(gomock.Any(), 99).
					Return(adminservice.ErrCompletionNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Record not in completed state",
			body: `{"completion_id":5}`,
			prepareMock: func() {
				adminService.EXPECT().FlagFraud(gomock.Any(), 5).
					Return(adminservice.ErrNotCompleted)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()

			handler.FlagFraud(w, newRequest(http.MethodPut, "/api/admin/completions/fraud", tt.body))

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestAnalyticsHandler(t *testing.T) {
	handler, _, _, adminService := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Returns the aggregate snapshot",
			prepareMock: func() {
				adminService.EXPECT().Analytics(gomock.Any()).Return(&adminservice.AnalyticsReport{
					Users: domain.UserStats{Total: 120, Active: 110, Suspended: 10},
					Tasks: domain.TaskStats{Total: 30, Active: 25},
					Completions: domain.CompletionStats{
						Total:       200,
						Completed:   150,
						Pending:     17,
						Failed:      30,
						Fraud:       3,
						TotalEarned: decimal.NewFromFloat(112.50),
					},
					Withdrawals: domain.WithdrawalStats{
						PendingCount:   7,
						PendingAmount:  decimal.NewFromInt(105),
						ApprovedAmount: decimal.NewFromInt(900),
					},
					CompletionRate: 75,
					DropOffRate:    24,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Service failure",
			prepareMock: func() {
				adminService.EXPECT().Analytics(gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()

			handler.Analytics(w, newRequest(http.MethodGet, "/api/admin/analytics", ""))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.AnalyticsResponseDTO
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, 150, resp.TotalCompletions)
				assert.Equal(t, 75, resp.CompletionRate)
				assert.Equal(t, 24, resp.DropOffRate)
				assert.Equal(t, 7, resp.PendingWithdrawals)
			}
		})
	}
}
