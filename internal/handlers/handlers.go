package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "watchearn/docs"
	"watchearn/internal/domain"
	adminhandlers "watchearn/internal/handlers/admin"
	authhandlers "watchearn/internal/handlers/auth"
	taskhandlers "watchearn/internal/handlers/tasks"
	withdrawalhandlers "watchearn/internal/handlers/withdrawals"
	"watchearn/internal/service"
	"watchearn/pkg/auth"
	"watchearn/pkg/utils"
)

//go:generate mockgen -source=handlers.go -destination=handlers_mock.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type TaskHandler interface {
	GetTasks(w http.ResponseWriter, r *http.Request)
	StartTask(w http.ResponseWriter, r *http.Request)
	CompleteTask(w http.ResponseWriter, r *http.Request)
}

type WithdrawalHandler interface {
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
	RequestWithdrawal(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ListTasks(w http.ResponseWriter, r *http.Request)
	CreateTask(w http.ResponseWriter, r *http.Request)
	UpdateTask(w http.ResponseWriter, r *http.Request)
	DeleteTask(w http.ResponseWriter, r *http.Request)
	ListWithdrawals(w http.ResponseWriter, r *http.Request)
	DecideWithdrawal(w http.ResponseWriter, r *http.Request)
	ListUsers(w http.ResponseWriter, r *http.Request)
	UpdateUserStatus(w http.ResponseWriter, r *http.Request)
	FlagFraud(w http.ResponseWriter, r *http.Request)
	Analytics(w http.ResponseWriter, r *http.Request)
}

type UserProvider interface {
	GetUserByID(ctx context.Context, id int) (*domain.User, error)
}

type Handlers struct {
	AuthHandler       AuthHandler
	TaskHandler       TaskHandler
	WithdrawalHandler WithdrawalHandler
	AdminHandler      AdminHandler

	users UserProvider
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		TaskHandler:       taskhandlers.New(s.TaskService),
		WithdrawalHandler: withdrawalhandlers.New(s.WithdrawalService),
		AdminHandler:      adminhandlers.New(s.TaskService, s.WithdrawalService, s.AdminService),
		users:             s.AuthService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.AuthHandler.Register)
		r.Post("/auth/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware, h.requireActiveUser)
			r.Get("/auth/me", h.AuthHandler.Me)
			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", h.TaskHandler.GetTasks)
				r.Post("/start", h.TaskHandler.StartTask)
				r.Post("/complete", h.TaskHandler.CompleteTask)
			})
			r.Route("/withdrawals", func(r chi.Router) {
				r.Get("/", h.WithdrawalHandler.GetWithdrawals)
				r.Post("/", h.WithdrawalHandler.RequestWithdrawal)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.RequireAdmin)
				r.Route("/tasks", func(r chi.Router) {
					r.Get("/", h.AdminHandler.ListTasks)
					r.Post("/", h.AdminHandler.CreateTask)
					r.Put("/", h.AdminHandler.UpdateTask)
					r.Delete("/", h.AdminHandler.DeleteTask)
				})
				r.Route("/withdrawals", func(r chi.Router) {
					r.Get("/", h.AdminHandler.ListWithdrawals)
					r.Put("/", h.AdminHandler.DecideWithdrawal)
				})
				r.Route("/users", func(r chi.Router) {
					r.Get("/", h.AdminHandler.ListUsers)
					r.Put("/", h.AdminHandler.UpdateUserStatus)
				})
				r.Put("/completions/fraud", h.AdminHandler.FlagFraud)
				r.Get("/analytics", h.AdminHandler.Analytics)
			})
		})
	})

	return r
}

// requireActiveUser rejects tokens whose account has been suspended since
// the token was issued.
func (h *Handlers) requireActiveUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(auth.UserIDKey).(int)
		if !ok {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		user, err := h.users.GetUserByID(r.Context(), userID)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if user == nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if user.Status == domain.UserStatusSuspended {
			utils.RespondWithError(w, http.StatusForbidden, "Account suspended")
			return
		}
		next.ServeHTTP(w, r)
	})
}
