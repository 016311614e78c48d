package service

import (
	"watchearn/internal/pg"
	"watchearn/internal/repo"
	"watchearn/internal/service/adminservice"
	"watchearn/internal/service/authservice"
	"watchearn/internal/service/taskservice"
	"watchearn/internal/service/withdrawalservice"
	pkgauth "watchearn/pkg/auth"
)

type Services struct {
	AuthService       *authservice.Service
	TaskService       *taskservice.Service
	WithdrawalService *withdrawalservice.Service
	AdminService      *adminservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, minCompletion int) *Services {
	authService := authservice.New(repo.UserRepo, txManager, &pkgauth.HashService{}, &pkgauth.JWTService{})
	taskService := taskservice.New(repo.TaskRepo, repo.CompletionRepo, repo.BalanceRepo, txManager, minCompletion)
	withdrawalService := withdrawalservice.New(repo.WithdrawalRepo, repo.BalanceRepo, txManager)
	adminService := adminservice.New(repo.UserRepo, repo.TaskRepo, repo.CompletionRepo, repo.WithdrawalRepo)

	return &Services{
		AuthService:       authService,
		TaskService:       taskService,
		WithdrawalService: withdrawalService,
		AdminService:      adminService,
	}
}
