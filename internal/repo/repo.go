package repo

import (
	"watchearn/internal/pg"
	balancerepo "watchearn/internal/repo/balance-repo"
	completionrepo "watchearn/internal/repo/completion-repo"
	taskrepo "watchearn/internal/repo/task-repo"
	userrepo "watchearn/internal/repo/user-repo"
	withdrawalrepo "watchearn/internal/repo/withdrawal-repo"
)

// Repositories exposes the concrete stores; each service narrows them down
// to the interface it declares for itself.
type Repositories struct {
	UserRepo       *userrepo.Repository
	TaskRepo       *taskrepo.Repository
	CompletionRepo *completionrepo.Repository
	BalanceRepo    *balancerepo.Repository
	WithdrawalRepo *withdrawalrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:       userrepo.New(conn),
		TaskRepo:       taskrepo.New(conn),
		CompletionRepo: completionrepo.New(conn),
		BalanceRepo:    balancerepo.New(conn),
		WithdrawalRepo: withdrawalrepo.New(conn),
	}
}
