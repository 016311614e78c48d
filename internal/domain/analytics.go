package domain

import "github.com/shopspring/decimal"

// Aggregate read-side counters, computed by the repositories and assembled
// by the admin analytics service.

type UserStats struct {
	Total     int
	Active    int
	Suspended int
}

type TaskStats struct {
	Total  int
	Active int
}

type CompletionStats struct {
	Total       int
	Completed   int
	Pending     int
	Failed      int
	Fraud       int
	TotalEarned decimal.Decimal
}

type WithdrawalStats struct {
	PendingCount   int
	PendingAmount  decimal.Decimal
	ApprovedAmount decimal.Decimal
}
