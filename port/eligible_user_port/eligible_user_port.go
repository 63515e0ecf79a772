package eligible_user_port

//go:generate go run go.uber.org/mock/mockgen -source=eligible_user_port.go -destination=../../mocks/mock_eligible_user_port.go -package=mocks

import (
	"context"

	"receipt/domain"
)

// EligibleUserPort lists the users opted in to scheduled weekly reports.
type EligibleUserPort interface {
	ListEligibleUsers(ctx context.Context) ([]domain.EligibleUser, error)
}
