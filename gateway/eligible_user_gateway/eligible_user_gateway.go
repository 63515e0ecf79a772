package eligible_user_gateway

import (
	"context"

	"receipt/domain"
	"receipt/driver/receipt_db"
	"receipt/port/eligible_user_port"
	"receipt/utils/errors"
	"receipt/utils/logger"
)

type EligibleUserGateway struct {
	receiptDB *receipt_db.ReceiptDBRepository
}

func NewEligibleUserGateway(repo *receipt_db.ReceiptDBRepository) eligible_user_port.EligibleUserPort {
	return &EligibleUserGateway{receiptDB: repo}
}

func (g *EligibleUserGateway) ListEligibleUsers(ctx context.Context) ([]domain.EligibleUser, error) {
	if g.receiptDB == nil {
		return nil, errors.DatabaseError("database connection not available", nil, map[string]interface{}{
			"operation": "ListEligibleUsers",
		})
	}

	users, err := g.receiptDB.ListEligibleUsers(ctx)
	if err != nil {
		dbErr := errors.StoreError("failed to list eligible users", err, nil)
		errors.LogError(logger.Logger, dbErr, "ListEligibleUsers")
		return nil, dbErr
	}
	return users, nil
}
