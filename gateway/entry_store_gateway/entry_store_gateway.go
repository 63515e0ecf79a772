package entry_store_gateway

import (
	"context"
	"time"

	"receipt/domain"
	"receipt/driver/receipt_db"
	"receipt/port/entry_store_port"
	"receipt/utils/errors"
	"receipt/utils/logger"
)

type EntryStoreGateway struct {
	receiptDB *receipt_db.ReceiptDBRepository
}

func NewEntryStoreGateway(repo *receipt_db.ReceiptDBRepository) entry_store_port.EntryStorePort {
	return &EntryStoreGateway{receiptDB: repo}
}

func (g *EntryStoreGateway) FindEntries(ctx context.Context, userID string, start, end time.Time) ([]domain.Entry, error) {
	if g.receiptDB == nil {
		return nil, errors.DatabaseError("database connection not available", nil, map[string]interface{}{
			"operation": "FindEntries",
			"user_id":   userID,
		})
	}

	entries, err := g.receiptDB.FindEntries(ctx, userID, start, end)
	if err != nil {
		dbErr := errors.StoreError("failed to fetch entries", err, map[string]interface{}{
			"user_id": userID,
			"start":   start,
			"end":     end,
		})
		errors.LogError(logger.Logger, dbErr, "FindEntries")
		return nil, dbErr
	}
	return entries, nil
}
