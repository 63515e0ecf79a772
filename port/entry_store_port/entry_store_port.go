package entry_store_port

//go:generate go run go.uber.org/mock/mockgen -source=entry_store_port.go -destination=../../mocks/mock_entry_store_port.go -package=mocks

import (
	"context"
	"time"

	"receipt/domain"
)

// EntryStorePort reads a user's daily entries.
type EntryStorePort interface {
	// FindEntries returns the entries of userID whose timestamp falls in
	// [start, end], ordered by timestamp ascending.
	FindEntries(ctx context.Context, userID string, start, end time.Time) ([]domain.Entry, error)
}
