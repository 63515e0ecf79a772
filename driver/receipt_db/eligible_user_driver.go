package receipt_db

import (
	"context"
	"fmt"

	"receipt/domain"
)

const listEligibleUsersQuery = `
	SELECT id
	FROM users
	WHERE weekly_receipt_enabled = TRUE
	  AND is_active = TRUE
	ORDER BY id
`

// ListEligibleUsers returns active users with weekly receipts enabled.
func (r *ReceiptDBRepository) ListEligibleUsers(ctx context.Context) ([]domain.EligibleUser, error) {
	rows, err := r.pool.Query(ctx, listEligibleUsersQuery)
	if err != nil {
		return nil, fmt.Errorf("query eligible users: %w", err)
	}
	defer rows.Close()

	var users []domain.EligibleUser
	for rows.Next() {
		var u domain.EligibleUser
		if err := rows.Scan(&u.ID); err != nil {
			return nil, fmt.Errorf("scan eligible user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate eligible users: %w", err)
	}
	return users, nil
}
