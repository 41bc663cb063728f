package jobs

import (
	"context"
	"fmt"

	"github.com/SHIV24116/Quick-Teams-web-app/internal/logger"
)

// ExpireStalePendingRequests cancels pending team-up requests older than
// the configured TTL. A pending request blocks the pair from sending a
// new one, so abandoned requests must not linger forever.
func (jr *JobRunner) ExpireStalePendingRequests() {
	jr.runWithRecovery("ExpireStalePendingRequests", func() {
		ctx := context.Background()

		ttlDays := jr.config.Scheduler.PendingRequestTTLDays

		query := `
			UPDATE connection_requests
			SET status = 'CANCELLED',
			    resolved_on = NOW()
			WHERE status = 'PENDING'
			  AND created_on < NOW() - $1::interval
			RETURNING id, sender_id, receiver_id
		`

		rows, err := jr.db.QueryContext(ctx, query, fmt.Sprintf("%d days", ttlDays))
		if err != nil {
			logger.Error("Failed to expire stale pending requests", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var id, senderID, receiverID int32
			if err := rows.Scan(&id, &senderID, &receiverID); err != nil {
				logger.Error("Failed to scan expired request", "error", err)
				continue
			}
			logger.Debug("Expired stale pending request",
				"request_id", id,
				"sender_id", senderID,
				"receiver_id", receiverID)
			count++
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating expired requests", "error", err)
			return
		}

		logger.Info("Expired stale pending requests", "count", count, "ttl_days", ttlDays)
	})
}
