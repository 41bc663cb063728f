package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/SHIV24116/Quick-Teams-web-app/internal/domain"
	"github.com/SHIV24116/Quick-Teams-web-app/internal/logger"
	"github.com/SHIV24116/Quick-Teams-web-app/internal/repository"

	"github.com/lib/pq"
)

type connectionRequestRepository struct {
	db *sql.DB
}

func NewConnectionRequestRepository(db *sql.DB) repository.ConnectionRequestRepository {
	return &connectionRequestRepository{db: db}
}

const requestColumns = `r.id, r.sender_id, r.receiver_id, r.status, r.created_on, r.resolved_on,
	          s.username, v.username`

const requestJoins = ` FROM connection_requests r
	          JOIN users s ON s.id = r.sender_id
	          JOIN users v ON v.id = r.receiver_id`

func scanRequest(row interface{ Scan(...any) error }) (*domain.ConnectionRequest, error) {
	req := &domain.ConnectionRequest{}
	var createdOn time.Time
	var resolvedOn sql.NullTime
	err := row.Scan(&req.ID, &req.SenderID, &req.ReceiverID, &req.Status, &createdOn, &resolvedOn,
		&req.SenderUsername, &req.ReceiverUsername)
	if err != nil {
		return nil, err
	}
	req.CreatedOn = createdOn.Format("2006-01-02")
	if resolvedOn.Valid {
		dateStr := resolvedOn.Time.Format("2006-01-02")
		req.ResolvedOn = &dateStr
	}
	return req, nil
}

func (r *connectionRequestRepository) Create(ctx context.Context, req *domain.ConnectionRequest) error {
	query := `INSERT INTO connection_requests (sender_id, receiver_id, status, created_on)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	req.Status = domain.ConnectionRequestStatusPending
	now := time.Now()
	req.CreatedOn = now.Format("2006-01-02")
	err := r.db.QueryRowContext(ctx, query, req.SenderID, req.ReceiverID, req.Status, now).Scan(&req.ID)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		// uniq_pending_pair: a pending request already exists in some direction.
		return domain.ErrDuplicatePending
	}
	return err
}

func (r *connectionRequestRepository) GetByID(ctx context.Context, id int32) (*domain.ConnectionRequest, error) {
	query := `SELECT ` + requestColumns + requestJoins + ` WHERE r.id = $1`
	req, err := scanRequest(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return req, err
}

func (r *connectionRequestRepository) FindPendingBetween(ctx context.Context, userA, userB int32) (*domain.ConnectionRequest, error) {
	query := `SELECT ` + requestColumns + requestJoins + `
	          WHERE r.status = 'PENDING'
	            AND ((r.sender_id = $1 AND r.receiver_id = $2) OR (r.sender_id = $2 AND r.receiver_id = $1))`
	req, err := scanRequest(r.db.QueryRowContext(ctx, query, userA, userB))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return req, err
}

func (r *connectionRequestRepository) ListByReceiver(ctx context.Context, receiverID int32, status domain.ConnectionRequestStatus) ([]domain.ConnectionRequest, error) {
	query := `SELECT ` + requestColumns + requestJoins + ` WHERE r.receiver_id = $1 AND r.status = $2 ORDER BY r.id`
	rows, err := r.db.QueryContext(ctx, query, receiverID, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.ConnectionRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, *req)
	}
	return reqs, rows.Err()
}

func (r *connectionRequestRepository) ListBySender(ctx context.Context, senderID int32) ([]domain.ConnectionRequest, error) {
	query := `SELECT ` + requestColumns + requestJoins + ` WHERE r.sender_id = $1 ORDER BY r.id`
	rows, err := r.db.QueryContext(ctx, query, senderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.ConnectionRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, *req)
	}
	return reqs, rows.Err()
}

func (r *connectionRequestRepository) Resolve(ctx context.Context, id int32, status domain.ConnectionRequestStatus) error {
	// The status guard serializes concurrent resolutions: whoever loses the
	// race sees zero rows affected.
	query := `UPDATE connection_requests SET status = $1, resolved_on = $2 WHERE id = $3 AND status = 'PENDING'`
	res, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrInvalidState
	}
	return nil
}

func (r *connectionRequestRepository) AcceptAndFormGroup(ctx context.Context, requestID int32, groupName string, clearAvailability bool) (*domain.Group, error) {
	logger.DatabaseCall("TX", "accept request + form group", "requestID", requestID)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var senderID, receiverID int32
	err = tx.QueryRowContext(ctx,
		`UPDATE connection_requests SET status = 'ACCEPTED', resolved_on = $1
		 WHERE id = $2 AND status = 'PENDING'
		 RETURNING sender_id, receiver_id`,
		time.Now(), requestID,
	).Scan(&senderID, &receiverID)
	if errors.Is(err, sql.ErrNoRows) {
		// Already resolved, possibly by a concurrent accept.
		return nil, domain.ErrInvalidState
	}
	if err != nil {
		return nil, err
	}

	group := &domain.Group{Name: groupName}
	now := time.Now()
	group.CreatedOn = now.Format("2006-01-02")
	err = tx.QueryRowContext(ctx,
		`INSERT INTO groups (name, created_on) VALUES ($1, $2) RETURNING id`,
		groupName, now,
	).Scan(&group.ID)
	if err != nil {
		return nil, err
	}

	for _, memberID := range []int32{senderID, receiverID} {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO group_members (group_id, user_id, added_on) VALUES ($1, $2, $3)`,
			group.ID, memberID, now,
		); err != nil {
			return nil, err
		}
	}

	if clearAvailability {
		if _, err := tx.ExecContext(ctx,
			`UPDATE users SET availability = FALSE, updated_on = $1 WHERE id IN ($2, $3)`,
			now, senderID, receiverID,
		); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		logger.DatabaseResult("TX", 0, err, "requestID", requestID)
		return nil, err
	}
	logger.DatabaseResult("TX", 1, nil, "requestID", requestID, "groupID", group.ID)
	return group, nil
}
