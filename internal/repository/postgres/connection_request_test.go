package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/SHIV24116/Quick-Teams-web-app/internal/domain"
	"github.com/SHIV24116/Quick-Teams-web-app/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

var requestCols = []string{"id", "sender_id", "receiver_id", "status", "created_on", "resolved_on", "sender_username", "receiver_username"}

func pendingRequestRow(id, senderID, receiverID int32) *sqlmock.Rows {
	return sqlmock.NewRows(requestCols).
		AddRow(id, senderID, receiverID, "PENDING", time.Now(), nil, "alice", "bob")
}

func TestConnectionRequestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewConnectionRequestRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		req := &domain.ConnectionRequest{SenderID: 1, ReceiverID: 2}

		mock.ExpectQuery("INSERT INTO connection_requests").
			WithArgs(int32(1), int32(2), domain.ConnectionRequestStatusPending, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

		err := repo.Create(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, int32(5), req.ID)
		assert.Equal(t, domain.ConnectionRequestStatusPending, req.Status)
	})

	t.Run("Duplicate Pending", func(t *testing.T) {
		req := &domain.ConnectionRequest{SenderID: 2, ReceiverID: 1}

		mock.ExpectQuery("INSERT INTO connection_requests").
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(ctx, req)
		assert.ErrorIs(t, err, domain.ErrDuplicatePending)
	})
}

func TestConnectionRequestRepository_FindPendingBetween(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewConnectionRequestRepository(db)
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM connection_requests r").
			WithArgs(int32(1), int32(2)).
			WillReturnRows(pendingRequestRow(5, 1, 2))

		req, err := repo.FindPendingBetween(ctx, 1, 2)
		assert.NoError(t, err)
		assert.Equal(t, int32(5), req.ID)
		assert.Equal(t, "alice", req.SenderUsername)
	})

	t.Run("None Pending", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM connection_requests r").
			WithArgs(int32(1), int32(2)).
			WillReturnRows(sqlmock.NewRows(requestCols))

		req, err := repo.FindPendingBetween(ctx, 1, 2)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, req)
	})
}

func TestConnectionRequestRepository_Resolve(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewConnectionRequestRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE connection_requests SET status").
			WithArgs(domain.ConnectionRequestStatusRejected, sqlmock.AnyArg(), int32(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Resolve(ctx, 5, domain.ConnectionRequestStatusRejected)
		assert.NoError(t, err)
	})

	t.Run("Already Resolved", func(t *testing.T) {
		mock.ExpectExec("UPDATE connection_requests SET status").
			WithArgs(domain.ConnectionRequestStatusCancelled, sqlmock.AnyArg(), int32(5)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Resolve(ctx, 5, domain.ConnectionRequestStatusCancelled)
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})
}

func TestConnectionRequestRepository_AcceptAndFormGroup(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewConnectionRequestRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("UPDATE connection_requests SET status = 'ACCEPTED'").
			WithArgs(sqlmock.AnyArg(), int32(5)).
			WillReturnRows(sqlmock.NewRows([]string{"sender_id", "receiver_id"}).AddRow(1, 2))
		mock.ExpectQuery("INSERT INTO groups").
			WithArgs("Team_alice_bob", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
		mock.ExpectExec("INSERT INTO group_members").
			WithArgs(int32(10), int32(1), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO group_members").
			WithArgs(int32(10), int32(2), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		group, err := repo.AcceptAndFormGroup(ctx, 5, "Team_alice_bob", false)
		assert.NoError(t, err)
		assert.Equal(t, int32(10), group.ID)
		assert.Equal(t, "Team_alice_bob", group.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Clears Availability When Asked", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("UPDATE connection_requests SET status = 'ACCEPTED'").
			WithArgs(sqlmock.AnyArg(), int32(5)).
			WillReturnRows(sqlmock.NewRows([]string{"sender_id", "receiver_id"}).AddRow(1, 2))
		mock.ExpectQuery("INSERT INTO groups").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
		mock.ExpectExec("INSERT INTO group_members").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO group_members").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE users SET availability = FALSE").
			WithArgs(sqlmock.AnyArg(), int32(1), int32(2)).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		group, err := repo.AcceptAndFormGroup(ctx, 5, "Team_alice_bob", true)
		assert.NoError(t, err)
		assert.Equal(t, int32(11), group.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Lost The Race", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("UPDATE connection_requests SET status = 'ACCEPTED'").
			WithArgs(sqlmock.AnyArg(), int32(5)).
			WillReturnRows(sqlmock.NewRows([]string{"sender_id", "receiver_id"}))
		mock.ExpectRollback()

		group, err := repo.AcceptAndFormGroup(ctx, 5, "Team_alice_bob", false)
		assert.ErrorIs(t, err, domain.ErrInvalidState)
		assert.Nil(t, group)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestConnectionRequestRepository_ListByReceiver(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewConnectionRequestRepository(db)
	ctx := context.Background()

	t.Run("Pending Only", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM connection_requests r").
			WithArgs(int32(2), domain.ConnectionRequestStatusPending).
			WillReturnRows(pendingRequestRow(5, 1, 2))

		reqs, err := repo.ListByReceiver(ctx, 2, domain.ConnectionRequestStatusPending)
		assert.NoError(t, err)
		assert.Len(t, reqs, 1)
		assert.Equal(t, domain.ConnectionRequestStatusPending, reqs[0].Status)
	})
}
