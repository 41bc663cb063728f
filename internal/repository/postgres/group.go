package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/SHIV24116/Quick-Teams-web-app/internal/domain"
	"github.com/SHIV24116/Quick-Teams-web-app/internal/repository"
)

type groupRepository struct {
	db *sql.DB
}

func NewGroupRepository(db *sql.DB) repository.GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) GetByID(ctx context.Context, id int32) (*domain.Group, error) {
	g := &domain.Group{}
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx, `SELECT id, name, created_on FROM groups WHERE id = $1`, id).
		Scan(&g.ID, &g.Name, &createdOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	g.CreatedOn = createdOn.Format("2006-01-02")
	return g, nil
}

func (r *groupRepository) List(ctx context.Context) ([]domain.Group, error) {
	return r.queryGroups(ctx, `SELECT id, name, created_on FROM groups ORDER BY id`)
}

func (r *groupRepository) ListByMember(ctx context.Context, userID int32) ([]domain.Group, error) {
	query := `SELECT g.id, g.name, g.created_on
	          FROM groups g
	          JOIN group_members gm ON gm.group_id = g.id
	          WHERE gm.user_id = $1
	          ORDER BY g.id`
	return r.queryGroups(ctx, query, userID)
}

func (r *groupRepository) queryGroups(ctx context.Context, query string, args ...any) ([]domain.Group, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []domain.Group
	for rows.Next() {
		var g domain.Group
		var createdOn time.Time
		if err := rows.Scan(&g.ID, &g.Name, &createdOn); err != nil {
			return nil, err
		}
		g.CreatedOn = createdOn.Format("2006-01-02")
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func (r *groupRepository) ListMembers(ctx context.Context, groupID int32) ([]domain.User, error) {
	query := `SELECT u.id, u.username, u.name, u.email, u.skills, COALESCE(u.linkedin, ''), COALESCE(u.github, ''), COALESCE(u.education, ''), u.photo, u.availability, u.password_hash, u.created_on, u.updated_on
	          FROM users u
	          JOIN group_members gm ON gm.user_id = u.id
	          WHERE gm.group_id = $1
	          ORDER BY gm.added_on, u.id`
	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (r *groupRepository) AddMember(ctx context.Context, groupID, userID int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists int32
	err = tx.QueryRowContext(ctx, `SELECT id FROM groups WHERE id = $1`, groupID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}

	var member int32
	err = tx.QueryRowContext(ctx,
		`SELECT user_id FROM group_members WHERE group_id = $1 AND user_id = $2`,
		groupID, userID,
	).Scan(&member)
	if err == nil {
		return domain.ErrAlreadyMember
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO group_members (group_id, user_id, added_on) VALUES ($1, $2, $3)`,
		groupID, userID, time.Now(),
	); err != nil {
		return err
	}

	return tx.Commit()
}
