package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/SHIV24116/Quick-Teams-web-app/internal/domain"
	"github.com/SHIV24116/Quick-Teams-web-app/internal/repository"

	"github.com/lib/pq"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, username, name, email, skills, COALESCE(linkedin, ''), COALESCE(github, ''), COALESCE(education, ''), photo, availability, password_hash, created_on, updated_on`

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	u := &domain.User{}
	var photo sql.NullString
	var createdOn, updatedOn time.Time
	err := row.Scan(&u.ID, &u.Username, &u.Name, &u.Email, &u.Skills, &u.LinkedIn, &u.GitHub, &u.Education, &photo, &u.Availability, &u.PasswordHash, &createdOn, &updatedOn)
	if err != nil {
		return nil, err
	}
	if photo.Valid {
		u.Photo = &photo.String
	}
	u.CreatedOn = createdOn.Format("2006-01-02")
	u.UpdatedOn = updatedOn.Format("2006-01-02")
	return u, nil
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (username, name, email, skills, linkedin, github, education, photo, availability, password_hash, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	now := time.Now()
	u.CreatedOn = now.Format("2006-01-02")
	u.UpdatedOn = u.CreatedOn
	err := r.db.QueryRowContext(ctx, query,
		u.Username, u.Name, u.Email, u.Skills, u.LinkedIn, u.GitHub, u.Education, u.Photo, u.Availability, u.PasswordHash, now, now,
	).Scan(&u.ID)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		return domain.ErrUsernameTaken
	}
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return u, err
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(username) = LOWER($1)`
	u, err := scanUser(r.db.QueryRowContext(ctx, query, username))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return u, err
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET name=$1, email=$2, skills=$3, linkedin=$4, github=$5, education=$6, photo=$7, updated_on=$8 WHERE id=$9`
	now := time.Now()
	u.UpdatedOn = now.Format("2006-01-02")
	res, err := r.db.ExecContext(ctx, query, u.Name, u.Email, u.Skills, u.LinkedIn, u.GitHub, u.Education, u.Photo, now, u.ID)
	if err != nil {
		return err
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepository) SetAvailability(ctx context.Context, id int32, available bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET availability=$1, updated_on=$2 WHERE id=$3`, available, time.Now(), id)
	if err != nil {
		return err
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepository) ListAvailable(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE availability = TRUE ORDER BY username`
	rows, err := r.db.QueryContext(ctx, query)
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

func (r *userRepository) SearchBySkills(ctx context.Context, skills []string) ([]domain.User, error) {
	if len(skills) == 0 {
		return r.ListAvailable(ctx)
	}

	var sb strings.Builder
	sb.WriteString(`SELECT ` + userColumns + ` FROM users WHERE availability = TRUE`)
	args := make([]any, 0, len(skills))
	for i, skill := range skills {
		sb.WriteString(` AND skills ILIKE $` + strconv.Itoa(i+1))
		args = append(args, "%"+skill+"%")
	}
	sb.WriteString(` ORDER BY username`)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
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
