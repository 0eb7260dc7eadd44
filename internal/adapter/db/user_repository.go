package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"workdeck/internal/core/domain"
	"workdeck/internal/core/ports"
)

const selectUsersQuery = `
SELECT id, name, email, role, password_hash, avatar_color, is_active, created_at, updated_at
FROM users
`

const mysqlDuplicateEntry = 1062

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID           uint64         `db:"id"`
	Name         string         `db:"name"`
	Email        string         `db:"email"`
	Role         string         `db:"role"`
	PasswordHash sql.NullString `db:"password_hash"`
	AvatarColor  sql.NullString `db:"avatar_color"`
	IsActive     bool           `db:"is_active"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var rows []userRow
	if err := r.db.SelectContext(ctx, &rows, selectUsersQuery+"ORDER BY id;"); err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, mapUserRow(row))
	}
	return users, nil
}

func (r *UserRepository) Get(ctx context.Context, id uint64) (domain.User, error) {
	return r.getBy(ctx, "WHERE id = ?;", id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.getBy(ctx, "WHERE email = ?;", email)
}

func (r *UserRepository) GetByName(ctx context.Context, name string) (domain.User, error) {
	return r.getBy(ctx, "WHERE name = ?;", name)
}

func (r *UserRepository) getBy(ctx context.Context, where string, arg any) (domain.User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row, selectUsersQuery+where, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return mapUserRow(row), nil
}

func (r *UserRepository) Create(ctx context.Context, input domain.CreateUserInput, passwordHash *string) (domain.User, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO users (name, email, role, password_hash, avatar_color) VALUES (?, ?, ?, ?, ?);",
		input.Name, input.Email, string(input.Role), passwordHash, input.AvatarColor)
	if err != nil {
		if isDuplicateEntry(err) {
			return domain.User{}, domain.ErrEmailTaken
		}
		return domain.User{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.User{}, err
	}
	return r.Get(ctx, uint64(id))
}

func (r *UserRepository) Update(ctx context.Context, id uint64, input domain.UpdateUserInput, passwordHash *string) (domain.User, error) {
	sets := make([]string, 0, 6)
	args := make([]any, 0, 6)

	if input.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *input.Name)
	}
	if input.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, *input.Email)
	}
	if input.Role != nil {
		sets = append(sets, "role = ?")
		args = append(args, string(*input.Role))
	}
	if passwordHash != nil {
		sets = append(sets, "password_hash = ?")
		args = append(args, *passwordHash)
	}
	if input.AvatarColor != nil {
		sets = append(sets, "avatar_color = ?")
		args = append(args, *input.AvatarColor)
	}
	if input.IsActive != nil {
		sets = append(sets, "is_active = ?")
		args = append(args, *input.IsActive)
	}

	if len(sets) > 0 {
		args = append(args, id)
		query := "UPDATE users SET " + strings.Join(sets, ", ") + " WHERE id = ?;"
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			if isDuplicateEntry(err) {
				return domain.User{}, domain.ErrEmailTaken
			}
			return domain.User{}, err
		}
	}

	return r.Get(ctx, id)
}

func (r *UserRepository) Delete(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?;", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}

func mapUserRow(row userRow) domain.User {
	user := domain.User{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Role:      domain.UserRole(row.Role),
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.PasswordHash.Valid {
		value := row.PasswordHash.String
		user.PasswordHash = &value
	}
	if row.AvatarColor.Valid {
		value := row.AvatarColor.String
		user.AvatarColor = &value
	}

	return user
}
