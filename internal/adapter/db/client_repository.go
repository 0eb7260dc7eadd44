package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"workdeck/internal/core/domain"
	"workdeck/internal/core/ports"
)

const selectClientsQuery = `
SELECT id, name, email, phone, company, status, tags, created_at, updated_at
FROM clients
`

const insertClientQuery = `
INSERT INTO clients (name, email, phone, company, status, tags)
VALUES (?, ?, ?, ?, ?, ?);
`

type ClientRepository struct {
	db *sqlx.DB
}

type clientRow struct {
	ID        uint64         `db:"id"`
	Name      string         `db:"name"`
	Email     sql.NullString `db:"email"`
	Phone     sql.NullString `db:"phone"`
	Company   sql.NullString `db:"company"`
	Status    string         `db:"status"`
	Tags      []byte         `db:"tags"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

var _ ports.ClientRepository = (*ClientRepository)(nil)

func NewClientRepository(db *sqlx.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) List(ctx context.Context, filter domain.ClientFilter) ([]domain.Client, error) {
	query := selectClientsQuery
	clauses := make([]string, 0, 2)
	args := make([]any, 0, 3)

	if filter.Status != nil {
		clauses = append(clauses, "status = ?")
		args = append(args, string(*filter.Status))
	}
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		clauses = append(clauses, "(name LIKE ? OR company LIKE ?)")
		args = append(args, pattern, pattern)
	}

	if len(clauses) > 0 {
		query += "WHERE " + strings.Join(clauses, " AND ") + "\n"
	}
	query += "ORDER BY id;"

	var rows []clientRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	clients := make([]domain.Client, 0, len(rows))
	for _, row := range rows {
		client, err := mapClientRow(row)
		if err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}
	return clients, nil
}

func (r *ClientRepository) Get(ctx context.Context, id uint64) (domain.Client, error) {
	var row clientRow
	err := r.db.GetContext(ctx, &row, selectClientsQuery+"WHERE id = ?;", id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Client{}, domain.ErrClientNotFound
	}
	if err != nil {
		return domain.Client{}, err
	}
	return mapClientRow(row)
}

func (r *ClientRepository) Create(ctx context.Context, input domain.CreateClientInput) (domain.Client, error) {
	tags, err := encodeStringList(input.Tags)
	if err != nil {
		return domain.Client{}, err
	}

	result, err := r.db.ExecContext(ctx, insertClientQuery,
		input.Name, input.Email, input.Phone, input.Company, string(input.Status), tags)
	if err != nil {
		return domain.Client{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Client{}, err
	}
	return r.Get(ctx, uint64(id))
}

func (r *ClientRepository) Update(ctx context.Context, id uint64, input domain.UpdateClientInput) (domain.Client, error) {
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
	if input.Phone != nil {
		sets = append(sets, "phone = ?")
		args = append(args, *input.Phone)
	}
	if input.Company != nil {
		sets = append(sets, "company = ?")
		args = append(args, *input.Company)
	}
	if input.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*input.Status))
	}
	if input.TagsSet {
		tags, err := encodeStringList(input.Tags)
		if err != nil {
			return domain.Client{}, err
		}
		sets = append(sets, "tags = ?")
		args = append(args, tags)
	}

	if len(sets) > 0 {
		args = append(args, id)
		query := "UPDATE clients SET " + strings.Join(sets, ", ") + " WHERE id = ?;"
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return domain.Client{}, err
		}
	}

	return r.Get(ctx, id)
}

func (r *ClientRepository) Delete(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM clients WHERE id = ?;", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

func mapClientRow(row clientRow) (domain.Client, error) {
	client := domain.Client{
		ID:        row.ID,
		Name:      row.Name,
		Status:    domain.ClientStatus(row.Status),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.Email.Valid {
		value := row.Email.String
		client.Email = &value
	}
	if row.Phone.Valid {
		value := row.Phone.String
		client.Phone = &value
	}
	if row.Company.Valid {
		value := row.Company.String
		client.Company = &value
	}

	tags, err := decodeStringList(row.Tags)
	if err != nil {
		return domain.Client{}, err
	}
	client.Tags = tags

	return client, nil
}
