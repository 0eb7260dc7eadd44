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

const selectSubscriptionsQuery = `
SELECT id, name, category, frequency, amount, start_date, next_renewal_date, is_active, created_at, updated_at
FROM subscriptions
`

type SubscriptionRepository struct {
	db *sqlx.DB
}

type subscriptionRow struct {
	ID              uint64         `db:"id"`
	Name            string         `db:"name"`
	Category        sql.NullString `db:"category"`
	Frequency       string         `db:"frequency"`
	Amount          float64        `db:"amount"`
	StartDate       sql.NullTime   `db:"start_date"`
	NextRenewalDate sql.NullTime   `db:"next_renewal_date"`
	IsActive        bool           `db:"is_active"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

var _ ports.SubscriptionRepository = (*SubscriptionRepository)(nil)

func NewSubscriptionRepository(db *sqlx.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) List(ctx context.Context, activeOnly bool) ([]domain.Subscription, error) {
	query := selectSubscriptionsQuery
	if activeOnly {
		query += "WHERE is_active = TRUE\n"
	}
	query += "ORDER BY id;"

	var rows []subscriptionRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	subscriptions := make([]domain.Subscription, 0, len(rows))
	for _, row := range rows {
		subscriptions = append(subscriptions, mapSubscriptionRow(row))
	}
	return subscriptions, nil
}

func (r *SubscriptionRepository) Get(ctx context.Context, id uint64) (domain.Subscription, error) {
	var row subscriptionRow
	err := r.db.GetContext(ctx, &row, selectSubscriptionsQuery+"WHERE id = ?;", id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Subscription{}, domain.ErrSubscriptionNotFound
	}
	if err != nil {
		return domain.Subscription{}, err
	}
	return mapSubscriptionRow(row), nil
}

func (r *SubscriptionRepository) Create(ctx context.Context, input domain.CreateSubscriptionInput) (domain.Subscription, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO subscriptions (name, category, frequency, amount, start_date, next_renewal_date, is_active) VALUES (?, ?, ?, ?, ?, ?, ?);",
		input.Name, input.Category, string(input.Frequency), input.Amount, input.StartDate, input.NextRenewalDate, input.IsActive)
	if err != nil {
		return domain.Subscription{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Subscription{}, err
	}
	return r.Get(ctx, uint64(id))
}

func (r *SubscriptionRepository) Update(ctx context.Context, id uint64, input domain.UpdateSubscriptionInput) (domain.Subscription, error) {
	sets := make([]string, 0, 7)
	args := make([]any, 0, 7)

	if input.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *input.Name)
	}
	if input.CategorySet {
		sets = append(sets, "category = ?")
		args = append(args, input.Category)
	}
	if input.Frequency != nil {
		sets = append(sets, "frequency = ?")
		args = append(args, string(*input.Frequency))
	}
	if input.Amount != nil {
		sets = append(sets, "amount = ?")
		args = append(args, *input.Amount)
	}
	if input.StartDateSet {
		sets = append(sets, "start_date = ?")
		args = append(args, input.StartDate)
	}
	if input.NextRenewalDateSet {
		sets = append(sets, "next_renewal_date = ?")
		args = append(args, input.NextRenewalDate)
	}
	if input.IsActive != nil {
		sets = append(sets, "is_active = ?")
		args = append(args, *input.IsActive)
	}

	if len(sets) > 0 {
		args = append(args, id)
		query := "UPDATE subscriptions SET " + strings.Join(sets, ", ") + " WHERE id = ?;"
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return domain.Subscription{}, err
		}
	}

	return r.Get(ctx, id)
}

func (r *SubscriptionRepository) Delete(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM subscriptions WHERE id = ?;", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrSubscriptionNotFound
	}
	return nil
}

func mapSubscriptionRow(row subscriptionRow) domain.Subscription {
	subscription := domain.Subscription{
		ID:        row.ID,
		Name:      row.Name,
		Frequency: domain.SubscriptionFrequency(row.Frequency),
		Amount:    row.Amount,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.Category.Valid {
		value := row.Category.String
		subscription.Category = &value
	}
	if row.StartDate.Valid {
		value := row.StartDate.Time
		subscription.StartDate = &value
	}
	if row.NextRenewalDate.Valid {
		value := row.NextRenewalDate.Time
		subscription.NextRenewalDate = &value
	}

	return subscription
}
