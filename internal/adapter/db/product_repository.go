package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"workdeck/internal/core/domain"
	"workdeck/internal/core/ports"
)

const selectProductsQuery = `
SELECT id, name, category, purchase_date, warranty_expiry_date, price, notes, details, created_at, updated_at
FROM products
`

type ProductRepository struct {
	db *sqlx.DB
}

type productRow struct {
	ID                 uint64          `db:"id"`
	Name               string          `db:"name"`
	Category           string          `db:"category"`
	PurchaseDate       sql.NullTime    `db:"purchase_date"`
	WarrantyExpiryDate sql.NullTime    `db:"warranty_expiry_date"`
	Price              sql.NullFloat64 `db:"price"`
	Notes              sql.NullString  `db:"notes"`
	Details            []byte          `db:"details"`
	CreatedAt          time.Time       `db:"created_at"`
	UpdatedAt          time.Time       `db:"updated_at"`
}

var _ ports.ProductRepository = (*ProductRepository)(nil)

func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) List(ctx context.Context, category *domain.ProductCategory) ([]domain.Product, error) {
	query := selectProductsQuery
	args := make([]any, 0, 1)
	if category != nil {
		query += "WHERE category = ?\n"
		args = append(args, string(*category))
	}
	query += "ORDER BY id;"

	var rows []productRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		product, err := mapProductRow(row)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}

func (r *ProductRepository) Get(ctx context.Context, id uint64) (domain.Product, error) {
	var row productRow
	err := r.db.GetContext(ctx, &row, selectProductsQuery+"WHERE id = ?;", id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, domain.ErrProductNotFound
	}
	if err != nil {
		return domain.Product{}, err
	}
	return mapProductRow(row)
}

func (r *ProductRepository) Create(ctx context.Context, input domain.CreateProductInput) (domain.Product, error) {
	details, err := json.Marshal(input.Details)
	if err != nil {
		return domain.Product{}, err
	}

	result, err := r.db.ExecContext(ctx,
		"INSERT INTO products (name, category, purchase_date, warranty_expiry_date, price, notes, details) VALUES (?, ?, ?, ?, ?, ?, ?);",
		input.Name, string(input.Category), input.PurchaseDate, input.WarrantyExpiryDate, input.Price, input.Notes, details)
	if err != nil {
		return domain.Product{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Product{}, err
	}
	return r.Get(ctx, uint64(id))
}

func (r *ProductRepository) Update(ctx context.Context, id uint64, input domain.UpdateProductInput) (domain.Product, error) {
	sets := make([]string, 0, 7)
	args := make([]any, 0, 7)

	if input.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *input.Name)
	}
	if input.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, string(*input.Category))
	}
	if input.PurchaseDateSet {
		sets = append(sets, "purchase_date = ?")
		args = append(args, input.PurchaseDate)
	}
	if input.WarrantyExpiryDateSet {
		sets = append(sets, "warranty_expiry_date = ?")
		args = append(args, input.WarrantyExpiryDate)
	}
	if input.PriceSet {
		sets = append(sets, "price = ?")
		args = append(args, input.Price)
	}
	if input.NotesSet {
		sets = append(sets, "notes = ?")
		args = append(args, input.Notes)
	}
	if input.Details != nil {
		details, err := json.Marshal(*input.Details)
		if err != nil {
			return domain.Product{}, err
		}
		sets = append(sets, "details = ?")
		args = append(args, details)
	}

	if len(sets) > 0 {
		args = append(args, id)
		query := "UPDATE products SET " + strings.Join(sets, ", ") + " WHERE id = ?;"
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return domain.Product{}, err
		}
	}

	return r.Get(ctx, id)
}

func (r *ProductRepository) Delete(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM products WHERE id = ?;", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func mapProductRow(row productRow) (domain.Product, error) {
	product := domain.Product{
		ID:        row.ID,
		Name:      row.Name,
		Category:  domain.ProductCategory(row.Category),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.PurchaseDate.Valid {
		value := row.PurchaseDate.Time
		product.PurchaseDate = &value
	}
	if row.WarrantyExpiryDate.Valid {
		value := row.WarrantyExpiryDate.Time
		product.WarrantyExpiryDate = &value
	}
	if row.Price.Valid {
		value := row.Price.Float64
		product.Price = &value
	}
	if row.Notes.Valid {
		value := row.Notes.String
		product.Notes = &value
	}
	if len(row.Details) > 0 {
		if err := json.Unmarshal(row.Details, &product.Details); err != nil {
			return domain.Product{}, err
		}
	}

	return product, nil
}
