package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/pharmatrack/inventory-system/internal/core/domain"
)

const drugColumns = "id, name, dosage, quantity, price, brand, location"

// DrugRepository persists the inventory ledger in the drugs table.
type DrugRepository struct {
	db DB
}

func NewDrugRepository(db DB) *DrugRepository {
	return &DrugRepository{db: db}
}

// List returns all drugs ordered by id ascending.
func (r *DrugRepository) List(ctx context.Context) ([]domain.Drug, error) {
	query, args, err := psql.Select(drugColumns).
		From("drugs").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list drugs: %w", err)
	}
	defer rows.Close()

	drugs := make([]domain.Drug, 0)
	for rows.Next() {
		var d domain.Drug
		if err := rows.Scan(&d.ID, &d.Name, &d.Dosage, &d.Quantity, &d.Price, &d.Brand, &d.Location); err != nil {
			return nil, fmt.Errorf("scan drug: %w", err)
		}
		drugs = append(drugs, d)
	}
	return drugs, rows.Err()
}

func (r *DrugRepository) GetByID(ctx context.Context, id int64) (*domain.Drug, error) {
	query, args, err := psql.Select(drugColumns).
		From("drugs").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	drug, err := scanDrug(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDrugNotFound
		}
		return nil, fmt.Errorf("get drug: %w", err)
	}
	return drug, nil
}

func (r *DrugRepository) Create(ctx context.Context, drug *domain.Drug) (*domain.Drug, error) {
	query, args, err := psql.Insert("drugs").
		Columns("name", "dosage", "quantity", "price", "brand", "location").
		Values(drug.Name, drug.Dosage, drug.Quantity, drug.Price, drug.Brand, drug.Location).
		Suffix("RETURNING " + drugColumns).
		ToSql()
	if err != nil {
		return nil, err
	}

	created, err := scanDrug(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("insert drug: %w", err)
	}
	return created, nil
}

// Update replaces every field of the identified drug.
func (r *DrugRepository) Update(ctx context.Context, drug *domain.Drug) (*domain.Drug, error) {
	query, args, err := psql.Update("drugs").
		Set("name", drug.Name).
		Set("dosage", drug.Dosage).
		Set("quantity", drug.Quantity).
		Set("price", drug.Price).
		Set("brand", drug.Brand).
		Set("location", drug.Location).
		Where(sq.Eq{"id": drug.ID}).
		Suffix("RETURNING " + drugColumns).
		ToSql()
	if err != nil {
		return nil, err
	}

	updated, err := scanDrug(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDrugNotFound
		}
		return nil, fmt.Errorf("update drug: %w", err)
	}
	return updated, nil
}

func (r *DrugRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.Delete("drugs").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete drug: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDrugNotFound
	}
	return nil
}

// Sell decrements quantity by qty in a single conditional update. The
// quantity >= qty guard makes the check-and-decrement one indivisible
// statement, so interleaved sales of the same drug serialize on the row
// and stock can never go negative.
func (r *DrugRepository) Sell(ctx context.Context, id int64, qty int) (*domain.Drug, error) {
	query, args, err := psql.Update("drugs").
		Set("quantity", sq.Expr("quantity - ?", qty)).
		Where(sq.Eq{"id": id}).
		Where(sq.GtOrEq{"quantity": qty}).
		Suffix("RETURNING " + drugColumns).
		ToSql()
	if err != nil {
		return nil, err
	}

	sold, err := scanDrug(r.db.QueryRow(ctx, query, args...))
	if err == nil {
		return sold, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("sell drug: %w", err)
	}

	// Zero rows: either the drug is gone or stock does not cover the
	// request. A follow-up read disambiguates and captures the current
	// quantity for the error.
	current, getErr := r.GetByID(ctx, id)
	if getErr != nil {
		return nil, getErr
	}
	return nil, &domain.InsufficientStockError{Available: current.Quantity}
}

func scanDrug(row pgx.Row) (*domain.Drug, error) {
	var d domain.Drug
	if err := row.Scan(&d.ID, &d.Name, &d.Dosage, &d.Quantity, &d.Price, &d.Brand, &d.Location); err != nil {
		return nil, err
	}
	return &d, nil
}
