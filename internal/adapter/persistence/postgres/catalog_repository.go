package postgres

import (
	"context"

	"workshop_xpto/internal/domain/entities"
	"workshop_xpto/internal/domain/errs"
	"workshop_xpto/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
)

const catalogColumns = `id::text, name, category, price::text`

type CatalogRepository struct {
	db DB
}

var _ interfaces.ICatalogRepository = (*CatalogRepository)(nil)

func NewCatalogRepository(db DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) List(ctx context.Context) ([]entities.CatalogEntry, error) {
	rows, err := r.db.Query(ctx, `SELECT `+catalogColumns+` FROM catalog_entries ORDER BY name`)
	if err != nil {
		return nil, storeErr(err, "list catalog")
	}
	defer rows.Close()

	var out []entities.CatalogEntry
	for rows.Next() {
		e, err := scanCatalogEntry(rows)
		if err != nil {
			return nil, storeErr(err, "scan catalog entry")
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err, "list catalog")
	}
	return out, nil
}

func (r *CatalogRepository) FindByName(ctx context.Context, name string) (entities.CatalogEntry, error) {
	return r.getOne(ctx, `SELECT `+catalogColumns+` FROM catalog_entries WHERE name = $1`, name)
}

func (r *CatalogRepository) GetByID(ctx context.Context, id string) (entities.CatalogEntry, error) {
	return r.getOne(ctx, `SELECT `+catalogColumns+` FROM catalog_entries WHERE id::text = $1`, id)
}

func (r *CatalogRepository) Create(ctx context.Context, e entities.CatalogEntry) (entities.CatalogEntry, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO catalog_entries (id, name, category, price) VALUES ($1, $2, $3, $4::numeric)`,
		e.ID, e.Name, string(e.Category), e.Price.String(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return entities.CatalogEntry{}, errs.DuplicateCatalogName(e.Name)
		}
		return entities.CatalogEntry{}, storeErr(err, "insert catalog entry")
	}
	return e, nil
}

func (r *CatalogRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM catalog_entries WHERE id::text = $1`, id)
	if err != nil {
		return false, storeErr(err, "delete catalog entry")
	}
	return tag.RowsAffected() > 0, nil
}

func (r *CatalogRepository) getOne(ctx context.Context, query string, arg string) (entities.CatalogEntry, error) {
	e, err := scanCatalogEntry(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if isNoRows(err) {
			return entities.CatalogEntry{}, nil
		}
		return entities.CatalogEntry{}, storeErr(err, "get catalog entry")
	}
	return e, nil
}

func scanCatalogEntry(row pgx.Row) (entities.CatalogEntry, error) {
	var (
		e               entities.CatalogEntry
		category, price string
	)
	if err := row.Scan(&e.ID, &e.Name, &category, &price); err != nil {
		return entities.CatalogEntry{}, err
	}
	e.Category = entities.CategoryService
	if c, ok := entities.ParseCategory(category); ok {
		e.Category = c
	}
	e.Price = parseDecimal(price)
	return e, nil
}
