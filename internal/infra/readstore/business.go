package readstore

import (
	"context"

	"slotbook/internal/infra"
	"slotbook/internal/infra/db"
	"slotbook/internal/pkg/pgconv"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const businessColumns = `id, owner_id, name, slug, category, description, is_active, created_at`

const listBusinessesSQL = `
SELECT b.id, b.name, b.slug, b.category, b.description,
       COALESCE(r.total, 0), COALESCE(r.average, 0), b.created_at
FROM businesses b
LEFT JOIN LATERAL (
    SELECT count(*)::int AS total, avg(rating)::float8 AS average
    FROM reviews
    WHERE business_id = b.id
) r ON true
WHERE b.is_active
  AND ($1::text IS NULL OR b.category = $1)
  AND ($2::timestamptz IS NULL OR (b.created_at, b.id) < ($2, $3::uuid))
ORDER BY b.created_at DESC, b.id DESC
LIMIT $4`

type BusinessReadStore struct {
	db db.DBTX
}

func NewBusinessReadStore(db db.DBTX) *BusinessReadStore {
	return &BusinessReadStore{db: db}
}

func (r *BusinessReadStore) FindBySlug(ctx context.Context, slug string) (*queries.BusinessView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+businessColumns+` FROM businesses WHERE slug = $1`, slug)
	return scanBusiness(row, "failed to find business by slug")
}

func (r *BusinessReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*queries.BusinessView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+businessColumns+` FROM businesses WHERE owner_id = $1`, ownerID)
	return scanBusiness(row, "failed to find business by owner")
}

// List returns active businesses, newest first.
func (r *BusinessReadStore) List(ctx context.Context, filters queries.DirectoryFilters, after *queries.Keyset, limit int32) ([]*queries.BusinessListItem, error) {
	afterAt, afterID := keysetArgs(after)
	rows, err := r.db.Query(ctx, listBusinessesSQL, filters.Category, afterAt, afterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list businesses", err)
	}
	defer rows.Close()

	var items []*queries.BusinessListItem
	for rows.Next() {
		var it queries.BusinessListItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Slug, &it.Category, &it.Description,
			&it.TotalReviews, &it.AverageRating, &it.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan business", err)
		}
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list businesses", err)
	}
	return items, nil
}

func scanBusiness(row pgx.Row, msg string) (*queries.BusinessView, error) {
	var v queries.BusinessView
	err := row.Scan(&v.ID, &v.OwnerID, &v.Name, &v.Slug, &v.Category, &v.Description, &v.IsActive, &v.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("business not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr(msg, err)
	}
	return &v, nil
}
