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

const serviceColumns = `id, business_id, name, duration_minutes, price_cents, currency, is_active, created_at, updated_at`

type ServiceReadStore struct {
	db db.DBTX
}

func NewServiceReadStore(db db.DBTX) *ServiceReadStore {
	return &ServiceReadStore{db: db}
}

func (r *ServiceReadStore) ListByBusiness(ctx context.Context, businessID uuid.UUID, activeOnly bool) ([]*queries.ServiceView, error) {
	rows, err := r.db.Query(ctx, `
SELECT `+serviceColumns+`
FROM services
WHERE business_id = $1 AND (NOT $2 OR is_active)
ORDER BY created_at, id`, businessID, activeOnly)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()

	items := []*queries.ServiceView{}
	for rows.Next() {
		v, err := scanService(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan service", err)
		}
		items = append(items, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	return items, nil
}

func (r *ServiceReadStore) FindByID(ctx context.Context, businessID, serviceID uuid.UUID) (*queries.ServiceView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+serviceColumns+` FROM services WHERE business_id = $1 AND id = $2`, businessID, serviceID)
	v, err := scanService(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service", err)
	}
	return v, nil
}

func scanService(row pgx.Row) (*queries.ServiceView, error) {
	var v queries.ServiceView
	err := row.Scan(&v.ID, &v.BusinessID, &v.Name, &v.DurationMinutes, &v.PriceCents, &v.Currency,
		&v.IsActive, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
