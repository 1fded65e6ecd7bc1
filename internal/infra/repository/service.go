package repository

import (
	"context"

	"slotbook/internal/domain/catalog"
	"slotbook/internal/infra"
	"slotbook/internal/infra/db"
)

const createServiceSQL = `
INSERT INTO services (id, business_id, name, duration_minutes, price_cents, currency, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

// Price and currency are fixed at creation and never written again.
const updateServiceSQL = `
UPDATE services
SET name = $3, duration_minutes = $4, is_active = $5, updated_at = $6
WHERE business_id = $1 AND id = $2`

type ServiceRepository struct {
	db db.DBTX
}

func NewServiceRepository(db db.DBTX) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) Create(ctx context.Context, s *catalog.Service) error {
	_, err := r.db.Exec(ctx, createServiceSQL,
		s.ID(), s.BusinessID(), s.Name(), s.DurationMinutes(), s.Price().Cents(), s.Price().Currency(),
		s.IsActive(), s.CreatedAt(), s.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create service", err)
	}
	return nil
}

func (r *ServiceRepository) Update(ctx context.Context, s *catalog.Service) error {
	tag, err := r.db.Exec(ctx, updateServiceSQL,
		s.BusinessID(), s.ID(), s.Name(), s.DurationMinutes(), s.IsActive(), s.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}
