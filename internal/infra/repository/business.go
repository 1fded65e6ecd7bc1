package repository

import (
	"context"

	"slotbook/internal/domain/business"
	"slotbook/internal/infra"
	"slotbook/internal/infra/db"
)

const createBusinessSQL = `
INSERT INTO businesses (id, owner_id, name, slug, category, description, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

type BusinessRepository struct {
	db db.DBTX
}

func NewBusinessRepository(db db.DBTX) *BusinessRepository {
	return &BusinessRepository{db: db}
}

func (r *BusinessRepository) Create(ctx context.Context, b *business.Business) error {
	_, err := r.db.Exec(ctx, createBusinessSQL,
		b.ID(), b.OwnerID(), b.Name(), b.Slug().String(), b.Category().String(), b.Description(),
		b.IsActive(), b.CreatedAt(), b.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create business", err)
	}
	return nil
}
