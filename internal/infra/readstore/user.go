package readstore

import (
	"context"

	"slotbook/internal/infra"
	"slotbook/internal/infra/db"
	"slotbook/internal/pkg/pgconv"
	"slotbook/internal/usecase/queries"
	"slotbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const findUserByIDSQL = `
SELECT u.id, u.email, u.role, b.id, u.is_active
FROM users u
LEFT JOIN businesses b ON b.owner_id = u.id
WHERE u.id = $1`

const findUserCredentialsSQL = `
SELECT id, email, role, password_hash, is_active
FROM users
WHERE email = $1`

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var (
		v          queries.AuthorizedUserView
		businessID pgtype.UUID
	)
	err := r.db.QueryRow(ctx, findUserByIDSQL, id).Scan(&v.ID, &v.Email, &v.Role, &businessID, &v.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	v.BusinessID = pgconv.UUIDPtrFromPgtype(businessID)
	return &v, nil
}

// FindCredentials returns the stored password hash alongside the account so
// login can verify it. Inactive accounts are returned too.
func (r *UserReadStore) FindCredentials(ctx context.Context, email string) (*shared.UserCredentials, error) {
	var c shared.UserCredentials
	err := r.db.QueryRow(ctx, findUserCredentialsSQL, email).Scan(&c.ID, &c.Email, &c.Role, &c.PasswordHash, &c.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return &c, nil
}
