package readstore

import (
	"slotbook/internal/pkg/pgconv"
	"slotbook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

// keysetArgs renders an optional keyset as two nullable query arguments.
func keysetArgs(after *queries.Keyset) (pgtype.Timestamptz, pgtype.UUID) {
	if after == nil {
		return pgtype.Timestamptz{}, pgtype.UUID{}
	}
	return pgconv.TimeToPgtype(after.At), pgtype.UUID{Bytes: after.ID, Valid: true}
}
