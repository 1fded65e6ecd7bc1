//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"slotbook/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		kind       infra.RepositoryErrorKind
		constraint string
	}{
		{name: "no rows", err: pgx.ErrNoRows, kind: infra.KindNotFound},
		{
			name:       "unique violation",
			err:        &pgconn.PgError{Code: "23505", ConstraintName: "uq_bookings_business_start_confirmed"},
			kind:       infra.KindDuplicateKey,
			constraint: "uq_bookings_business_start_confirmed",
		},
		{
			name:       "exclusion violation",
			err:        &pgconn.PgError{Code: "23P01", ConstraintName: "bookings_no_overlap"},
			kind:       infra.KindConflict,
			constraint: "bookings_no_overlap",
		},
		{name: "foreign key", err: &pgconn.PgError{Code: "23503"}, kind: infra.KindForeignKeyViolated},
		{name: "other", err: errors.New("connection reset"), kind: infra.KindDBFailure},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op", tc.err)
			assert.True(t, infra.IsKind(err, tc.kind), err.Error())
			assert.Equal(t, tc.constraint, infra.ConstraintOf(err))
			assert.ErrorIs(t, err, tc.err)
		})
	}

	t.Run("explicit kind wins", func(t *testing.T) {
		err := infra.WrapRepoErr("op", errors.New("x"), infra.KindNotFound)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
