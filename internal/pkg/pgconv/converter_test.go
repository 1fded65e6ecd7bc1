//go:build unit

package pgconv_test

import (
	"testing"
	"time"

	"slotbook/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestTstzRange(t *testing.T) {
	from := time.Date(2025, 1, 15, 11, 0, 0, 0, time.UTC)
	r := pgconv.TstzRange(from, from.Add(90*time.Minute))

	assert.True(t, r.Valid)
	assert.Equal(t, pgtype.Inclusive, r.LowerType)
	assert.Equal(t, pgtype.Exclusive, r.UpperType)
	assert.Equal(t, from, r.Lower.Time)
}

func TestNullableConversions(t *testing.T) {
	assert.Nil(t, pgconv.StringPtrFromPgtype(pgtype.Text{}))
	assert.Nil(t, pgconv.TimePtrFromPgtype(pgtype.Timestamptz{}))
	assert.False(t, pgconv.Int4PtrToPgtype(nil).Valid)

	n := 4
	assert.Equal(t, int32(4), pgconv.Int4PtrToPgtype(&n).Int32)
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
}
