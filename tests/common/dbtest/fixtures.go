//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"slotbook/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const TestPassword = "password123"

var (
	hashOnce     sync.Once
	testPassHash string
)

func passwordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		h, err := password.NewHasher(4).Hash(TestPassword)
		require.NoError(t, err)
		testPassHash = h
	})
	return testPassHash
}

type Owner struct {
	UserID     uuid.UUID
	BusinessID uuid.UUID
	Email      string
	Slug       string
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()
	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, passwordHash(t), role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}
	return userID
}

// CreateTestOwner inserts an owner with an active business open Mon-Fri
// 10:00-18:00 UTC, break 13:00-13:30, buffer 10 and step 30.
func CreateTestOwner(t *testing.T, db DBLike, email, slug string) Owner {
	t.Helper()

	ctx := context.Background()
	o := Owner{UserID: CreateTestUser(t, db, email, "owner"), BusinessID: uuid.New(), Email: email, Slug: slug}

	_, err := db.Exec(ctx, "INSERT INTO businesses (id, owner_id, name, slug, category) VALUES ($1, $2, $3, $4, 'lash')",
		o.BusinessID, o.UserID, "Business "+slug, slug)
	require.NoError(t, err)

	_, err = db.Exec(ctx, `INSERT INTO availability_rules
		(business_id, timezone, working_days, start_minute, end_minute, break_start, break_end, buffer_minutes, slot_step_minutes)
		VALUES ($1, 'UTC', '{1,2,3,4,5}', 600, 1080, 780, 810, 10, 30)`, o.BusinessID)
	require.NoError(t, err)
	return o
}

func CreateTestService(t *testing.T, db DBLike, businessID uuid.UUID, name string, durationMinutes int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO services (id, business_id, name, duration_minutes, price_cents, currency) VALUES ($1, $2, $3, $4, 5000, 'EUR')",
		id, businessID, name, durationMinutes)
	require.NoError(t, err)
	return id
}

// SetBusinessActive toggles a business; inactive businesses are hidden from the public pages.
func SetBusinessActive(t *testing.T, db DBLike, businessID uuid.UUID, active bool) {
	t.Helper()
	_, err := db.Exec(context.Background(), "UPDATE businesses SET is_active = $2 WHERE id = $1", businessID, active)
	require.NoError(t, err)
}

// CountRows is a test shortcut; table is never user input.
func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()
	q := "SELECT count(*) FROM " + table
	if where != "" {
		q += " WHERE " + where
	}
	var n int
	require.NoError(t, db.QueryRow(context.Background(), q, args...).Scan(&n))
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}
	return nil
}
