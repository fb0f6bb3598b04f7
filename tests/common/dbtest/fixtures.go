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

	"service-marketplace/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both a pool and a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DefaultPassword is the plaintext behind every user created by CreateTestUser.
const DefaultPassword = "password123"

var (
	hashOnce    sync.Once
	defaultHash string
)

func passwordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		h, err := password.Hash(DefaultPassword)
		require.NoError(t, err)
		defaultHash = h
	})
	return defaultHash
}

func CreateTestUser(t *testing.T, db DBLike, email, role, status string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO users (id, email, password_hash, full_name, role, account_status)
		VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (email) DO NOTHING`,
		userID, email, passwordHash(t), "Test User", role, status)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID))
	}

	return userID
}

func CreateTestService(t *testing.T, db DBLike, providerID uuid.UUID, title string, priceCents int64, durationMinutes int) uuid.UUID {
	t.Helper()

	serviceID := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO services (id, provider_id, title, price_cents, duration_minutes, service_type)
		VALUES ($1, $2, $3, $4, $5, 'IN_PERSON')`,
		serviceID, providerID, title, priceCents, durationMinutes)
	require.NoError(t, err)

	return serviceID
}

// CreateTestSlot inserts an AVAILABLE slot covering [startsAt, startsAt+length) in UTC.
func CreateTestSlot(t *testing.T, db DBLike, serviceID uuid.UUID, startsAt time.Time, length time.Duration) uuid.UUID {
	t.Helper()

	slotID := uuid.New()
	startsAt = startsAt.UTC()
	endsAt := startsAt.Add(length)
	_, err := db.Exec(context.Background(), `INSERT INTO slots (id, service_id, slot_date, start_time, end_time, status)
		VALUES ($1, $2, $3::date, $4::time, $5::time, 'AVAILABLE')`,
		slotID, serviceID, startsAt.Format(time.DateOnly), startsAt.Format(time.TimeOnly), endsAt.Format(time.TimeOnly))
	require.NoError(t, err)

	return slotID
}

func CreateTestPlan(t *testing.T, db DBLike, name string, priceCents int64, durationDays int) uuid.UUID {
	t.Helper()

	planID := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO subscription_plans (id, name, price_cents, duration_days)
		VALUES ($1, $2, $3, $4)`,
		planID, name, priceCents, durationDays)
	require.NoError(t, err)

	return planID
}

// SlotStatus reads the current status column of a slot.
func SlotStatus(t *testing.T, db DBLike, slotID uuid.UUID) string {
	t.Helper()

	var status string
	require.NoError(t, db.QueryRow(context.Background(), "SELECT status FROM slots WHERE id = $1", slotID).Scan(&status))
	return status
}

// SeedReferenceData inserts the subscription plans every environment starts with.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO subscription_plans (id, name, description, price_cents, duration_days) VALUES
		    (gen_random_uuid(), 'Basic Monthly', 'Listed in search results', 1999, 30),
		    (gen_random_uuid(), 'Pro Yearly', 'Featured placement', 19999, 365);
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates all tables and reseeds reference data.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
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
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
