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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO app_users (id, email, display_name, role) VALUES ($1, $2, $3, $4)",
		userID, email, email, role)
	require.NoError(t, err)
	return userID
}

func CreateTestClient(t *testing.T, db DBLike, name string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO clients (name, phone, email) VALUES ($1, '11999990000', $2) RETURNING id",
		name, strings.ToLower(strings.ReplaceAll(name, " ", "."))+"@example.com").Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestPet(t *testing.T, db DBLike, clientID int64, name string, birthDate *time.Time) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO pets (name, client_id, species_id, birth_date) VALUES ($1, $2, (SELECT id FROM species WHERE name = 'Cão'), $3) RETURNING id",
		name, clientID, birthDate).Scan(&id)
	require.NoError(t, err)
	return id
}

// price is a decimal literal such as "45.00"
func CreateTestService(t *testing.T, db DBLike, name, price string, active bool) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO services (name, price, active) VALUES ($1, $2::numeric, $3) RETURNING id",
		name, price, active).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestProduct(t *testing.T, db DBLike, name, price string, active bool) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO products (name, price, active) VALUES ($1, $2::numeric, $3) RETURNING id",
		name, price, active).Scan(&id)
	require.NoError(t, err)
	return id
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO species (name) VALUES
		    ('Cão'), ('Gato'), ('Ave'), ('Roedor'), ('Réptil'), ('Outro')
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
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

	return SeedReferenceData(pool)
}
