package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// NewTestDB creates a new in-memory SQLite database for testing
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")

	err = db.RunMigrations()
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// seedProject inserts a minimal project row directly, for tests that only
// need a foreign-key target.
func seedProject(t *testing.T, db *DB, ownerID, id string) {
	t.Helper()
	now := time.Now().UTC()
	_, err := db.Exec(`
		INSERT INTO projects (id, owner_id, title, status, created_at, updated_at)
		VALUES (?, ?, 'seed', 'waiting', ?, ?)`, id, ownerID, now, now)
	require.NoError(t, err)
}

// TestMigrations verifies that migrations run successfully
func TestMigrations(t *testing.T) {
	db := NewTestDB(t)

	tables := []string{
		"users",
		"projects",
		"comments",
	}

	for _, table := range tables {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		require.NoError(t, err, "failed to query table %s", table)
		require.Equal(t, 1, count, "table %s not found", table)
	}
}

// TestForeignKeys verifies that foreign key constraints are enabled
func TestForeignKeys(t *testing.T) {
	db := NewTestDB(t)

	var enabled int
	err := db.QueryRow("PRAGMA foreign_keys").Scan(&enabled)
	require.NoError(t, err)
	require.Equal(t, 1, enabled, "foreign keys not enabled")
}

// TestStatusConstraint verifies the projects status check constraint.
func TestStatusConstraint(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := db.ExecContext(ctx, `
		INSERT INTO projects (id, owner_id, title, status, created_at, updated_at)
		VALUES ('p1', 'u1', 'bad status', 'done', ?, ?)`, now, now)
	require.Error(t, err, "unknown status should be rejected")

	for _, status := range []string{"waiting", "in_progress", "closed"} {
		_, err := db.ExecContext(ctx, `
			INSERT INTO projects (id, owner_id, title, status, created_at, updated_at)
			VALUES (?, 'u1', 'ok', ?, ?, ?)`, "p-"+status, status, now, now)
		require.NoError(t, err, "status %s should be accepted", status)
	}
}

// TestCommentCascade verifies comments are removed with their project.
func TestCommentCascade(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	seedProject(t, db, "u1", "p1")

	_, err := db.ExecContext(ctx, `
		INSERT INTO comments (id, owner_id, project_id, author_id, author_email, content, created_at)
		VALUES ('c1', 'u1', 'p1', 'u2', 'a@example.com', 'hi', ?)`, time.Now().UTC())
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `DELETE FROM projects WHERE owner_id = 'u1' AND id = 'p1'`)
	require.NoError(t, err)

	var count int
	err = db.QueryRow(`SELECT COUNT(*) FROM comments WHERE owner_id = 'u1' AND project_id = 'p1'`).Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 0, count, "comments should cascade with the project")
}

// TestCommentRequiresProject verifies the composite foreign key.
func TestCommentRequiresProject(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `
		INSERT INTO comments (id, owner_id, project_id, author_id, author_email, content, created_at)
		VALUES ('c1', 'u1', 'missing', 'u2', 'a@example.com', 'hi', ?)`, time.Now().UTC())
	require.Error(t, err, "comment on a missing project should be rejected")
}
