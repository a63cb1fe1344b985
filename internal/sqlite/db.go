package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations applies the schema.
func (db *DB) RunMigrations() error {
	migration := `
-- Users (consumed for viewer resolution only)
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL,
    role TEXT NOT NULL DEFAULT 'member',
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Projects, keyed by (owner_id, id): the projects/{owner}/userProjects/{id} layout
CREATE TABLE IF NOT EXISTS projects (
    id TEXT NOT NULL,
    owner_id TEXT NOT NULL,
    title TEXT NOT NULL,
    status TEXT NOT NULL CHECK(status IN ('waiting', 'in_progress', 'closed')),
    classification TEXT,
    channel TEXT,
    service TEXT,
    category TEXT,
    deployment_type TEXT,
    description TEXT NOT NULL DEFAULT '',
    request_date TIMESTAMP,
    start_date TIMESTAMP,
    end_date TIMESTAMP,
    completion_date TIMESTAMP,
    progress INTEGER NOT NULL DEFAULT 0,
    planning_name TEXT NOT NULL DEFAULT '',
    planning_effort REAL,
    design_name TEXT NOT NULL DEFAULT '',
    design_effort REAL,
    publishing_name TEXT NOT NULL DEFAULT '',
    publishing_effort REAL,
    development_name TEXT NOT NULL DEFAULT '',
    development_effort REAL,
    total_effort REAL,
    plan_link TEXT,
    design_link TEXT,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL,
    PRIMARY KEY (owner_id, id)
);
CREATE INDEX IF NOT EXISTS idx_owner_projects ON projects(owner_id, created_at);

-- Comments, nested under a project
CREATE TABLE IF NOT EXISTS comments (
    id TEXT PRIMARY KEY,
    owner_id TEXT NOT NULL,
    project_id TEXT NOT NULL,
    author_id TEXT NOT NULL,
    author_email TEXT NOT NULL,
    content TEXT NOT NULL,
    admin_check INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL,
    FOREIGN KEY (owner_id, project_id) REFERENCES projects(owner_id, id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS idx_project_comments ON comments(owner_id, project_id, created_at);
`

	if _, err := db.Exec(migration); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
