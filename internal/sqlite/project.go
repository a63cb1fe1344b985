package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/seojinp/projectboard/internal/domain/project"
	"github.com/seojinp/projectboard/internal/store"
)

// ProjectRepository implements store.ProjectRepository for SQLite
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `
	id, owner_id, title, status,
	classification, channel, service, category, deployment_type,
	description,
	request_date, start_date, end_date, completion_date,
	progress,
	planning_name, planning_effort,
	design_name, design_effort,
	publishing_name, publishing_effort,
	development_name, development_effort,
	total_effort, plan_link, design_link,
	created_at, updated_at`

// Create inserts a new project and stamps both store-assigned timestamps.
func (r *ProjectRepository) Create(ctx context.Context, p *project.Project) error {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	query := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, projectArgs(p)...)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// Get retrieves a project by its owner-scoped key.
func (r *ProjectRepository) Get(ctx context.Context, ownerID, id string) (*project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE owner_id = ? AND id = ?`

	row := r.db.QueryRowContext(ctx, query, ownerID, id)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// List returns all projects under an owner, newest first.
func (r *ProjectRepository) List(ctx context.Context, ownerID string) ([]project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE owner_id = ? ORDER BY created_at DESC, id`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var list []project.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		list = append(list, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}
	return list, nil
}

// Update rewrites the whole record in one statement and stamps the update
// timestamp. Last write wins.
func (r *ProjectRepository) Update(ctx context.Context, p *project.Project) error {
	p.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE projects SET
			title = ?, status = ?,
			classification = ?, channel = ?, service = ?, category = ?, deployment_type = ?,
			description = ?,
			request_date = ?, start_date = ?, end_date = ?, completion_date = ?,
			progress = ?,
			planning_name = ?, planning_effort = ?,
			design_name = ?, design_effort = ?,
			publishing_name = ?, publishing_effort = ?,
			development_name = ?, development_effort = ?,
			total_effort = ?, plan_link = ?, design_link = ?,
			updated_at = ?
		WHERE owner_id = ? AND id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		p.Title, string(p.Status),
		p.Classification, p.Channel, p.Service, p.Category, p.DeploymentType,
		p.Description,
		p.RequestDate, p.StartDate, p.EndDate, p.CompletionDate,
		p.Progress,
		p.Planning.Name, p.Planning.Effort,
		p.Design.Name, p.Design.Effort,
		p.Publishing.Name, p.Publishing.Effort,
		p.Development.Name, p.Development.Effort,
		p.TotalEffort, p.Links.PlanLink, p.Links.DesignLink,
		p.UpdatedAt,
		p.OwnerID, p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// Delete removes a project; its comment collection cascades.
func (r *ProjectRepository) Delete(ctx context.Context, ownerID, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE owner_id = ? AND id = ?`, ownerID, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func projectArgs(p *project.Project) []any {
	return []any{
		p.ID, p.OwnerID, p.Title, string(p.Status),
		p.Classification, p.Channel, p.Service, p.Category, p.DeploymentType,
		p.Description,
		p.RequestDate, p.StartDate, p.EndDate, p.CompletionDate,
		p.Progress,
		p.Planning.Name, p.Planning.Effort,
		p.Design.Name, p.Design.Effort,
		p.Publishing.Name, p.Publishing.Effort,
		p.Development.Name, p.Development.Effort,
		p.TotalEffort, p.Links.PlanLink, p.Links.DesignLink,
		p.CreatedAt, p.UpdatedAt,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*project.Project, error) {
	var (
		p              project.Project
		status         string
		classification sql.NullString
		channel        sql.NullString
		service        sql.NullString
		category       sql.NullString
		deployment     sql.NullString
		requestDate    sql.NullTime
		startDate      sql.NullTime
		endDate        sql.NullTime
		completionDate sql.NullTime
		planEffort     sql.NullFloat64
		designEffort   sql.NullFloat64
		pubEffort      sql.NullFloat64
		devEffort      sql.NullFloat64
		totalEffort    sql.NullFloat64
		planLink       sql.NullString
		designLink     sql.NullString
	)

	err := row.Scan(
		&p.ID, &p.OwnerID, &p.Title, &status,
		&classification, &channel, &service, &category, &deployment,
		&p.Description,
		&requestDate, &startDate, &endDate, &completionDate,
		&p.Progress,
		&p.Planning.Name, &planEffort,
		&p.Design.Name, &designEffort,
		&p.Publishing.Name, &pubEffort,
		&p.Development.Name, &devEffort,
		&totalEffort, &planLink, &designLink,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Status = project.Status(status)
	p.Classification = nullString(classification)
	p.Channel = nullString(channel)
	p.Service = nullString(service)
	p.Category = nullString(category)
	p.DeploymentType = nullString(deployment)
	p.RequestDate = nullTime(requestDate)
	p.StartDate = nullTime(startDate)
	p.EndDate = nullTime(endDate)
	p.CompletionDate = nullTime(completionDate)
	p.Planning.Effort = nullFloat(planEffort)
	p.Design.Effort = nullFloat(designEffort)
	p.Publishing.Effort = nullFloat(pubEffort)
	p.Development.Effort = nullFloat(devEffort)
	p.TotalEffort = nullFloat(totalEffort)
	p.Links.PlanLink = nullString(planLink)
	p.Links.DesignLink = nullString(designLink)
	return &p, nil
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullTime(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
