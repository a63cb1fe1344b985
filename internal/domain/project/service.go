package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/seojinp/projectboard/internal/domain/access"
	"github.com/seojinp/projectboard/internal/storeerr"
)

// Service handles project operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new project service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Create registers a new project under the creating viewer's account.
// Only admins may register projects.
func (s *Service) Create(ctx context.Context, viewer access.Viewer, d Draft) (*Project, error) {
	if !access.CanCreateProject(viewer) {
		return nil, ErrNotAllowed
	}

	base := &Project{
		ID:      uuid.NewString(),
		OwnerID: viewer.ID,
	}
	p, err := d.Apply(base)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	s.logger.Info("project created", "owner", p.OwnerID, "project", p.ID)
	return p, nil
}

// Get fetches a project by its owner-scoped key. The derived total is
// recomputed on every load so stale stored values never leak out.
func (s *Service) Get(ctx context.Context, ownerID, id string) (*Project, error) {
	p, err := s.repo.Get(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	normalize(p)
	return p, nil
}

// List returns all projects under an owner, newest first.
func (s *Service) List(ctx context.Context, ownerID string) ([]Project, error) {
	list, err := s.repo.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	for i := range list {
		normalize(&list[i])
	}
	return list, nil
}

// Update writes a fully-formed record back as one atomic update. The store
// assigns the update timestamp. Gated on the edit capability.
func (s *Service) Update(ctx context.Context, viewer access.Viewer, p *Project) (*Project, error) {
	if !access.CanEditProject(viewer) {
		return nil, ErrNotAllowed
	}

	normalize(p)
	if err := s.repo.Update(ctx, p); err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("updating project: %w", err)
	}

	s.logger.Info("project updated", "owner", p.OwnerID, "project", p.ID)
	return p, nil
}

// Delete removes a project record.
func (s *Service) Delete(ctx context.Context, viewer access.Viewer, ownerID, id string) error {
	if !access.CanDeleteProject(viewer) {
		return ErrNotAllowed
	}

	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("deleting project: %w", err)
	}

	s.logger.Info("project deleted", "owner", ownerID, "project", id)
	return nil
}

// normalize re-derives the fields that must never be trusted as stored:
// the effort total and the progress clamp.
func normalize(p *Project) {
	p.Progress = ClampProgress(p.Progress)
	p.TotalEffort = TotalEffort(p.Planning.Effort, p.Design.Effort, p.Publishing.Effort)
}
