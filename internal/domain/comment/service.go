package comment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/seojinp/projectboard/internal/domain/access"
	"github.com/seojinp/projectboard/internal/storeerr"
)

// Service handles comment persistence and the mutation rules around it.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new comment service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Add writes a new comment authored by the viewer. Whitespace-only content
// is rejected before any write happens. The store assigns the timestamp.
func (s *Service) Add(ctx context.Context, viewer access.Viewer, ownerID, projectID, content string) (*Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	c := &Comment{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		ProjectID:   projectID,
		AuthorID:    viewer.ID,
		AuthorEmail: viewer.Email,
		Content:     content,
		AdminCheck:  false,
	}

	if err := s.repo.Add(ctx, c); err != nil {
		return nil, fmt.Errorf("adding comment: %w", err)
	}
	return c, nil
}

// Get fetches a single comment.
func (s *Service) Get(ctx context.Context, ownerID, projectID, id string) (*Comment, error) {
	c, err := s.repo.Get(ctx, ownerID, projectID, id)
	if err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, fmt.Errorf("getting comment: %w", err)
	}
	return c, nil
}

// List returns the current feed, newest first.
func (s *Service) List(ctx context.Context, ownerID, projectID string) ([]Comment, error) {
	list, err := s.repo.List(ctx, ownerID, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	return list, nil
}

// Delete removes a comment. The target is re-fetched first so the
// capability check runs against current data, not a stale local copy.
// Authors and admins may delete; anyone else gets ErrNotAllowed.
func (s *Service) Delete(ctx context.Context, viewer access.Viewer, ownerID, projectID, id string) error {
	c, err := s.Get(ctx, ownerID, projectID, id)
	if err != nil {
		return err
	}

	if !access.CanDeleteComment(viewer, c.AuthorID) {
		return ErrNotAllowed
	}

	if err := s.repo.Delete(ctx, ownerID, projectID, id); err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			return ErrCommentNotFound
		}
		return fmt.Errorf("deleting comment: %w", err)
	}

	s.logger.Info("comment deleted", "project", projectID, "comment", id, "by", viewer.ID)
	return nil
}

// Acknowledge flips a comment's admin-check flag to true. Admin-only and
// one-way: acknowledging an already-checked comment changes nothing.
func (s *Service) Acknowledge(ctx context.Context, viewer access.Viewer, ownerID, projectID, id string) (*Comment, error) {
	if !access.CanAcknowledge(viewer) {
		return nil, ErrNotAllowed
	}

	c, err := s.Get(ctx, ownerID, projectID, id)
	if err != nil {
		return nil, err
	}
	if c.AdminCheck {
		return c, nil
	}

	if err := s.repo.SetAdminCheck(ctx, ownerID, projectID, id, true); err != nil {
		if errors.Is(err, storeerr.ErrNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, fmt.Errorf("acknowledging comment: %w", err)
	}

	c.AdminCheck = true
	return c, nil
}

// Watch opens a live snapshot subscription on the project's feed.
func (s *Service) Watch(ctx context.Context, ownerID, projectID string) (<-chan []Comment, func(), error) {
	ch, cancel, err := s.repo.Watch(ctx, ownerID, projectID)
	if err != nil {
		return nil, nil, fmt.Errorf("watching comments: %w", err)
	}
	return ch, cancel, nil
}
