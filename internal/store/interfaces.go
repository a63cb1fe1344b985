package store

import (
	"context"

	"github.com/seojinp/projectboard/internal/domain/access"
	"github.com/seojinp/projectboard/internal/domain/comment"
	"github.com/seojinp/projectboard/internal/domain/project"
)

// ProjectRepository manages project persistence. The interface is
// declared in the project package, whose service consumes it, and
// aliased here so this package remains the catalog of repository
// contracts without an import cycle.
type ProjectRepository = project.Repository

// CommentRepository manages the comment collection nested under a
// project. Declared in the comment package and aliased here for the
// same reason as ProjectRepository.
type CommentRepository = comment.Repository

// UserRepository resolves stored account records.
type UserRepository interface {
	Get(ctx context.Context, id string) (*access.User, error)
}
