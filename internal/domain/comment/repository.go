package comment

import "context"

// Repository manages the comment collection nested under a project.
// List and Watch snapshots are ordered newest first. Aliased as
// store.CommentRepository; declared here so the service can consume it
// without importing store, which imports this package.
type Repository interface {
	Add(ctx context.Context, c *Comment) error
	Get(ctx context.Context, ownerID, projectID, id string) (*Comment, error)
	List(ctx context.Context, ownerID, projectID string) ([]Comment, error)
	Delete(ctx context.Context, ownerID, projectID, id string) error
	SetAdminCheck(ctx context.Context, ownerID, projectID, id string, checked bool) error

	// Watch opens a live subscription on the collection. Every write to
	// the collection produces a fresh full snapshot on the channel; each
	// snapshot supersedes the previous one entirely. The returned func
	// releases the subscription and closes the channel.
	Watch(ctx context.Context, ownerID, projectID string) (<-chan []Comment, func(), error)
}
