package comment

import "time"

// Comment is one entry in a project's discussion feed. Apart from the
// one-way admin-check flip, a comment is immutable after creation.
type Comment struct {
	ID string `json:"id"`

	// Owning project, denormalised for cross-collection queries.
	OwnerID   string `json:"owner_id"`
	ProjectID string `json:"project_id"`

	AuthorID    string `json:"author_id"`
	AuthorEmail string `json:"author_email"`

	Content string `json:"content"`

	// AdminCheck marks the comment as reviewed by an admin. Starts false
	// and only ever flips to true.
	AdminCheck bool `json:"admin_check"`

	CreatedAt time.Time `json:"created_at"`
}
