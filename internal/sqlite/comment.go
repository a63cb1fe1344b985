package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/seojinp/projectboard/internal/domain/comment"
	"github.com/seojinp/projectboard/internal/store"
)

// CommentRepository implements store.CommentRepository for SQLite. It also
// carries the changefeed: every write re-queries the affected collection
// and broadcasts the full ordered snapshot to live watchers.
type CommentRepository struct {
	db   *DB
	feed *commentFeed
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *DB) *CommentRepository {
	return &CommentRepository{db: db, feed: newCommentFeed()}
}

// Add inserts a comment and stamps the store-assigned timestamp.
func (r *CommentRepository) Add(ctx context.Context, c *comment.Comment) error {
	c.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO comments (id, owner_id, project_id, author_id, author_email, content, admin_check, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.OwnerID, c.ProjectID, c.AuthorID, c.AuthorEmail, c.Content, c.AdminCheck, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to add comment: %w", err)
	}

	r.broadcast(ctx, c.OwnerID, c.ProjectID)
	return nil
}

// Get retrieves a single comment scoped to its project.
func (r *CommentRepository) Get(ctx context.Context, ownerID, projectID, id string) (*comment.Comment, error) {
	query := `
		SELECT id, owner_id, project_id, author_id, author_email, content, admin_check, created_at
		FROM comments
		WHERE owner_id = ? AND project_id = ? AND id = ?
	`

	var c comment.Comment
	err := r.db.QueryRowContext(ctx, query, ownerID, projectID, id).Scan(
		&c.ID, &c.OwnerID, &c.ProjectID, &c.AuthorID, &c.AuthorEmail, &c.Content, &c.AdminCheck, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return &c, nil
}

// List returns the project's comments, newest first.
func (r *CommentRepository) List(ctx context.Context, ownerID, projectID string) ([]comment.Comment, error) {
	query := `
		SELECT id, owner_id, project_id, author_id, author_email, content, admin_check, created_at
		FROM comments
		WHERE owner_id = ? AND project_id = ?
		ORDER BY created_at DESC, id
	`

	rows, err := r.db.QueryContext(ctx, query, ownerID, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	var list []comment.Comment
	for rows.Next() {
		var c comment.Comment
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.ProjectID, &c.AuthorID, &c.AuthorEmail,
			&c.Content, &c.AdminCheck, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", err)
	}
	return list, nil
}

// Delete removes a comment.
func (r *CommentRepository) Delete(ctx context.Context, ownerID, projectID, id string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM comments WHERE owner_id = ? AND project_id = ? AND id = ?`, ownerID, projectID, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return store.ErrNotFound
	}

	r.broadcast(ctx, ownerID, projectID)
	return nil
}

// SetAdminCheck updates the admin-check flag.
func (r *CommentRepository) SetAdminCheck(ctx context.Context, ownerID, projectID, id string, checked bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE comments SET admin_check = ? WHERE owner_id = ? AND project_id = ? AND id = ?`,
		checked, ownerID, projectID, id)
	if err != nil {
		return fmt.Errorf("failed to set admin check: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return store.ErrNotFound
	}

	r.broadcast(ctx, ownerID, projectID)
	return nil
}

// Watch subscribes to the collection's changefeed. The current snapshot is
// delivered immediately, then one per write. The cancel func releases the
// subscription and closes the channel; the context cancels it too.
func (r *CommentRepository) Watch(ctx context.Context, ownerID, projectID string) (<-chan []comment.Comment, func(), error) {
	initial, err := r.List(ctx, ownerID, projectID)
	if err != nil {
		return nil, nil, err
	}

	ch, cancel := r.feed.subscribe(ownerID, projectID, initial)

	go func() {
		<-ctx.Done()
		cancel()
	}()

	return ch, cancel, nil
}

// broadcast pushes a fresh snapshot to every watcher of the collection.
// Feed errors never fail the write that triggered them.
func (r *CommentRepository) broadcast(ctx context.Context, ownerID, projectID string) {
	if !r.feed.hasWatchers(ownerID, projectID) {
		return
	}
	snap, err := r.List(ctx, ownerID, projectID)
	if err != nil {
		return
	}
	r.feed.publish(ownerID, projectID, snap)
}

// commentFeed fans full snapshots out to subscribers. Channels are
// buffered one deep with latest-wins delivery: a slow consumer skips
// intermediate snapshots and always sees the most recent one.
type commentFeed struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]chan []comment.Comment
}

func newCommentFeed() *commentFeed {
	return &commentFeed{subs: make(map[string]map[int]chan []comment.Comment)}
}

func feedKey(ownerID, projectID string) string {
	return ownerID + "/" + projectID
}

func (f *commentFeed) subscribe(ownerID, projectID string, initial []comment.Comment) (chan []comment.Comment, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := feedKey(ownerID, projectID)
	if f.subs[key] == nil {
		f.subs[key] = make(map[int]chan []comment.Comment)
	}

	id := f.nextID
	f.nextID++
	ch := make(chan []comment.Comment, 1)
	ch <- initial
	f.subs[key][id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			if sub, ok := f.subs[key][id]; ok {
				delete(f.subs[key], id)
				close(sub)
			}
		})
	}
	return ch, cancel
}

func (f *commentFeed) hasWatchers(ownerID, projectID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs[feedKey(ownerID, projectID)]) > 0
}

func (f *commentFeed) publish(ownerID, projectID string, snap []comment.Comment) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, ch := range f.subs[feedKey(ownerID, projectID)] {
		// Drop the undelivered previous snapshot, then install the new one.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
}
