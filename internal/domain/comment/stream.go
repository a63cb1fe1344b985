package comment

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/seojinp/projectboard/internal/domain/access"
)

// Stream mirrors the live comment feed for one project into local state,
// on behalf of one viewer session. Snapshots from the subscription fully
// replace the local sequence; the only optimistic local mutation is
// removal on delete, which skips the round-trip flicker. Adds rely on the
// subscription to surface the new entry.
type Stream struct {
	svc    *Service
	viewer access.Viewer
	logger *slog.Logger

	ownerID   string
	projectID string

	// onSnapshot, when set, fires after every local sequence replacement,
	// with a copy of the new state. Used by the SSE feed to push updates.
	onSnapshot func([]Comment)

	mu         sync.Mutex
	comments   []Comment
	subscribed bool
	closed     bool
	adding     bool
	cancel     func()
}

// NewStream builds an unsubscribed stream. onSnapshot may be nil.
func NewStream(svc *Service, viewer access.Viewer, ownerID, projectID string, logger *slog.Logger, onSnapshot func([]Comment)) *Stream {
	return &Stream{
		svc:        svc,
		viewer:     viewer,
		logger:     logger,
		ownerID:    ownerID,
		projectID:  projectID,
		onSnapshot: onSnapshot,
	}
}

// Subscribe opens the live query and starts mirroring snapshots. Each
// received snapshot is authoritative and replaces the local sequence
// wholesale. Subscribing twice is an error; a closed stream stays closed.
func (s *Stream) Subscribe(ctx context.Context) error {
	s.mu.Lock()
	if s.subscribed || s.closed {
		s.mu.Unlock()
		return ErrAlreadySubscribed
	}
	s.subscribed = true
	s.mu.Unlock()

	ch, cancel, err := s.svc.Watch(ctx, s.ownerID, s.projectID)
	if err != nil {
		s.mu.Lock()
		s.subscribed = false
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.cancel = cancel
	// Close raced the watch open: release immediately and drop everything.
	if s.closed {
		s.mu.Unlock()
		cancel()
		return nil
	}
	s.mu.Unlock()

	go func() {
		for snap := range ch {
			s.replace(snap)
		}
	}()

	return nil
}

// replace installs a snapshot as the new local sequence. Snapshots that
// arrive after Close are dropped so a torn-down view is never mutated.
func (s *Stream) replace(snap []Comment) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.comments = snap
	notify := s.onSnapshot
	copied := s.snapshotLocked()
	s.mu.Unlock()

	if notify != nil {
		notify(copied)
	}
}

// Close releases the subscription. Mandatory on view teardown or when the
// (viewer, project) identity changes; afterwards no buffered snapshot can
// alter local state.
func (s *Stream) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	cancel := s.cancel
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Snapshot returns a copy of the current local sequence, newest first.
func (s *Stream) Snapshot() []Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Stream) snapshotLocked() []Comment {
	out := make([]Comment, len(s.comments))
	copy(out, s.comments)
	return out
}

// Len returns the current local sequence length.
func (s *Stream) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.comments)
}

// Add submits a new comment. Blank content is rejected and a second submit
// while one is pending is refused without any write. The new entry is not
// inserted locally; the next snapshot carries it.
func (s *Stream) Add(ctx context.Context, content string) error {
	s.mu.Lock()
	if s.adding {
		s.mu.Unlock()
		return ErrAddInFlight
	}
	s.adding = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.adding = false
		s.mu.Unlock()
	}()

	_, err := s.svc.Add(ctx, s.viewer, s.ownerID, s.projectID, content)
	return err
}

// Delete removes a comment remotely and, on success, drops it from the
// local sequence immediately rather than waiting for the next snapshot.
// An unauthorized delete is logged and leaves the sequence unchanged.
func (s *Stream) Delete(ctx context.Context, id string) error {
	err := s.svc.Delete(ctx, s.viewer, s.ownerID, s.projectID, id)
	if errors.Is(err, ErrNotAllowed) {
		s.logger.Warn("comment delete refused", "project", s.projectID, "comment", id, "viewer", s.viewer.ID)
		return nil
	}
	if err != nil {
		return err
	}

	s.mu.Lock()
	if !s.closed {
		kept := s.comments[:0:0]
		for _, c := range s.comments {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		s.comments = kept
	}
	notify := s.onSnapshot
	copied := s.snapshotLocked()
	s.mu.Unlock()

	if notify != nil {
		notify(copied)
	}
	return nil
}

// Acknowledge flips a comment's admin-check flag, remotely then locally.
// Idempotent: a second acknowledge of the same comment changes nothing.
func (s *Stream) Acknowledge(ctx context.Context, id string) error {
	if _, err := s.svc.Acknowledge(ctx, s.viewer, s.ownerID, s.projectID, id); err != nil {
		return err
	}

	s.mu.Lock()
	if !s.closed {
		for i := range s.comments {
			if s.comments[i].ID == id {
				s.comments[i].AdminCheck = true
				break
			}
		}
	}
	s.mu.Unlock()
	return nil
}
