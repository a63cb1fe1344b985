package project

import (
	"context"

	"github.com/seojinp/projectboard/internal/domain/access"
)

// Updater persists a fully-formed project record as one atomic write.
type Updater interface {
	Update(ctx context.Context, viewer access.Viewer, p *Project) (*Project, error)
}

// Editor manages the view/edit projection of one project record for one
// viewer session. The canonical record tracks the store; the draft holds
// in-progress edits and is merged back only on a successful save.
//
// An Editor belongs to exactly one session and is not safe for concurrent
// use.
type Editor struct {
	viewer    access.Viewer
	updater   Updater
	canonical *Project
	draft     Draft
	editing   bool
}

// NewEditor wraps a freshly loaded canonical record.
func NewEditor(viewer access.Viewer, updater Updater, canonical *Project) *Editor {
	return &Editor{
		viewer:    viewer,
		updater:   updater,
		canonical: canonical.Clone(),
	}
}

// Canonical returns the last-synced record. Callers must not mutate it.
func (e *Editor) Canonical() *Project {
	return e.canonical
}

// Editing reports whether a draft is open.
func (e *Editor) Editing() bool {
	return e.editing
}

// Draft returns the current working copy. Meaningful only while editing.
func (e *Editor) Draft() Draft {
	return e.draft
}

// Begin opens edit mode, seeding the draft from the canonical record.
// Already editing is a no-op: the in-progress draft is kept.
func (e *Editor) Begin() error {
	if !access.CanEditProject(e.viewer) {
		return ErrNotAllowed
	}
	if e.editing {
		return nil
	}
	e.draft = NewDraft(e.canonical)
	e.editing = true
	return nil
}

// Patch applies an edit to the draft. Each edit produces a whole new draft
// value; nothing shares state with the canonical record.
func (e *Editor) Patch(fn func(Draft) Draft) error {
	if !e.editing {
		return ErrNotEditing
	}
	e.draft = fn(e.draft)
	return nil
}

// Cancel discards the draft and leaves edit mode. The replacement view is
// the current canonical record, which may have moved on since Begin.
func (e *Editor) Cancel() {
	e.draft = Draft{}
	e.editing = false
}

// Sync replaces the canonical record with an incoming live update. An open
// draft is deliberately left alone: the user keeps their input and the
// save, when it lands, wins.
func (e *Editor) Sync(p *Project) {
	e.canonical = p.Clone()
}

// Save coerces the draft, writes it through in a single update, and on
// success adopts the result as the new canonical record and exits edit
// mode. On any failure edit mode stays active and the draft is untouched,
// so no input is lost.
func (e *Editor) Save(ctx context.Context) error {
	if !e.editing {
		return ErrNotEditing
	}

	next, err := e.draft.Apply(e.canonical)
	if err != nil {
		return err
	}

	saved, err := e.updater.Update(ctx, e.viewer, next)
	if err != nil {
		return err
	}

	e.canonical = saved.Clone()
	e.draft = Draft{}
	e.editing = false
	return nil
}
