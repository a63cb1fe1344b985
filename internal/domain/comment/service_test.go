package comment_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/seojinp/projectboard/internal/domain/access"
	"github.com/seojinp/projectboard/internal/domain/comment"
	"github.com/seojinp/projectboard/internal/store"
	"github.com/seojinp/projectboard/internal/store/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var (
	author = access.Viewer{ID: "u2", Email: "author@example.com"}
	admin  = access.Viewer{ID: "a1", Email: "admin@example.com", Admin: true}
)

func TestCommentService_AddRejectsBlankContent(t *testing.T) {
	repo := &mocks.CommentRepository{}
	svc := comment.NewService(repo, discard())

	for _, content := range []string{"", "   ", "\n\t "} {
		_, err := svc.Add(context.Background(), author, "u1", "p1", content)
		require.ErrorIs(t, err, comment.ErrEmptyContent)
	}
	// Nothing reached the store.
	repo.AssertNotCalled(t, "Add")
}

func TestCommentService_AddDefaults(t *testing.T) {
	repo := &mocks.CommentRepository{}
	repo.On("Add", mock.Anything, mock.Anything).Return(nil)
	svc := comment.NewService(repo, discard())

	c, err := svc.Add(context.Background(), author, "u1", "p1", "looks good")
	require.NoError(t, err)
	require.NotEmpty(t, c.ID)
	require.Equal(t, "u2", c.AuthorID)
	require.Equal(t, "author@example.com", c.AuthorEmail)
	require.Equal(t, "u1", c.OwnerID)
	require.Equal(t, "p1", c.ProjectID)
	require.False(t, c.AdminCheck)
}

func TestCommentService_DeleteRefetchesAndChecks(t *testing.T) {
	stored := &comment.Comment{ID: "c1", OwnerID: "u1", ProjectID: "p1", AuthorID: "u2"}

	repo := &mocks.CommentRepository{}
	repo.On("Get", mock.Anything, "u1", "p1", "c1").Return(stored, nil)
	svc := comment.NewService(repo, discard())

	// Neither author nor admin: refused before any delete reaches the store.
	err := svc.Delete(context.Background(), access.Viewer{ID: "u9"}, "u1", "p1", "c1")
	require.ErrorIs(t, err, comment.ErrNotAllowed)
	repo.AssertNotCalled(t, "Delete")

	repo.On("Delete", mock.Anything, "u1", "p1", "c1").Return(nil)
	require.NoError(t, svc.Delete(context.Background(), author, "u1", "p1", "c1"))
	require.NoError(t, svc.Delete(context.Background(), admin, "u1", "p1", "c1"))
}

func TestCommentService_AcknowledgeAdminOnly(t *testing.T) {
	repo := &mocks.CommentRepository{}
	svc := comment.NewService(repo, discard())

	_, err := svc.Acknowledge(context.Background(), author, "u1", "p1", "c1")
	require.ErrorIs(t, err, comment.ErrNotAllowed)
	repo.AssertNotCalled(t, "SetAdminCheck")
}

func TestCommentService_AcknowledgeIsOneWay(t *testing.T) {
	checked := &comment.Comment{ID: "c1", OwnerID: "u1", ProjectID: "p1", AdminCheck: true}

	repo := &mocks.CommentRepository{}
	repo.On("Get", mock.Anything, "u1", "p1", "c1").Return(checked, nil)
	svc := comment.NewService(repo, discard())

	got, err := svc.Acknowledge(context.Background(), admin, "u1", "p1", "c1")
	require.NoError(t, err)
	require.True(t, got.AdminCheck)
	// Already acknowledged: no write happens.
	repo.AssertNotCalled(t, "SetAdminCheck")
}

func TestCommentService_GetMapsNotFound(t *testing.T) {
	repo := &mocks.CommentRepository{}
	repo.On("Get", mock.Anything, "u1", "p1", "nope").Return((*comment.Comment)(nil), store.ErrNotFound)
	svc := comment.NewService(repo, discard())

	_, err := svc.Get(context.Background(), "u1", "p1", "nope")
	require.ErrorIs(t, err, comment.ErrCommentNotFound)
}
