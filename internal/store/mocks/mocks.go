package mocks

import (
	"context"

	"github.com/seojinp/projectboard/internal/domain/access"
	"github.com/seojinp/projectboard/internal/domain/comment"
	"github.com/seojinp/projectboard/internal/domain/project"
	"github.com/stretchr/testify/mock"
)

// ProjectRepository is a mock for store.ProjectRepository.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) Create(ctx context.Context, p *project.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProjectRepository) Get(ctx context.Context, ownerID, id string) (*project.Project, error) {
	args := m.Called(ctx, ownerID, id)
	if p, ok := args.Get(0).(*project.Project); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) List(ctx context.Context, ownerID string) ([]project.Project, error) {
	args := m.Called(ctx, ownerID)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) Update(ctx context.Context, p *project.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProjectRepository) Delete(ctx context.Context, ownerID, id string) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

// CommentRepository is a mock for store.CommentRepository.
type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) Add(ctx context.Context, c *comment.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CommentRepository) Get(ctx context.Context, ownerID, projectID, id string) (*comment.Comment, error) {
	args := m.Called(ctx, ownerID, projectID, id)
	if c, ok := args.Get(0).(*comment.Comment); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CommentRepository) List(ctx context.Context, ownerID, projectID string) ([]comment.Comment, error) {
	args := m.Called(ctx, ownerID, projectID)
	if list, ok := args.Get(0).([]comment.Comment); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CommentRepository) Delete(ctx context.Context, ownerID, projectID, id string) error {
	args := m.Called(ctx, ownerID, projectID, id)
	return args.Error(0)
}

func (m *CommentRepository) SetAdminCheck(ctx context.Context, ownerID, projectID, id string, checked bool) error {
	args := m.Called(ctx, ownerID, projectID, id, checked)
	return args.Error(0)
}

func (m *CommentRepository) Watch(ctx context.Context, ownerID, projectID string) (<-chan []comment.Comment, func(), error) {
	args := m.Called(ctx, ownerID, projectID)
	ch, _ := args.Get(0).(<-chan []comment.Comment)
	cancel, _ := args.Get(1).(func())
	return ch, cancel, args.Error(2)
}

// UserRepository is a mock for store.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Get(ctx context.Context, id string) (*access.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*access.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
