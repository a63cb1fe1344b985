package project

import "context"

// Repository manages project persistence. Records are addressed by
// (ownerID, id), mirroring the projects/{owner}/userProjects/{id} layout.
// Create and Update stamp the store-assigned timestamps on the passed
// record at write time. Aliased as store.ProjectRepository; declared
// here so the service can consume it without importing store, which
// imports this package.
type Repository interface {
	Create(ctx context.Context, p *Project) error
	Get(ctx context.Context, ownerID, id string) (*Project, error)
	List(ctx context.Context, ownerID string) ([]Project, error)
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, ownerID, id string) error
}
