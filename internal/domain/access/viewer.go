package access

// Role names as stored on the user record.
const RoleAdmin = "admin"

// Viewer is the capability value for one authenticated session. The admin
// flag is resolved once, when the viewer is built, and never re-checked
// per action.
type Viewer struct {
	ID    string
	Email string
	Admin bool
}

// NewViewer builds a viewer from a user record's identity and role.
func NewViewer(id, email, role string) Viewer {
	return Viewer{ID: id, Email: email, Admin: role == RoleAdmin}
}

// Owns reports whether the viewer is the owning account for ownerID.
// Comparison is by stable identifier, never by display name or email.
func (v Viewer) Owns(ownerID string) bool {
	return v.ID != "" && v.ID == ownerID
}

// CanCreateProject reports whether the viewer may register new projects.
func CanCreateProject(v Viewer) bool {
	return v.Admin
}

// CanEditProject reports whether the viewer may modify the project.
// Projects live under an owning account but only admins edit them.
func CanEditProject(v Viewer) bool {
	return v.Admin
}

// CanDeleteProject reports whether the viewer may remove the project.
func CanDeleteProject(v Viewer) bool {
	return v.Admin
}

// CanDeleteComment reports whether the viewer may remove a comment.
// Authors and admins both hold the capability.
func CanDeleteComment(v Viewer, authorID string) bool {
	return v.Admin || v.Owns(authorID)
}

// CanAcknowledge reports whether the viewer may flip a comment's
// admin-check flag.
func CanAcknowledge(v Viewer) bool {
	return v.Admin
}
