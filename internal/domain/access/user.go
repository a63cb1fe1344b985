package access

// User is the stored account record consumed for viewer resolution.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Viewer derives the session capability value from the account record.
func (u User) Viewer() Viewer {
	return NewViewer(u.ID, u.Email, u.Role)
}
