package domain

// UserProfile identifies the current user to the persistence layer.
// The email is resolved explicitly at startup (flag, env, or login) and
// passed down; nothing in this codebase reads identity from ambient state.
type UserProfile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
