package models

// Session is the identity attached to an authenticated request.
type Session struct {
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// NewSession builds a session from a stored user.
func NewSession(u *User) *Session {
	return &Session{
		UserID:    u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
