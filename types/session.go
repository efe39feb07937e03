package types

// Session is the authenticated identity of the current request.
// The zero value means nobody is signed in.
type Session struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

func (s Session) IsSet() bool {
	return s.UserID != ""
}
