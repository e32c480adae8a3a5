package model

// Session is the explicit identity value threaded through the client.
// It is set once at login and cleared at logout; nothing reads ambient state.
type Session struct {
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	Token    string `json:"token"`
}

// LoggedIn reports whether the session carries a usable token.
func (s Session) LoggedIn() bool {
	return s.Token != ""
}
