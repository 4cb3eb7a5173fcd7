package session

// Identity describes the authenticated user as reported by the server on
// login: numeric id, display name and the admin flag.
type Identity struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Session couples an identity with the bearer token issued for it.
// Invariant: both fields are meaningful together; a Session never exists
// with only one of them set.
type Session struct {
	Identity Identity `json:"user"`
	Token    string   `json:"token"`
}
