package domain

// Session is the transient record of which account, if any, is currently
// authenticated. A nil session means unauthenticated.
type Session struct {
	Account       PublicAccount `json:"account"`
	Authenticated bool          `json:"-"`
}

func (s *Session) IsAuthenticated() bool {
	return s != nil && s.Authenticated
}

// AccountID returns the owning account identifier, or "" when the session
// is not established.
func (s *Session) AccountID() string {
	if !s.IsAuthenticated() {
		return ""
	}
	return s.Account.ID
}
