package models

type SessionStatus string

const (
	StatusLoading       SessionStatus = "LOADING"
	StatusAuthenticated SessionStatus = "AUTHENTICATED"
	StatusAnonymous     SessionStatus = "ANONYMOUS"
)

// Session est ce que le client croit de son authentification, réhydraté
// depuis le token persisté. Authenticated uniquement quand le backend a
// confirmé l'utilisateur pour ce token.
type Session struct {
	Token  string        `json:"-"`
	User   *User         `json:"user,omitempty"`
	Status SessionStatus `json:"status"`
}

func (s Session) IsAuthenticated() bool {
	return s.Status == StatusAuthenticated && s.Token != "" && s.User != nil
}
