package domain

import (
	"strings"
	"time"
)

// Identity is the signed user object posted by the external login widget.
// It is stored verbatim; the hash is never checked locally.
type Identity struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username,omitempty"`
	PhotoURL  string `json:"photo_url,omitempty"`
	AuthDate  int64  `json:"auth_date"`
	Hash      string `json:"hash"`
}

// DisplayName prefers the full name, then the username.
func (i Identity) DisplayName() string {
	var handle string
	if i.Username != "" {
		handle = "@" + i.Username
	}
	return CoalesceStr(strings.TrimSpace(i.FirstName+" "+i.LastName), handle)
}

// IssuedAt returns the assertion's issue time.
func (i Identity) IssuedAt() time.Time {
	return time.Unix(i.AuthDate, 0)
}
