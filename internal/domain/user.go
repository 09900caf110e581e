package domain

import "time"

// User is a locally stored account, keyed by a generated UUID. There is no
// authentication; the active user is selected per invocation.
type User struct {
	ID        string    `json:"-"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks the required user fields.
func (u *User) Validate() error {
	if u.Name == "" {
		return ErrMissingField("name")
	}
	if u.Email == "" {
		return ErrMissingField("email")
	}
	return nil
}
