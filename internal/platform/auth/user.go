package auth

import "time"

// User is an operator account. PasswordHash is a bcrypt string; the
// plaintext never leaves the login path.
type User struct {
	ID           int        `db:"user_id" json:"id"`
	Username     string     `db:"username" json:"username"`
	FullName     string     `db:"full_name" json:"full_name"`
	Role         Role       `db:"role" json:"role"`
	PasswordHash string     `db:"password_hash" json:"-"`
	Active       bool       `db:"active" json:"active"`
	LastLogin    *time.Time `db:"last_login" json:"last_login,omitempty"`
}

// Authenticate checks a login attempt against the stored credentials.
// Inactive accounts never authenticate regardless of password.
func Authenticate(u *User, password string) (bool, error) {
	if u == nil || !u.Active {
		return false, nil
	}
	return VerifyPassword(password, u.PasswordHash)
}
