package domain

import "time"

// User models a registered account. Usernames are unique and case-sensitive;
// the password is only ever stored as a bcrypt hash.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
