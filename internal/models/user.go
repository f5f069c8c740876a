package models

// User is a registered account. Username and email are globally unique.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // don't expose hash
}
