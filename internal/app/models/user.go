package models

import "time"

// User defines the user model based on the legacy [User] table.
type User struct {
	UserID       *int64     `json:"User_ID" db:"user_id"`
	Username     string     `json:"Username" db:"username"`
	Email        string     `json:"Email" db:"email"`
	PasswordHash string     `json:"Password_Hash" db:"password_hash"`
	CreatedAt    *time.Time `json:"Created_At" db:"created_at"`

	// Extra holds columns the schema grew that this struct does not model.
	// It never appears in the ToMap projection.
	Extra map[string]any `json:"-"`
}

// ToMap converts the user to its JSON projection. Created_At passes through
// as the raw time value.
func (u *User) ToMap() map[string]any {
	return map[string]any{
		"User_ID":       u.UserID,
		"Username":      u.Username,
		"Email":         u.Email,
		"Password_Hash": u.PasswordHash,
		"Created_At":    u.CreatedAt,
	}
}
