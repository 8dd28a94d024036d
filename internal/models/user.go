package models

// User represents an internal user model for the application/database.
// The bcrypt digest is never serialized into HTTP responses.
type User struct {
	ID             int64  `json:"id" mapstructure:"id" db:"id"`
	Username       string `json:"username" mapstructure:"username" db:"username"`
	HashedPassword string `json:"-" mapstructure:"hashed_password" db:"hashed_password"`
}

// NewUser creates a new User instance with the given username and password digest.
// Note: No validation is performed here.
func NewUser(username string, hashedPassword string) *User {
	return &User{
		Username:       username,
		HashedPassword: hashedPassword,
	}
}
