package user

// User represents a user entity in the system.
// An ID of 0 means the user has not been assigned an identifier yet.
type User struct {
	ID     uint64 `json:"id"`     // ID is the unique identifier for the user
	Name   string `json:"name"`   // Name is the full name of the user
	Email  string `json:"email"`  // Email is the email address of the user
	Active bool   `json:"active"` // Active reports whether the account is enabled
}

// Key returns the identifier the user is stored under.
func (u User) Key() uint64 {
	return u.ID
}
