package repository

// CreateUserOptions holds parameters for inserting a new User.
type CreateUserOptions struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
}

// GetOneUserOptions holds filter parameters for fetching a single User.
// All non-empty fields are applied as AND conditions.
type GetOneUserOptions struct {
	ID    string
	Email string
}
