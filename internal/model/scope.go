package model

// Scope identifies the authenticated user a request acts on behalf of.
// Every usecase method takes a Scope; repositories filter by its UserID.
type Scope struct {
	UserID string
	Email  string
}
