package models

// Employer is the immutable identity of the paying account. It is built once
// from configuration at startup and handed to whatever needs it.
type Employer struct {
	ID        string
	Routing   string
	Currency  string
	Reference string
}
