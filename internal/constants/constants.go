package constants

// Session / context keys
const (
	ContextKeyUserID = "user_id"
)

// Pagination
const (
	DefaultPageSize = 10
	MinPageSize     = 1
	MaxPageSize     = 100
)

// Auth
const (
	MinPasswordLength = 8
)
