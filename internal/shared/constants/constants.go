// Package constants defines shared constant values used across the application.
package constants

// Context keys used to pass request-scoped values through gin.
const (
	ContextKeyUserID    = "user_id"
	ContextKeyUsername  = "username"
	ContextKeyUserRole  = "user_role"
	ContextKeySessionID = "session_id"
	ContextKeyTokenRole = "token_role"
)

// Database table names.
const (
	TableUsers   = "users"
	TableTickets = "tickets"
	TableBlocks  = "blocks"
)
