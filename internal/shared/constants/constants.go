package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
	DashboardRecent = 5

	// Filter sentinel meaning "no filter" for status/priority query params
	FilterAll = "todos"

	// Context keys
	ContextKeyUserID           = "user_id"
	ContextKeyUserCapabilities = "user_capabilities"
	ContextKeyRequestID        = "request_id"

	// Database table names
	TableUsers         = "usuarios"
	TableTickets       = "chamados"
	TableTicketHistory = "historico_chamados"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
)
