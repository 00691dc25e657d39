package domain

// Replies to a shutdown request.
const (
	ShutdownDeniedMessage       = "You do not have permission."
	ShutdownAcknowledgedMessage = "Shutting down..."
)

// ShutdownResult represents the outcome of authorizing a shutdown request.
type ShutdownResult struct {
	Authorized bool
	Message    string
}

// NewShutdownResult creates the result for an authorization decision.
func NewShutdownResult(authorized bool) *ShutdownResult {
	message := ShutdownDeniedMessage
	if authorized {
		message = ShutdownAcknowledgedMessage
	}

	return &ShutdownResult{
		Authorized: authorized,
		Message:    message,
	}
}
