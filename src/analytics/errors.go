package analytics

// Per-operation fallback messages, used when a failed response carries no
// usable error field.
const (
	DefaultSoloError   = "Analysis failed"
	DefaultBattleError = "Battle failed"
	DefaultTruthError  = "Truth analysis failed"
)

// APIError is a non-2xx response from the analytics service with its
// server-supplied (or fallback) message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Message extracts the user-facing text for a failed submission: the
// server-supplied message for API errors, the transport error's own message
// otherwise, and the fallback when there is nothing better.
func Message(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if apiErr, ok := err.(*APIError); ok {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return fallback
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
