package twilio

const (
	ErrorCodeServerError   = "SERVER_ERROR"   // For 5xx HTTP status
	ErrorCodeTimeout       = "TIMEOUT"        // For context timeout
	ErrorCodeInvalidNumber = "INVALID_NUMBER" // For 400/validation errors
	ErrorCodeUnauthorized  = "UNAUTHORIZED"   // For bad account credentials
	ErrorCodeNetworkError  = "NETWORK_ERROR"  // For connection failures
)
