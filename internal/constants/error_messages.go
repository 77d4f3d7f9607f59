package constants

const (
	ErrCodeRequestRejected        = "REQUEST_REJECTED"
	ErrCodeQueueUnavailable       = "QUEUE_UNAVAILABLE"
	ErrCodeQueueRejected          = "QUEUE_REJECTED"
	ErrCodeCredentialsUnavailable = "CREDENTIALS_UNAVAILABLE"
	ErrCodeInternalError          = "INTERNAL_ERROR"
)

// ErrMsgRequestRejected is deliberately uniform: bad signature, missing
// signature and malformed payloads all read the same to the caller.
const (
	ErrMsgRequestRejected  = "request rejected"
	ErrMsgQueueUnavailable = "message could not be queued"
	ErrMsgInternalError    = "Internal server error"
)

var errorMessages = map[string]string{
	ErrCodeRequestRejected:        ErrMsgRequestRejected,
	ErrCodeQueueUnavailable:       ErrMsgQueueUnavailable,
	ErrCodeQueueRejected:          ErrMsgQueueUnavailable,
	ErrCodeCredentialsUnavailable: ErrMsgInternalError,
	ErrCodeInternalError:          ErrMsgInternalError,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeRequestRejected:
		return 403
	case ErrCodeQueueUnavailable:
		return 503
	case ErrCodeQueueRejected, ErrCodeCredentialsUnavailable, ErrCodeInternalError:
		return 500
	default:
		return 500
	}
}
