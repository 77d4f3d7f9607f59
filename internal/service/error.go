package service

// Error carries a stable error code for the HTTP boundary plus the cause
// for server-side logs. The cause never reaches a response body.
type Error struct {
	Code  string
	Cause error
}

func NewServiceError(code string, cause error) error {
	return Error{Code: code, Cause: cause}
}

func (e Error) Error() string {
	return e.Cause.Error()
}

func (e Error) Unwrap() error {
	return e.Cause
}
