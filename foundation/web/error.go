package web

// Error carries the HTTP status a request failure should be reported with.
type Error struct {
	Err    error
	Status int
}

func (e *Error) Error() string {
	return e.Err.Error()
}

// NewRequestError wraps err so RespondError answers with the given status
// instead of the generic 500.
func NewRequestError(err error, status int) error {
	return &Error{Err: err, Status: status}
}

// IsRequestError reports whether err is a request error and returns it.
func IsRequestError(err error) (*Error, bool) {
	re, ok := err.(*Error)
	return re, ok
}
