package utils

// CustomError is an error carrying the HTTP status code it should be
// answered with. Services return it for expected failures; anything else
// is treated as an internal error by the error middleware.
type CustomError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}

func (e *CustomError) Error() string {
	return e.Message
}

// NewCustomError builds a CustomError with the given status and message.
func NewCustomError(statusCode int, message string) *CustomError {
	return &CustomError{StatusCode: statusCode, Message: message}
}
