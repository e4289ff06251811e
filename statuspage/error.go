package statuspage

import "net/http"

// Error is an error that carries the HTTP status code to send as a result of
// the error.
type Error struct {
	Inner      error
	StatusCode int
	Message    string
}

func (err Error) Error() string {
	if err.Inner != nil {
		return err.Inner.Error()
	}

	if err.Message != "" {
		return err.Message
	}

	return http.StatusText(err.StatusCode)
}

// Unwrap returns the inner error.
func (err Error) Unwrap() error {
	return err.Inner
}
