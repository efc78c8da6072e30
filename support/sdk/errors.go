package sdk

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrRequest is returned when the exchange answers a call with a status outside 200-299. It is never retried.
type ErrRequest struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

var _ error = ErrRequest{}

func (e ErrRequest) Error() string {
	return fmt.Sprintf("ErrRequest[method=%s, path=%s, status=%d, body='%s']", e.Method, e.Path, e.StatusCode, e.Body)
}

// ErrAuthentication is returned when the login call made while constructing a Coinmetro client fails
type ErrAuthentication struct {
	StatusCode int
	Body       string
	Reason     string
}

var _ error = ErrAuthentication{}

func (e ErrAuthentication) Error() string {
	return fmt.Sprintf("ErrAuthentication[status=%d, reason='%s', body='%s']", e.StatusCode, e.Reason, e.Body)
}

// AsErrRequest unwraps e and returns the ErrRequest behind it, if any
func AsErrRequest(e error) (ErrRequest, bool) {
	er, ok := errors.Cause(e).(ErrRequest)
	return er, ok
}

// AsErrAuthentication unwraps e and returns the ErrAuthentication behind it, if any
func AsErrAuthentication(e error) (ErrAuthentication, bool) {
	ea, ok := errors.Cause(e).(ErrAuthentication)
	return ea, ok
}
