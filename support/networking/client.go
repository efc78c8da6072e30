package networking

import (
	"net/http"
	"time"
)

// MakeHTTPClient returns a client with the given timeout, a zero timeout never times out and leaves deadlines to the
// request context
func MakeHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
	}
}
