package sdk

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/coinmetro-go/cmapi/support/logger"
)

const (
	testEmail    = "trader@example.com"
	testPassword = "hunter2"
	testUserID   = "5f2bdf0a"
)

var testExpiry = time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)

type recordedRequest struct {
	Method string
	Path   string
	Header http.Header
	Form   url.Values
}

type fakeResponse struct {
	status int
	body   string
}

// fakeExchange stands in for the exchange, it records every request and answers from a table of canned responses
type fakeExchange struct {
	server    *httptest.Server
	token     string
	mu        sync.Mutex
	requests  []recordedRequest
	responses map[string]fakeResponse
}

func makeTestToken(t *testing.T) string {
	token, e := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": testUserID,
		"exp": testExpiry.Unix(),
	}).SignedString([]byte("test-signing-key"))
	require.NoError(t, e)
	return token
}

func newFakeExchange(t *testing.T) *fakeExchange {
	fx := &fakeExchange{
		token:     makeTestToken(t),
		responses: map[string]fakeResponse{},
	}
	fx.server = httptest.NewServer(http.HandlerFunc(fx.handle))
	t.Cleanup(fx.server.Close)
	return fx
}

func (fx *fakeExchange) handle(w http.ResponseWriter, r *http.Request) {
	e := r.ParseForm()
	if e != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	fx.mu.Lock()
	fx.requests = append(fx.requests, recordedRequest{
		Method: r.Method,
		Path:   r.URL.EscapedPath(),
		Header: r.Header.Clone(),
		Form:   r.PostForm,
	})
	resp, ok := fx.responses[r.Method+" "+r.URL.EscapedPath()]
	fx.mu.Unlock()

	if !ok && r.Method == http.MethodPost && r.URL.Path == pathLogin {
		resp, ok = fx.loginResponse(r.PostForm), true
	}
	if !ok {
		resp = fakeResponse{status: http.StatusNotFound, body: `{"message":"not found"}`}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	w.Write([]byte(resp.body))
}

func (fx *fakeExchange) loginResponse(form url.Values) fakeResponse {
	if form.Get("login") != testEmail || form.Get("password") != testPassword {
		return fakeResponse{status: http.StatusUnauthorized, body: `{"message":"Invalid credentials"}`}
	}
	return fakeResponse{status: http.StatusOK, body: `{"token":"` + fx.token + `","userId":"` + testUserID + `"}`}
}

func (fx *fakeExchange) on(method string, path string, status int, body string) {
	fx.mu.Lock()
	defer fx.mu.Unlock()
	fx.responses[method+" "+path] = fakeResponse{status: status, body: body}
}

func (fx *fakeExchange) requestsTo(path string) []recordedRequest {
	fx.mu.Lock()
	defer fx.mu.Unlock()

	matching := []recordedRequest{}
	for _, r := range fx.requests {
		if r.Path == path {
			matching = append(matching, r)
		}
	}
	return matching
}

func (fx *fakeExchange) requestCount() int {
	fx.mu.Lock()
	defer fx.mu.Unlock()
	return len(fx.requests)
}

func (fx *fakeExchange) lastRequest() recordedRequest {
	fx.mu.Lock()
	defer fx.mu.Unlock()
	return fx.requests[len(fx.requests)-1]
}

func (fx *fakeExchange) options() Options {
	l, _ := test.NewNullLogger()
	return Options{
		BaseURL: fx.server.URL + "/",
		Logger:  logger.MakeLogrusLoggerFrom(l, nil),
	}
}

func (fx *fakeExchange) login(t *testing.T) *Coinmetro {
	c, e := MakeCoinmetro(context.Background(), fx.options(), Credentials{Email: testEmail, Password: testPassword})
	require.NoError(t, e)
	return c
}

func (fx *fakeExchange) public(t *testing.T) *CoinmetroPublic {
	c, e := MakeCoinmetroPublic(fx.options())
	require.NoError(t, e)
	return c
}
