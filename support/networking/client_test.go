package networking

import (
	"context"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinmetro-go/cmapi/tests"
)

func TestFormRequest_Error(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"boom"}`))
	}))
	defer ts.Close()

	res, e := FormRequest(context.Background(), MakeHTTPClient(0), "GET", ts.URL, nil, nil)

	require.NoError(t, e)
	assert.False(t, res.IsSuccess())
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	assert.Equal(t, `{"message":"boom"}`, res.BodyString())
}

func TestFormRequest_BodyError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "1")
	}))
	defer ts.Close()

	res, e := FormRequest(context.Background(), MakeHTTPClient(0), "GET", ts.URL, nil, nil)

	assert.Nil(t, res)
	assert.Contains(t, e.Error(), "could not read http response")
}

func TestFormRequest_Ok(t *testing.T) {
	response := tests.RandomString()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != ContentTypeForm || r.Header.Get("X-Test") != "yes" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		body, _ := ioutil.ReadAll(r.Body)
		values, _ := url.ParseQuery(string(body))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(response + values.Get("amount")))
	}))
	defer ts.Close()

	form := url.Values{"amount": []string{"10"}}
	res, e := FormRequest(context.Background(), MakeHTTPClient(time.Second), "POST", ts.URL, form, map[string]string{"X-Test": "yes"})

	require.NoError(t, e)
	assert.True(t, res.IsSuccess())
	assert.Equal(t, response+"10", res.BodyString())
}

func TestFormRequest_CanceledContext(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, e := FormRequest(ctx, MakeHTTPClient(0), "GET", ts.URL, nil, nil)

	assert.Nil(t, res)
	assert.Contains(t, e.Error(), "could not execute http request")
}

func TestResponseIsSuccess(t *testing.T) {
	testCases := []struct {
		status int
		want   bool
	}{
		{status: 199, want: false},
		{status: 200, want: true},
		{status: 204, want: true},
		{status: 299, want: true},
		{status: 300, want: false},
		{status: 404, want: false},
		{status: 500, want: false},
	}

	for _, kase := range testCases {
		t.Run(http.StatusText(kase.status), func(t *testing.T) {
			assert.Equal(t, kase.want, (&Response{StatusCode: kase.status}).IsSuccess())
		})
	}
}

func TestResponseDecodeJSON(t *testing.T) {
	v, e := (&Response{Body: []byte(" ")}).DecodeJSON()
	assert.NoError(t, e)
	assert.Nil(t, v)

	v, e = (&Response{Body: []byte(`{"a":1}`)}).DecodeJSON()
	assert.NoError(t, e)
	assert.Equal(t, map[string]interface{}{"a": float64(1)}, v)

	_, e = (&Response{Body: []byte(`<html>`)}).DecodeJSON()
	assert.Contains(t, e.Error(), "response body: <html>")
}

func TestParseString(t *testing.T) {
	m := map[string]interface{}{"token": "abc", "num": float64(12)}

	s, e := ParseString(m, "token", "login")
	assert.NoError(t, e)
	assert.Equal(t, "abc", s)

	_, e = ParseString(m, "num", "login")
	assert.Contains(t, e.Error(), "could not parse the field 'num' as a string")

	_, e = ParseString(m, "missing", "login")
	assert.Contains(t, e.Error(), PrefixFieldNotFound)
}

func TestParseID(t *testing.T) {
	m := map[string]interface{}{"a": "5f2b", "b": float64(123456789), "c": true}

	id, e := ParseID(m, "a", "login")
	assert.NoError(t, e)
	assert.Equal(t, "5f2b", id)

	id, e = ParseID(m, "b", "login")
	assert.NoError(t, e)
	assert.Equal(t, "123456789", id)

	_, e = ParseID(m, "c", "login")
	assert.Error(t, e)
}
