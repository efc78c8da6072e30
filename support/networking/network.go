package networking

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// ContentTypeForm is the Content-Type of every request body the exchange accepts
const ContentTypeForm = "application/x-www-form-urlencoded"

// Response is what came back from an HTTP call, kept whole so that callers can attach the body to errors
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// IsSuccess returns true for any status in the inclusive 200-299 range
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode <= 299
}

// BodyString is a convenience method
func (r *Response) BodyString() string {
	return string(r.Body)
}

// DecodeJSON parses the body, an empty body decodes to nil
func (r *Response) DecodeJSON() (interface{}, error) {
	if len(strings.TrimSpace(string(r.Body))) == 0 {
		return nil, nil
	}

	var output interface{}
	e := json.Unmarshal(r.Body, &output)
	if e != nil {
		return nil, fmt.Errorf("could not unmarshall response body into json: %s | response body: %s", e, r.BodyString())
	}
	return output, nil
}

// FormRequest submits an HTTP web request with a form-encoded body (when form is non-nil) and reads the full response.
// Non-2xx statuses are not errors here, only failures to execute the request or read the response are.
func FormRequest(
	ctx context.Context,
	httpClient *http.Client,
	method string,
	reqURL string,
	form url.Values,
	headers map[string]string,
) (*Response, error) {
	var data string
	if form != nil {
		data = form.Encode()
	}

	// create http request
	req, e := http.NewRequestWithContext(ctx, method, reqURL, strings.NewReader(data))
	if e != nil {
		return nil, errors.Wrap(e, "could not create http request")
	}

	// add headers
	if form != nil {
		req.Header.Set("Content-Type", ContentTypeForm)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	// execute request
	resp, e := httpClient.Do(req)
	if e != nil {
		return nil, errors.Wrapf(e, "could not execute http request (%s %s)", method, reqURL)
	}
	defer resp.Body.Close()

	// read response
	body, e := ioutil.ReadAll(resp.Body)
	if e != nil {
		return nil, errors.Wrap(e, "could not read http response")
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}
