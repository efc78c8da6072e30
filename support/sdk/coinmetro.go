package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/coinmetro-go/cmapi/model"
	"github.com/coinmetro-go/cmapi/support/json"
	"github.com/coinmetro-go/cmapi/support/logger"
	"github.com/coinmetro-go/cmapi/support/networking"
	"github.com/coinmetro-go/cmapi/support/toml"
	"github.com/coinmetro-go/cmapi/support/utils"
)

// BaseURL is the production host of the Coinmetro REST API, it should not have a suffix of '/'
const BaseURL = "https://api.coinmetro.com"

const defaultDeviceID = "bypass"

// Options configures a client, zero values are replaced with defaults
type Options struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     logger.Logger
	// DeviceID is sent as X-Device-Id on login
	DeviceID string
	// OTP is sent as X-OTP on login and withdrawals, empty unless two factor authentication is enabled
	OTP string
}

func (o Options) withDefaults() (Options, error) {
	if o.BaseURL == "" {
		o.BaseURL = BaseURL
	}
	o.BaseURL = strings.TrimSuffix(o.BaseURL, "/")
	u, e := url.Parse(o.BaseURL)
	if e != nil {
		return o, fmt.Errorf("invalid base URL '%s': %s", o.BaseURL, e)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return o, fmt.Errorf("invalid base URL '%s': needs an http or https scheme and a host", o.BaseURL)
	}

	if o.HTTPClient == nil {
		o.HTTPClient = networking.MakeHTTPClient(0)
	}
	if o.Logger == nil {
		o.Logger = logger.MakeBasicLogger()
	}
	if o.DeviceID == "" {
		o.DeviceID = defaultDeviceID
	}
	return o, nil
}

// MakeOptionsFromConfig converts a ClientConfig, building a logrus logger at the configured level
func MakeOptionsFromConfig(cfg *toml.ClientConfig) (Options, error) {
	l, e := logger.MakeLogrusLogger(cfg.LogLevel)
	if e != nil {
		return Options{}, fmt.Errorf("cannot make logger: %s", e)
	}

	return Options{
		BaseURL:    cfg.BaseURL,
		HTTPClient: networking.MakeHTTPClient(cfg.Timeout()),
		Logger:     l,
		DeviceID:   cfg.DeviceID,
		OTP:        cfg.OTP,
	}, nil
}

// CoinmetroPublic is the client for the market data endpoints, none of which need a credential.
// It holds no mutable state and is safe for concurrent use.
type CoinmetroPublic struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger
	parser     *json.GJsonParserWrapper
}

// MakeCoinmetroPublic is a factory method
func MakeCoinmetroPublic(opts Options) (*CoinmetroPublic, error) {
	opts, e := opts.withDefaults()
	if e != nil {
		return nil, e
	}
	return makeCoinmetroPublic(opts), nil
}

// MakeCoinmetroPublicFromConfig is a factory method
func MakeCoinmetroPublicFromConfig(cfg *toml.ClientConfig) (*CoinmetroPublic, error) {
	opts, e := MakeOptionsFromConfig(cfg)
	if e != nil {
		return nil, e
	}
	utils.LogConfig(opts.Logger, cfg)
	return MakeCoinmetroPublic(opts)
}

func makeCoinmetroPublic(opts Options) *CoinmetroPublic {
	return &CoinmetroPublic{
		baseURL:    opts.BaseURL,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		parser:     json.NewJsonParserWrapper(),
	}
}

// GetBaseURL returns the host the client talks to
func (c *CoinmetroPublic) GetBaseURL() string {
	return c.baseURL
}

// call makes one request and turns any status outside 200-299 into an ErrRequest
func (c *CoinmetroPublic) call(ctx context.Context, method string, path string, form url.Values, headers map[string]string) (*networking.Response, error) {
	resp, e := networking.FormRequest(ctx, c.httpClient, method, c.baseURL+path, form, headers)
	if e != nil {
		return nil, errors.Wrapf(e, "error calling %s %s", method, path)
	}

	if !resp.IsSuccess() {
		c.logger.Errorf("%s %s returned status %d: %s", method, path, resp.StatusCode, resp.BodyString())
		return nil, ErrRequest{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       resp.BodyString(),
		}
	}
	return resp, nil
}

// jsonResult makes the call and returns the parsed body verbatim
func (c *CoinmetroPublic) jsonResult(ctx context.Context, method string, path string, form url.Values, headers map[string]string) (interface{}, error) {
	resp, e := c.call(ctx, method, path, form, headers)
	if e != nil {
		return nil, e
	}

	result, e := resp.DecodeJSON()
	if e != nil {
		return nil, errors.Wrapf(e, "error parsing response of %s %s", method, path)
	}
	return result, nil
}

// filteredResult GETs path and, when filterBy is non-nil, filters the list found under collectionKey (the whole body when
// collectionKey is empty) instead of returning the parsed body
func (c *CoinmetroPublic) filteredResult(ctx context.Context, path string, headers map[string]string, collectionKey string, filterBy model.FilterBy) (interface{}, error) {
	if filterBy == nil {
		return c.jsonResult(ctx, http.MethodGet, path, nil, headers)
	}

	resp, e := c.call(ctx, http.MethodGet, path, nil, headers)
	if e != nil {
		return nil, e
	}

	collection, e := c.parser.GetValue(resp.Body, collectionKey)
	if e != nil {
		return nil, errors.Wrapf(e, "error reading '%s' from response of GET %s", collectionKey, path)
	}

	result, e := model.FilterRecords(model.ToRecords(collection), filterBy)
	if e != nil {
		return nil, errors.Wrapf(e, "error filtering response of GET %s", path)
	}
	return result, nil
}
