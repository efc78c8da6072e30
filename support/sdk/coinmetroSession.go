package sdk

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/go-querystring/query"
	"github.com/pkg/errors"

	"github.com/coinmetro-go/cmapi/model"
	"github.com/coinmetro-go/cmapi/support/networking"
	"github.com/coinmetro-go/cmapi/support/toml"
	"github.com/coinmetro-go/cmapi/support/utils"
)

const pathLogin = "/jwt"

// Credentials are what the login call needs
type Credentials struct {
	Email    string
	Password string
	// CaptchaToken is the response token of the captcha challenge shown on the login page
	CaptchaToken string
}

type loginForm struct {
	Login        string `url:"login"`
	Password     string `url:"password"`
	CaptchaToken string `url:"g-recaptcha-response"`
}

// Coinmetro is the authenticated client. It is constructed by logging in and is never left half-authenticated:
// if the login fails no client is returned. The session is never refreshed, make a new client to log in again.
//
// Coinmetro embeds CoinmetroPublic so the market data endpoints are available on it as well. The session is only
// read after construction so the client is safe for concurrent use.
type Coinmetro struct {
	*CoinmetroPublic
	session model.Session
	otp     string
}

// MakeCoinmetro logs in with creds and returns a client bound to the resulting session
func MakeCoinmetro(ctx context.Context, opts Options, creds Credentials) (*Coinmetro, error) {
	opts, e := opts.withDefaults()
	if e != nil {
		return nil, e
	}

	public := makeCoinmetroPublic(opts)
	session, e := login(ctx, public, opts, creds)
	if e != nil {
		return nil, e
	}
	public.logger.Infof("established session for user %s (token expires at %s)", session.UserID, expiryString(session.ExpiresAt))

	return &Coinmetro{
		CoinmetroPublic: public,
		session:         *session,
		otp:             opts.OTP,
	}, nil
}

// MakeCoinmetroFromConfig logs in with the credentials held in cfg
func MakeCoinmetroFromConfig(ctx context.Context, cfg *toml.ClientConfig) (*Coinmetro, error) {
	e := cfg.ValidateCredentials()
	if e != nil {
		return nil, e
	}

	opts, e := MakeOptionsFromConfig(cfg)
	if e != nil {
		return nil, e
	}
	utils.LogConfig(opts.Logger, cfg)

	return MakeCoinmetro(ctx, opts, Credentials{
		Email:        cfg.Email,
		Password:     cfg.Password,
		CaptchaToken: cfg.CaptchaToken,
	})
}

// Session returns a copy of the session the client was constructed with
func (c *Coinmetro) Session() model.Session {
	return c.session
}

// login makes exactly one attempt, any status outside 200-299 is an ErrAuthentication carrying the response body
func login(ctx context.Context, c *CoinmetroPublic, opts Options, creds Credentials) (*model.Session, error) {
	form, e := query.Values(loginForm{
		Login:        creds.Email,
		Password:     creds.Password,
		CaptchaToken: creds.CaptchaToken,
	})
	if e != nil {
		return nil, fmt.Errorf("could not encode login form: %s", e)
	}

	headers := map[string]string{
		"X-OTP":       opts.OTP,
		"X-Device-Id": opts.DeviceID,
	}
	resp, e := networking.FormRequest(ctx, c.httpClient, http.MethodPost, c.baseURL+pathLogin, form, headers)
	if e != nil {
		return nil, errors.Wrap(e, "error calling login endpoint")
	}

	if !resp.IsSuccess() {
		c.logger.Errorf("login failed with status %d: %s", resp.StatusCode, resp.BodyString())
		return nil, ErrAuthentication{
			StatusCode: resp.StatusCode,
			Body:       resp.BodyString(),
			Reason:     "login rejected",
		}
	}

	session, e := parseSession(resp)
	if e != nil {
		return nil, ErrAuthentication{
			StatusCode: resp.StatusCode,
			Body:       resp.BodyString(),
			Reason:     e.Error(),
		}
	}
	return session, nil
}

func parseSession(resp *networking.Response) (*model.Session, error) {
	result, e := resp.DecodeJSON()
	if e != nil {
		return nil, e
	}

	m, ok := result.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("login response is not a json object")
	}

	token, e := networking.ParseString(m, "token", "login")
	if e != nil {
		return nil, e
	}
	if token == "" {
		return nil, fmt.Errorf("login response has an empty token")
	}

	userID, e := networking.ParseID(m, "userId", "login")
	if e != nil {
		return nil, e
	}

	return &model.Session{
		UserID:      userID,
		BearerToken: token,
		ExpiresAt:   tokenExpiry(token),
	}, nil
}

// tokenExpiry reads the exp claim without verifying the signature, the client has no key to verify it with and only
// uses the value to report when a new session will be needed
func tokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	_, _, e := jwt.NewParser().ParseUnverified(token, claims)
	if e != nil {
		return time.Time{}
	}

	exp, e := claims.GetExpirationTime()
	if e != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

func expiryString(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return t.UTC().Format(time.RFC3339)
}
