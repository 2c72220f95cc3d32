// Package api is the REST client for the college administration gateway.
// The portal consumes the gateway; it never implements any of it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/campushq/collegeportal/internal/logging"
)

// Client talks to the gateway over HTTP/JSON. It owns the current bearer
// token and attaches it to every request; callers update it via SetToken on
// login/logout.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
	log     logging.Logger
}

func NewClient(baseURL string, timeout time.Duration, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// SetToken replaces the bearer credential attached to subsequent requests.
// An empty token means unauthenticated requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Authenticate exchanges credentials for a token and profile data.
// Rejected credentials map to ErrInvalidCredentials, transport failures to
// ErrUnavailable; both are login failures to the caller and must leave the
// session untouched.
func (c *Client) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	var resp AuthResponse
	err := c.do(ctx, http.MethodPost, "/authentication", Credentials{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// VerifyRegistration submits the full registration payload. On success the
// gateway issues a token exactly like a login does.
func (c *Client) VerifyRegistration(ctx context.Context, req RegistrationRequest) (*RegistrationResponse, error) {
	var resp RegistrationResponse
	if err := c.do(ctx, http.MethodPost, "/registration/verify", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// EmailRegistered reports whether an account already uses the given email.
func (c *Client) EmailRegistered(ctx context.Context, email string) (bool, error) {
	var registered bool
	path := "/registration/email-validation/" + url.PathEscape(email)
	if err := c.do(ctx, http.MethodGet, path, nil, &registered); err != nil {
		return false, err
	}
	return registered, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.log.Warn(ctx, "gateway request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := statusError(resp.StatusCode); err != nil {
		c.log.Debug(ctx, "gateway rejected request", "method", method, "path", path, "status", resp.StatusCode)
		return err
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func statusError(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return ErrInvalidCredentials
	case code >= 500:
		return fmt.Errorf("%w: gateway returned %d", ErrUnavailable, code)
	default:
		return errors.New("gateway returned " + http.StatusText(code))
	}
}
