package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"golang.org/x/net/publicsuffix"

	"github.com/sbilibin2017/gw-admin-status/internal/logger"
	"github.com/sbilibin2017/gw-admin-status/internal/models"
)

// LoginPath is the login endpoint, relative to the base URL.
const LoginPath = "/api/auth/login"

// ErrInvalidLoginResponse wraps a login response body that is not JSON.
var ErrInvalidLoginResponse = errors.New("invalid login response")

// AuthHTTPFacade posts credentials to the login endpoint over HTTP.
// Cookies set by the server are kept in the client's jar and sent back on
// later requests to the same site.
type AuthHTTPFacade struct {
	client   *http.Client
	loginURL string
}

// NewAuthHTTPFacade creates a facade for the server at baseURL.
func NewAuthHTTPFacade(baseURL string, timeout time.Duration) (*AuthHTTPFacade, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: scheme and host are required", baseURL)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, err
	}

	return &AuthHTTPFacade{
		client: &http.Client{
			Jar:     jar,
			Timeout: timeout,
		},
		loginURL: base.JoinPath(LoginPath).String(),
	}, nil
}

// Login submits the credentials once. Any completed response is decoded,
// whatever its status code.
func (f *AuthHTTPFacade) Login(ctx context.Context, creds models.LoginRequest) (*models.LoginResponse, error) {
	body, err := json.Marshal(creds)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.loginURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("login request failed", "url", f.loginURL, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	out, err := decodeLoginResponse(resp.Body)
	if err != nil {
		logger.Log.Errorw("failed to decode login response", "status", resp.StatusCode, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidLoginResponse, err)
	}

	logger.Log.Debugw("login response", "status", resp.StatusCode, "ok", out.OK)
	return out, nil
}

// decodeLoginResponse accepts any JSON document. Only a literal true in "ok"
// counts as accepted; a non-string "error" is reported as its JSON text
// unless it is null, false, 0 or empty.
func decodeLoginResponse(r io.Reader) (*models.LoginResponse, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		// valid JSON, but not an object
		return &models.LoginResponse{}, nil
	}

	out := &models.LoginResponse{
		OK: bytes.Equal(bytes.TrimSpace(fields["ok"]), []byte("true")),
	}

	errRaw := bytes.TrimSpace(fields["error"])
	var text string
	var num float64
	switch {
	case len(errRaw) == 0:
	case json.Unmarshal(errRaw, &text) == nil:
		out.Error = text
	case json.Unmarshal(errRaw, &num) == nil:
		if num != 0 {
			out.Error = string(errRaw)
		}
	case string(errRaw) != "null" && string(errRaw) != "false":
		out.Error = string(errRaw)
	}
	return out, nil
}

// Cookies returns the cookies the jar holds for u.
func (f *AuthHTTPFacade) Cookies(u *url.URL) []*http.Cookie {
	return f.client.Jar.Cookies(u)
}
