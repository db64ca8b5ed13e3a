// Package google exchanges Google OAuth authorization codes for a verified
// user identity.
package google

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/tourcrew-backend/internal/auth"
	"github.com/heartmarshall/tourcrew-backend/internal/config"
	"github.com/heartmarshall/tourcrew-backend/internal/domain"
)

// ProviderName is the auth method name stored for Google identities.
const ProviderName = "google"

// Endpoints are the Google OAuth URLs used by the verifier.
type Endpoints struct {
	Token    string
	Userinfo string
}

// DefaultEndpoints point at Google's production OAuth service.
var DefaultEndpoints = Endpoints{
	Token:    "https://oauth2.googleapis.com/token",
	Userinfo: "https://www.googleapis.com/oauth2/v2/userinfo",
}

// Verifier exchanges Google OAuth authorization codes for user identity.
type Verifier struct {
	clientID     string
	clientSecret string
	redirectURI  string
	endpoints    Endpoints
	httpClient   *http.Client
	retryDelay   time.Duration
	log          *slog.Logger
}

// NewVerifier creates a Google OAuth verifier from the auth configuration.
func NewVerifier(cfg config.AuthConfig, endpoints Endpoints, logger *slog.Logger) *Verifier {
	return &Verifier{
		clientID:     cfg.GoogleClientID,
		clientSecret: cfg.GoogleClientSecret,
		redirectURI:  cfg.GoogleRedirectURI,
		endpoints:    endpoints,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		retryDelay:   500 * time.Millisecond,
		log:          logger.With("adapter", "google_oauth"),
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

type userinfoResponse struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// VerifyCode exchanges an authorization code for a verified identity.
// A rejected code or an unverified email wraps domain.ErrUnauthorized;
// provider outages are returned as plain errors.
func (v *Verifier) VerifyCode(ctx context.Context, code string) (*auth.OAuthIdentity, error) {
	accessToken, err := v.exchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}

	info, err := v.fetchUserinfo(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	if !info.VerifiedEmail {
		return nil, fmt.Errorf("google: email not verified: %w", domain.ErrUnauthorized)
	}

	identity := &auth.OAuthIdentity{
		Provider:   ProviderName,
		ProviderID: info.ID,
		Email:      domain.NormalizeEmail(info.Email),
		Name:       strings.TrimSpace(info.Name),
	}
	if info.Picture != "" {
		identity.AvatarURL = &info.Picture
	}

	v.log.DebugContext(ctx, "google oauth success", slog.String("provider_id", info.ID))
	return identity, nil
}

func (v *Verifier) exchangeCode(ctx context.Context, code string) (string, error) {
	form := url.Values{
		"grant_type":    {"authorization_code"},
		"code":          {code},
		"client_id":     {v.clientID},
		"client_secret": {v.clientSecret},
		"redirect_uri":  {v.redirectURI},
	}.Encode()

	newReq := func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoints.Token, strings.NewReader(form))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return req, nil
	}

	body, status, err := v.do(ctx, newReq)
	if err != nil {
		v.log.ErrorContext(ctx, "google token exchange failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("google: token exchange: %w", err)
	}

	if status != http.StatusOK {
		var errResp errorResponse
		_ = json.Unmarshal(body, &errResp)
		v.log.WarnContext(ctx, "google token exchange rejected",
			slog.Int("status", status),
			slog.String("error", errResp.Error),
		)
		if status == http.StatusBadRequest || status == http.StatusUnauthorized {
			return "", fmt.Errorf("google: invalid or expired code: %w", domain.ErrUnauthorized)
		}
		return "", fmt.Errorf("google: token endpoint status %d", status)
	}

	var tok tokenResponse
	if err := json.Unmarshal(body, &tok); err != nil || tok.AccessToken == "" {
		return "", fmt.Errorf("google: invalid token response")
	}
	return tok.AccessToken, nil
}

func (v *Verifier) fetchUserinfo(ctx context.Context, accessToken string) (*userinfoResponse, error) {
	newReq := func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.endpoints.Userinfo, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+accessToken)
		return req, nil
	}

	body, status, err := v.do(ctx, newReq)
	if err != nil {
		v.log.ErrorContext(ctx, "google userinfo failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("google: userinfo: %w", err)
	}
	if status != http.StatusOK {
		v.log.ErrorContext(ctx, "google userinfo failed", slog.Int("status", status))
		return nil, fmt.Errorf("google: userinfo status %d", status)
	}

	var info userinfoResponse
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("google: invalid userinfo response")
	}
	if info.ID == "" || info.Email == "" {
		return nil, fmt.Errorf("google: userinfo missing id or email")
	}
	return &info, nil
}

// do sends the request built by newReq, retrying once after a network error
// or a 5xx response. It returns the final body and status code.
func (v *Verifier) do(ctx context.Context, newReq func() (*http.Request, error)) ([]byte, int, error) {
	const attempts = 2

	var lastErr error
	for attempt := range attempts {
		if attempt > 0 {
			select {
			case <-time.After(v.retryDelay):
			case <-ctx.Done():
				return nil, 0, ctx.Err()
			}
		}

		req, err := newReq()
		if err != nil {
			return nil, 0, fmt.Errorf("build request: %w", err)
		}

		resp, err := v.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, 0, ctx.Err()
			}
			lastErr = err
			continue
		}

		body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		_ = resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("read response: %w", err)
			continue
		}
		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("status %d", resp.StatusCode)
			continue
		}
		return body, resp.StatusCode, nil
	}
	return nil, 0, lastErr
}
