// Package auth loads the externally managed OAuth credential file and turns
// it into an authorized HTTP client. A Session is acquired at the start of a
// pipeline run and passed explicitly to the providers that need it; there is
// no process-wide cached session.
package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"

	"fbcw-data-service/internal/providers"
)

const tokenLifetime = time.Hour

// Yahoo OAuth2 endpoints. The credential file itself is produced by Yahoo's
// out-of-band authorization flow; this package only refreshes tokens.
var yahooEndpoint = oauth2.Endpoint{
	AuthURL:  "https://api.login.yahoo.com/oauth2/request_auth",
	TokenURL: "https://api.login.yahoo.com/oauth2/get_token",
}

// Credentials mirrors the oauth2.json layout written by the Yahoo
// authorization tooling.
type Credentials struct {
	ConsumerKey    string  `json:"consumer_key"`
	ConsumerSecret string  `json:"consumer_secret"`
	AccessToken    string  `json:"access_token"`
	RefreshToken   string  `json:"refresh_token"`
	TokenType      string  `json:"token_type"`
	TokenTime      float64 `json:"token_time"` // unix seconds the token was issued
}

// Session is an authenticated handle on the fantasy API, valid for one
// pipeline run.
type Session struct {
	client *http.Client
	source oauth2.TokenSource
}

// NewSession reads the credential file and builds a refreshing token source.
// Missing or unusable credentials surface as an AuthError; the caller must
// prompt for re-authorization rather than retry.
func NewSession(ctx context.Context, credentialsFile string) (*Session, error) {
	raw, err := os.ReadFile(credentialsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &providers.AuthError{Reason: "credential file not found: " + credentialsFile}
		}
		return nil, &providers.AuthError{Reason: "credential file unreadable", Err: err}
	}

	var creds Credentials
	if err := json.Unmarshal(raw, &creds); err != nil {
		return nil, &providers.AuthError{Reason: "credential file is not valid JSON", Err: err}
	}
	if creds.ConsumerKey == "" || creds.ConsumerSecret == "" {
		return nil, &providers.AuthError{Reason: "credential file missing consumer key/secret"}
	}
	if creds.RefreshToken == "" {
		return nil, &providers.AuthError{Reason: "credential file missing refresh token; re-authorize"}
	}

	cfg := &oauth2.Config{
		ClientID:     creds.ConsumerKey,
		ClientSecret: creds.ConsumerSecret,
		Endpoint:     yahooEndpoint,
	}

	token := &oauth2.Token{
		AccessToken:  creds.AccessToken,
		RefreshToken: creds.RefreshToken,
		TokenType:    creds.TokenType,
		Expiry:       time.Unix(int64(creds.TokenTime), 0).Add(tokenLifetime),
	}

	source := cfg.TokenSource(ctx, token)
	return &Session{
		client: oauth2.NewClient(ctx, source),
		source: source,
	}, nil
}

// Client returns an HTTP client that attaches and refreshes the OAuth token.
func (s *Session) Client() *http.Client {
	return s.client
}

// Token forces a token fetch/refresh, mapping refresh failures to AuthError
// so callers can tell "re-authorize" apart from "source down".
func (s *Session) Token() (*oauth2.Token, error) {
	tok, err := s.source.Token()
	if err != nil {
		return nil, &providers.AuthError{Reason: "token refresh failed", Err: err}
	}
	return tok, nil
}
