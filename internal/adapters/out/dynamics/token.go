package dynamics

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"shipsync/internal/pkg/errs"
)

// Tokens are refreshed this long before their reported expiry so a
// request never goes out with a token about to lapse mid-flight.
const tokenExpiryMargin = 300 * time.Second

// tokenSource caches the Azure AD client-credentials token in memory and
// refreshes it on demand. Safe for concurrent use.
type tokenSource struct {
	mu     sync.Mutex
	cfg    Config
	http   *http.Client
	token  string
	expiry time.Time
	now    func() time.Time
}

func newTokenSource(cfg Config, httpClient *http.Client) *tokenSource {
	return &tokenSource{
		cfg:  cfg,
		http: httpClient,
		now:  time.Now,
	}
}

type tokenResponse struct {
	AccessToken string      `json:"access_token"`
	ExpiresIn   json.Number `json:"expires_in"`
}

// Token returns the cached bearer token, fetching a fresh one when the
// cache is empty or inside the expiry margin.
func (ts *tokenSource) Token(ctx context.Context) (string, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.token != "" && ts.now().Before(ts.expiry) {
		return ts.token, nil
	}

	form := url.Values{
		"grant_type":    []string{"client_credentials"},
		"client_id":     []string{ts.cfg.ClientID},
		"client_secret": []string{ts.cfg.ClientSecret},
		"resource":      []string{ts.cfg.ResourceURL},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		ts.cfg.tokenEndpoint(), strings.NewReader(form.Encode()))
	if err != nil {
		return "", errs.NewExternalCallError("erp auth", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := ts.http.Do(req)
	if err != nil {
		return "", errs.NewExternalCallError("erp auth", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errs.NewExternalCallError("erp auth", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", errs.NewExternalCallErrorWithBody("erp auth", string(body),
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return "", errs.NewExternalCallError("erp auth", err)
	}
	if token.AccessToken == "" {
		return "", errs.NewExternalCallError("erp auth",
			fmt.Errorf("token response carries no access token"))
	}

	lifetime, err := token.ExpiresIn.Int64()
	if err != nil || lifetime <= 0 {
		lifetime = int64(tokenExpiryMargin / time.Second)
	}

	ts.token = token.AccessToken
	ts.expiry = ts.now().Add(time.Duration(lifetime)*time.Second - tokenExpiryMargin)
	return ts.token, nil
}
