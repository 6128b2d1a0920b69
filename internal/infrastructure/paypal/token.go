package paypal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

var ErrTokenUnavailable = errors.New("paypal access token unavailable")

const (
	tokenCacheKey = "access_token"

	// Cached tokens are considered fresh for 60 seconds; PayPal's own
	// expiry is much longer, but a short TTL keeps a revoked credential
	// from lingering.
	tokenTTL = 60 * time.Second
)

// accessToken returns the cached bearer token or performs a
// client-credentials exchange. The cache is shared across concurrent
// requests; concurrent misses may each fetch and overwrite, which costs
// a redundant round trip and nothing else (tokens are idempotent
// credentials).
func (c *Client) accessToken(ctx context.Context) (string, error) {
	if token, ok := c.tokens.Get(tokenCacheKey); ok {
		return token, nil
	}

	token, err := c.exchangeToken(ctx)
	if err != nil {
		return "", err
	}

	c.tokens.Add(tokenCacheKey, token)
	return token, nil
}

func (c *Client) exchangeToken(ctx context.Context) (string, error) {
	body := strings.NewReader("grant_type=client_credentials")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/oauth2/token", body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenUnavailable, err)
	}
	req.SetBasicAuth(c.cfg.ClientID, c.cfg.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[paypal][token] exchange request failed err=%v", err)
		return "", fmt.Errorf("%w: %v", ErrTokenUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		log.Printf("[paypal][token] exchange rejected status=%d body=%s", resp.StatusCode, respBody)
		return "", fmt.Errorf("%w: status %d", ErrTokenUnavailable, resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenUnavailable, err)
	}
	if tr.AccessToken == "" {
		return "", ErrTokenUnavailable
	}
	return tr.AccessToken, nil
}
