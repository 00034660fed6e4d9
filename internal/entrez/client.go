// Package entrez is a client for the NCBI Entrez E-utilities:
// esearch, elink, esummary and efetch.
package entrez

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"golang.org/x/time/rate"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// transientTries is how often a request is re-sent after a network
// error or a 429/5xx response before giving up on it.
const transientTries = 3

// Config holds Entrez connection and identity settings. Email and
// Tool are sent with every request, as NCBI requires.
type Config struct {
	BaseURL string // e.g. https://eutils.ncbi.nlm.nih.gov/entrez/eutils
	Email   string
	Tool    string
	APIKey  string // optional
	Verbose bool
}

// Client executes rate-limited requests against the E-utilities.
type Client struct {
	HTTPClient *http.Client
	Config     Config

	limiter *rate.Limiter
}

// NewClient returns a client capped at reqPerSec requests per second
// with a per-request timeout. NCBI asks for at most 3 requests per
// second from unkeyed clients.
func NewClient(cfg Config, reqPerSec float64, timeout time.Duration) *Client {
	if reqPerSec <= 0 {
		reqPerSec = 3
	}
	return &Client{
		HTTPClient: &http.Client{Timeout: timeout},
		Config:     cfg,
		limiter:    rate.NewLimiter(rate.Limit(reqPerSec), 1),
	}
}

// get executes one E-utility request and returns the response body.
// Transient failures (network errors, 429 and 5xx responses) are
// retried a few times before being returned as a *TransportError.
func (c *Client) get(ctx context.Context, util string, params url.Values) ([]byte, error) {
	params.Set("email", c.Config.Email)
	params.Set("tool", c.Config.Tool)
	if c.Config.APIKey != "" {
		params.Set("api_key", c.Config.APIKey)
	}

	u := fmt.Sprintf("%s/%s?%s", c.Config.BaseURL, util, params.Encode())

	var lastErr error
	for try := 0; try < transientTries; try++ {
		if try > 0 {
			time.Sleep(time.Duration(try) * 500 * time.Millisecond)
		}
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &TransportError{Util: util, Err: err}
		}

		if c.Config.Verbose {
			stderr.Printf("GET %s", u)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, &TransportError{Util: util, Err: err}
		}

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			return body, nil
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			lastErr = fmt.Errorf("%s: %s", resp.Status, string(body))
			continue
		default:
			return nil, &TransportError{Util: util, Err: fmt.Errorf("%s: %s", resp.Status, string(body))}
		}
	}

	return nil, &TransportError{Util: util, Err: lastErr}
}
