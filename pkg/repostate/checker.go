package repostate

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lerenn/adogh/pkg/logger"
	"golang.org/x/time/rate"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=checker.go -destination=mocks/checker.gen.go -package=mocks

const (
	// DefaultTimeout bounds a single page fetch.
	DefaultTimeout = 10 * time.Second
	// DefaultRequestsPerSecond bounds page fetches against Azure DevOps.
	// It is also the burst size.
	DefaultRequestsPerSecond = 5
	// MaxPageSize caps how much of a fetched page is scanned for disabled phrases.
	MaxPageSize = 10 << 20
	// EnvADOToken holds an optional Azure DevOps personal access token.
	EnvADOToken = "ADO_TOKEN"
)

// Status is the outcome of a repository page check.
type Status struct {
	URL        string `json:"url,omitempty"`
	IsDisabled bool   `json:"isDisabled"`
}

// Checker fetches a repository page and reports whether it is disabled.
type Checker interface {
	Check(ctx context.Context, url string) (Status, error)
}

// NewCheckerParams contains parameters for creating a new Checker.
type NewCheckerParams struct {
	// HTTPClient defaults to a client with DefaultTimeout.
	HTTPClient *http.Client
	// Token is an optional Azure DevOps personal access token.
	Token string
	// Limiter paces page fetches; defaults to DefaultRequestsPerSecond.
	Limiter *rate.Limiter
	Logger  logger.Logger
}

type realChecker struct {
	client  *http.Client
	token   string
	limiter *rate.Limiter
	logger  logger.Logger
}

// NewChecker creates a new Checker.
func NewChecker(params NewCheckerParams) Checker {
	c := &realChecker{
		client:  params.HTTPClient,
		token:   params.Token,
		limiter: params.Limiter,
		logger:  params.Logger,
	}
	if c.client == nil {
		c.client = &http.Client{Timeout: DefaultTimeout}
	}
	if c.limiter == nil {
		c.limiter = NewDefaultLimiter()
	}
	if c.logger == nil {
		c.logger = logger.NewNoopLogger()
	}
	return c
}

// NewDefaultLimiter allows DefaultRequestsPerSecond fetches per second.
func NewDefaultLimiter() *rate.Limiter {
	return rate.NewLimiter(rate.Limit(DefaultRequestsPerSecond), DefaultRequestsPerSecond)
}

// Check fetches url and runs the disabled phrase detection on its visible text.
func (c *realChecker) Check(ctx context.Context, url string) (Status, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return Status{}, fmt.Errorf("%w: %w", ErrFetchPage, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Status{}, fmt.Errorf("%w: %w", ErrFetchPage, err)
	}
	if c.token != "" {
		// Azure DevOps accepts a PAT as the basic auth password with an empty user.
		req.SetBasicAuth("", c.token)
	}

	c.logger.Logf("Fetching %s", url)
	resp, err := c.client.Do(req)
	if err != nil {
		return Status{}, fmt.Errorf("%w: %w", ErrFetchPage, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		return Status{}, fmt.Errorf("%w: %s returned %d", ErrUnexpectedStatus, url, resp.StatusCode)
	}

	text, err := VisibleText(io.LimitReader(resp.Body, MaxPageSize))
	if err != nil {
		return Status{}, err
	}

	return Status{URL: url, IsDisabled: IsRepositoryDisabled(text)}, nil
}
