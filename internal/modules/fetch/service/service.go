package service

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/childsafetyawarenesswa-lgtm/childsafetyrss/internal/modules/fetch/domain"
	"github.com/samber/oops"
)

// UserAgent identifies the generator to the sites it polls.
const UserAgent = "Mozilla/5.0 (compatible; childsafetyrss/1.0; +https://github.com/childsafetyawarenesswa-lgtm/childsafetyrss)"

// AcceptLanguage matches the audience of the sites this generator targets.
const AcceptLanguage = "en-AU,en;q=0.9"

// Policy describes the bounded retry schedule for one document retrieval.
// Timeouts and backoff pauses both double per attempt, and attempts run
// strictly one after another so a slow host never sees concurrent hits.
type Policy struct {
	Attempts    int
	BaseTimeout time.Duration
	BaseBackoff time.Duration
}

// DefaultPolicy is three tries at 8s/16s/32s with 2s/4s pauses in between.
func DefaultPolicy() Policy {
	return Policy{Attempts: 3, BaseTimeout: 8 * time.Second, BaseBackoff: 2 * time.Second}
}

// Timeout returns the request timeout for a zero-based attempt index.
func (p Policy) Timeout(attempt int) time.Duration {
	return p.BaseTimeout << attempt
}

// Backoff returns the pause taken after a failed zero-based attempt index.
func (p Policy) Backoff(attempt int) time.Duration {
	return p.BaseBackoff << attempt
}

// Service retrieves documents with per-attempt timeouts and escalating
// backoff. It reports the outcome of the final attempt unchanged, so callers
// see the real underlying failure instead of a generic retry error.
type Service struct {
	client  *http.Client
	policy  Policy
	referer string
	sleep   func(ctx context.Context, d time.Duration) error
}

// New creates a fetch service. origin is the site root used as the Referer
// on every request.
func New(policy Policy, origin string) *Service {
	return &Service{
		// Each attempt carries its own context deadline, so the client
		// itself stays timeout-free.
		client:  &http.Client{},
		policy:  policy,
		referer: strings.TrimRight(origin, "/") + "/",
		sleep:   sleepContext,
	}
}

// Fetch retrieves url expecting the given content kind and returns the
// response body. Failed attempts are retried per the policy; the error of
// the last attempt is returned as-is.
func (s *Service) Fetch(ctx context.Context, url string, kind domain.ContentKind) (string, error) {
	var last error
	for attempt := 0; attempt < s.policy.Attempts; attempt++ {
		body, err := s.try(ctx, url, kind, s.policy.Timeout(attempt))
		if err == nil {
			if attempt > 0 {
				slog.Info("Fetch recovered after retry", "url", url, "attempt", attempt+1)
			}
			return body, nil
		}

		last = err
		slog.Warn("Fetch attempt failed", "url", url, "kind", kind.String(), "attempt", attempt+1, "error", err)

		if attempt < s.policy.Attempts-1 {
			if sleepErr := s.sleep(ctx, s.policy.Backoff(attempt)); sleepErr != nil {
				// Parent context is gone, further attempts are pointless.
				return "", last
			}
		}
	}
	return "", last
}

func (s *Service) try(ctx context.Context, url string, kind domain.ContentKind, timeout time.Duration) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, url, nil)
	if err != nil {
		return "", &domain.RetrievalError{URL: url, Kind: kind, Err: err}
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", kind.Accept())
	req.Header.Set("Accept-Language", AcceptLanguage)
	req.Header.Set("Referer", s.referer)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", &domain.RetrievalError{URL: url, Kind: kind, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &domain.RetrievalError{
			URL:     url,
			Kind:    kind,
			Status:  resp.StatusCode,
			Snippet: snippet(resp.Body),
		}
	}

	if ct := resp.Header.Get("Content-Type"); !kind.MatchesContentType(ct) {
		return "", &domain.RetrievalError{
			URL:     url,
			Kind:    kind,
			Status:  resp.StatusCode,
			Snippet: snippet(resp.Body),
			Err:     oops.With("content_type", ct).Errorf("content type %q is not %s", ct, kind),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &domain.RetrievalError{URL: url, Kind: kind, Err: err}
	}
	return string(body), nil
}

// snippet drains the start of a failing response so the error message shows
// what the server actually said.
func snippet(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, domain.SnippetLimit))
	return strings.TrimSpace(string(b))
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
