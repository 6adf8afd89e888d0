package service

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	feedRepo "github.com/childsafetyawarenesswa-lgtm/childsafetyrss/internal/modules/feed/repository"
	feedService "github.com/childsafetyawarenesswa-lgtm/childsafetyrss/internal/modules/feed/service"
	fetchDomain "github.com/childsafetyawarenesswa-lgtm/childsafetyrss/internal/modules/fetch/domain"
	itemDomain "github.com/childsafetyawarenesswa-lgtm/childsafetyrss/internal/modules/item/domain"
	"github.com/childsafetyawarenesswa-lgtm/childsafetyrss/internal/modules/pipeline/domain"
	"github.com/childsafetyawarenesswa-lgtm/childsafetyrss/internal/shared/config"
	"github.com/samber/oops"
)

// Fetcher retrieves one document with retries.
type Fetcher interface {
	Fetch(ctx context.Context, url string, kind fetchDomain.ContentKind) (string, error)
}

// HTMLExtractor mines items out of listing page markup.
type HTMLExtractor interface {
	Extract(htmlText string) []itemDomain.Item
}

// FeedExtractor normalizes an already structured fallback feed.
type FeedExtractor interface {
	Extract(feedText string) ([]itemDomain.Item, error)
}

// Service drives one full degradation pass: primary listing page, optional
// fallback feed, then the preserve-or-placeholder decision. It also owns the
// periodic refresh used in serve mode.
type Service struct {
	cfg      *config.Config
	fetcher  Fetcher
	html     HTMLExtractor
	feed     FeedExtractor
	composer *feedService.Service
	repo     feedRepo.Repository

	now        func() time.Time
	ctx        context.Context
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
}

// New creates a new pipeline service
func New(
	cfg *config.Config,
	fetcher Fetcher,
	html HTMLExtractor,
	feed FeedExtractor,
	composer *feedService.Service,
	repo feedRepo.Repository,
) *Service {
	ctx, cancel := context.WithCancel(context.Background())
	return &Service{
		cfg:        cfg,
		fetcher:    fetcher,
		html:       html,
		feed:       feed,
		composer:   composer,
		repo:       repo,
		now:        time.Now,
		ctx:        ctx,
		cancelFunc: cancel,
	}
}

// Run executes one complete pass. The returned error is reserved for faults
// the fallback chain cannot absorb, like output I/O; source failures always
// resolve into a published or preserved artifact.
func (s *Service) Run(ctx context.Context) error {
	var failures []string
	var runErr error

	stage := domain.StageTryPrimary
	for stage != domain.StageDone {
		switch stage {
		case domain.StageTryPrimary:
			items, outcome := s.tryPrimary(ctx)
			if outcome.Usable(s.cfg.EmptyIsFailure) {
				runErr = s.publish(items)
				stage = domain.StageDone
				break
			}
			failures = append(failures, describe("listing page", outcome))
			stage = stage.Advance(s.cfg.FallbackFeedURL != "")

		case domain.StageTrySecondary:
			items, outcome := s.trySecondary(ctx)
			if outcome.Usable(s.cfg.EmptyIsFailure) {
				runErr = s.publish(items)
				stage = domain.StageDone
				break
			}
			failures = append(failures, describe("fallback feed", outcome))
			stage = stage.Advance(false)

		case domain.StageTryPlaceholder:
			runErr = s.settle(failures)
			stage = stage.Advance(false)
		}
	}
	return runErr
}

func (s *Service) tryPrimary(ctx context.Context) ([]itemDomain.Item, domain.Outcome) {
	body, err := s.fetcher.Fetch(ctx, s.cfg.ListingURL, fetchDomain.ContentKindHtml)
	if err != nil {
		return nil, domain.Outcome{Err: err}
	}
	items := s.html.Extract(body)
	slog.Info("Listing page extracted", "url", s.cfg.ListingURL, "items", len(items))
	return items, domain.Outcome{Items: len(items)}
}

func (s *Service) trySecondary(ctx context.Context) ([]itemDomain.Item, domain.Outcome) {
	body, err := s.fetcher.Fetch(ctx, s.cfg.FallbackFeedURL, fetchDomain.ContentKindFeed)
	if err != nil {
		return nil, domain.Outcome{Err: err}
	}
	items, err := s.feed.Extract(body)
	if err != nil {
		return nil, domain.Outcome{Err: err}
	}
	slog.Info("Fallback feed extracted", "url", s.cfg.FallbackFeedURL, "items", len(items))
	return items, domain.Outcome{Items: len(items)}
}

func (s *Service) publish(items []itemDomain.Item) error {
	composed := s.composer.Compose(s.now(), items)
	xmlText, err := composed.RenderRSS()
	if err != nil {
		return oops.With("context", "rendering feed").Wrap(err)
	}
	if err := s.repo.Write(xmlText); err != nil {
		return oops.With("context", "writing feed").Wrap(err)
	}
	slog.Info("Feed published", "items", len(items))
	return nil
}

// settle resolves a run in which every source failed. It never publishes
// over an existing artifact.
func (s *Service) settle(failures []string) error {
	detail := strings.Join(failures, "; ")

	exists, err := s.repo.Exists()
	if err != nil {
		return oops.With("context", "checking previous feed").Wrap(err)
	}

	if domain.DecideOutput(exists) == domain.DecisionPreserve {
		slog.Warn("All sources failed, keeping previous feed", "detail", detail)
		return nil
	}

	composed := s.composer.ComposePlaceholder(s.now(), detail)
	xmlText, err := composed.RenderRSS()
	if err != nil {
		return oops.With("context", "rendering placeholder feed").Wrap(err)
	}
	if err := s.repo.Write(xmlText); err != nil {
		return oops.With("context", "writing placeholder feed").Wrap(err)
	}
	slog.Warn("All sources failed, placeholder feed published", "detail", detail)
	return nil
}

func describe(source string, o domain.Outcome) string {
	if o.Err != nil {
		return source + ": " + o.Err.Error()
	}
	return source + ": no items extracted"
}

// Start runs the pipeline immediately and then on every update interval
// until Stop is called. One-shot invocations call Run directly instead.
func (s *Service) Start() {
	s.wg.Add(1)
	go s.refreshLoop()
}

// Stop halts the periodic refresh and waits for an in-flight run to finish.
func (s *Service) Stop() {
	s.cancelFunc()
	s.wg.Wait()
}

func (s *Service) refreshLoop() {
	defer s.wg.Done()

	interval := time.Duration(s.cfg.UpdateInterval) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	slog.Info("Feed refresh loop started", "interval", interval.String())

	if err := s.Run(s.ctx); err != nil {
		slog.Error("Feed refresh failed", "error", err)
	}

	for {
		select {
		case <-s.ctx.Done():
			slog.Info("Feed refresh loop stopped")
			return
		case <-ticker.C:
			if err := s.Run(s.ctx); err != nil {
				slog.Error("Feed refresh failed", "error", err)
			}
		}
	}
}
