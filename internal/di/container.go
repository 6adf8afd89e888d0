package di

import (
	"log/slog"

	extractService "github.com/childsafetyawarenesswa-lgtm/childsafetyrss/internal/modules/extract/service"
	feedRepo "github.com/childsafetyawarenesswa-lgtm/childsafetyrss/internal/modules/feed/repository"
	feedService "github.com/childsafetyawarenesswa-lgtm/childsafetyrss/internal/modules/feed/service"
	fetchService "github.com/childsafetyawarenesswa-lgtm/childsafetyrss/internal/modules/fetch/service"
	pipelineService "github.com/childsafetyawarenesswa-lgtm/childsafetyrss/internal/modules/pipeline/service"
	"github.com/childsafetyawarenesswa-lgtm/childsafetyrss/internal/shared/config"
	httpServer "github.com/childsafetyawarenesswa-lgtm/childsafetyrss/internal/transport/http"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
)

// Setup initializes the dependency injection container
func Setup() (do.Injector, error) {
	injector := do.New()

	// Register Config
	do.Provide(injector, func(i do.Injector) (*config.Config, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, oops.With("context", "failed to load config").Wrap(err)
		}
		return cfg, nil
	})

	// Register Feed Repository
	do.Provide(injector, func(i do.Injector) (feedRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repo, err := feedRepo.NewFileStorage(cfg.OutputPath)
		if err != nil {
			return nil, oops.With("output_path", cfg.OutputPath, "context", "failed to initialize feed repository").Wrap(err)
		}
		return repo, nil
	})

	// Register Fetch Service
	do.Provide(injector, func(i do.Injector) (*fetchService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return fetchService.New(fetchService.DefaultPolicy(), cfg.SiteOrigin), nil
	})

	// Register HTML Extractor
	do.Provide(injector, func(i do.Injector) (*extractService.HTML, error) {
		cfg := do.MustInvoke[*config.Config](i)
		html, err := extractService.NewHTML(cfg.SiteOrigin, cfg.ListingPathPrefix, cfg.GUIDNamespace)
		if err != nil {
			return nil, oops.With("site_origin", cfg.SiteOrigin, "context", "failed to initialize html extractor").Wrap(err)
		}
		return html, nil
	})

	// Register Feed Extractor
	do.Provide(injector, func(i do.Injector) (*extractService.Feed, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return extractService.NewFeed(cfg.GUIDNamespace), nil
	})

	// Register Feed Service
	do.Provide(injector, func(i do.Injector) (*feedService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return feedService.New(cfg), nil
	})

	// Register Pipeline Service
	do.Provide(injector, func(i do.Injector) (*pipelineService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		fetcher := do.MustInvoke[*fetchService.Service](i)
		html := do.MustInvoke[*extractService.HTML](i)
		feed := do.MustInvoke[*extractService.Feed](i)
		composer := do.MustInvoke[*feedService.Service](i)
		repo := do.MustInvoke[feedRepo.Repository](i)
		return pipelineService.New(cfg, fetcher, html, feed, composer, repo), nil
	})

	// Register HTTP Server
	do.Provide(injector, func(i do.Injector) (*httpServer.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repo := do.MustInvoke[feedRepo.Repository](i)
		server := httpServer.New(cfg, repo)
		server.SetLogger(slog.Default())
		return server, nil
	})

	return injector, nil
}

// Shutdown gracefully shuts down all services
func Shutdown(injector do.Injector) error {
	// Stop the periodic refresh if it is running
	if pipeline, err := do.Invoke[*pipelineService.Service](injector); err == nil && pipeline != nil {
		pipeline.Stop()
	}

	return nil
}
