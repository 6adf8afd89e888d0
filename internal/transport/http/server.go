package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	feedRepo "github.com/childsafetyawarenesswa-lgtm/childsafetyrss/internal/modules/feed/repository"
	"github.com/childsafetyawarenesswa-lgtm/childsafetyrss/internal/shared/config"
	sharedErrors "github.com/childsafetyawarenesswa-lgtm/childsafetyrss/internal/shared/errors"
	"github.com/gorilla/feeds"
	"github.com/mmcdole/gofeed"
	sloghttp "github.com/samber/slog-http"
)

// Server exposes the published feed over HTTP for readers that poll the
// generator host directly instead of the static file.
type Server struct {
	cfg    *config.Config
	repo   feedRepo.Repository
	parser *gofeed.Parser
	logger *slog.Logger
}

// New creates a new HTTP server
func New(cfg *config.Config, repo feedRepo.Repository) *Server {
	return &Server{
		cfg:    cfg,
		repo:   repo,
		parser: gofeed.NewParser(),
		logger: slog.Default(),
	}
}

// SetLogger sets the logger
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Start starts the HTTP server
func (s *Server) Start() error {
	mux := http.NewServeMux()

	// Published feed, as written by the pipeline
	mux.HandleFunc("GET /feed.xml", s.handleRSS)

	// Same artifact converted to Atom on the fly
	mux.HandleFunc("GET /atom.xml", s.handleAtom)

	// Health check endpoint
	mux.HandleFunc("GET /health", s.handleHealth)

	// Root endpoint with instructions
	mux.HandleFunc("GET /", s.handleRoot)

	addr := fmt.Sprintf(":%s", s.cfg.HTTPPort)
	s.logger.Info("Feed server starting", "addr", addr)

	// Use slog-http middleware with recovery
	handler := sloghttp.Recovery(mux)
	handler = sloghttp.New(s.logger)(handler)

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return server.ListenAndServe()
}

func (s *Server) handleRSS(w http.ResponseWriter, r *http.Request) {
	xmlText, ok := s.readArtifact(w)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=300") // Cache for 5 minutes
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(xmlText))
}

func (s *Server) handleAtom(w http.ResponseWriter, r *http.Request) {
	xmlText, ok := s.readArtifact(w)
	if !ok {
		return
	}

	parsed, err := s.parser.ParseString(xmlText)
	if err != nil {
		s.logger.Error("Error parsing published feed", "error", err)
		http.Error(w, "Failed to convert feed", http.StatusInternalServerError)
		return
	}

	atom, err := toAtom(parsed)
	if err != nil {
		s.logger.Error("Error converting feed to Atom", "error", err)
		http.Error(w, "Failed to convert feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/atom+xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=300")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(atom))
}

// readArtifact loads the published document, answering 404 before the first
// publish and 500 on storage trouble.
func (s *Server) readArtifact(w http.ResponseWriter) (string, bool) {
	xmlText, err := s.repo.Read()
	if err != nil {
		if errors.Is(err, sharedErrors.ErrFeedNotPublished) {
			http.Error(w, "Feed has not been generated yet", http.StatusNotFound)
			return "", false
		}
		s.logger.Error("Error reading published feed", "error", err)
		http.Error(w, "Failed to read feed", http.StatusInternalServerError)
		return "", false
	}
	return xmlText, true
}

func toAtom(parsed *gofeed.Feed) (string, error) {
	converted := &feeds.Feed{
		Title:       parsed.Title,
		Link:        &feeds.Link{Href: parsed.Link},
		Description: parsed.Description,
	}
	if parsed.UpdatedParsed != nil {
		converted.Updated = *parsed.UpdatedParsed
	}

	for _, entry := range parsed.Items {
		item := &feeds.Item{
			Title:       entry.Title,
			Link:        &feeds.Link{Href: entry.Link},
			Description: entry.Description,
			Id:          entry.GUID,
		}
		if item.Id == "" {
			item.Id = entry.Link
		}
		if entry.PublishedParsed != nil {
			item.Created = *entry.PublishedParsed
		}
		converted.Items = append(converted.Items, item)
	}

	return converted.ToAtom()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	html := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <title>%s</title>
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 50px auto; padding: 20px; }
        h1 { color: #333; }
        .info { background: #f5f5f5; padding: 15px; border-radius: 5px; margin: 20px 0; }
        code { background: #e8e8e8; padding: 2px 6px; border-radius: 3px; }
    </style>
</head>
<body>
    <h1>%s</h1>
    <div class="info">
        <p>This service republishes the news listing at <code>%s</code> as a feed.</p>
        <p>RSS 2.0: <a href="/feed.xml"><code>/feed.xml</code></a></p>
        <p>Atom: <a href="/atom.xml"><code>/atom.xml</code></a></p>
    </div>
    <p><a href="/health">Health Check</a></p>
</body>
</html>`, s.cfg.ChannelTitle, s.cfg.ChannelTitle, s.cfg.ListingURL)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}
