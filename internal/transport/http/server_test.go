package http

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	feedRepo "github.com/childsafetyawarenesswa-lgtm/childsafetyrss/internal/modules/feed/repository"
	"github.com/childsafetyawarenesswa-lgtm/childsafetyrss/internal/shared/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const publishedRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Example News</title>
    <link>https://example.org/news</link>
    <description>Updates</description>
    <lastBuildDate>Sat, 01 Jun 2024 09:00:00 +0000</lastBuildDate>
    <item>
      <title>First Story</title>
      <link>https://example.org/news/first</link>
      <guid isPermaLink="false">acme:https://example.org/news/first</guid>
      <pubDate>Sat, 01 Jun 2024 08:00:00 +0000</pubDate>
    </item>
  </channel>
</rss>`

func newTestServer(t *testing.T) (*Server, feedRepo.Repository) {
	t.Helper()
	repo, err := feedRepo.NewFileStorage(filepath.Join(t.TempDir(), "feed.xml"))
	require.NoError(t, err)

	cfg := &config.Config{
		ChannelTitle: "Example News",
		ListingURL:   "https://example.org/news",
		HTTPPort:     "8080",
	}
	return New(cfg, repo), repo
}

func TestHandleRSSBeforeFirstPublish(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.handleRSS(rec, httptest.NewRequest(http.MethodGet, "/feed.xml", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleRSSServesArtifactVerbatim(t *testing.T) {
	srv, repo := newTestServer(t)
	require.NoError(t, repo.Write(publishedRSS))

	rec := httptest.NewRecorder()
	srv.handleRSS(rec, httptest.NewRequest(http.MethodGet, "/feed.xml", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/rss+xml; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, publishedRSS, rec.Body.String())
}

func TestHandleAtomConvertsArtifact(t *testing.T) {
	srv, repo := newTestServer(t)
	require.NoError(t, repo.Write(publishedRSS))

	rec := httptest.NewRecorder()
	srv.handleAtom(rec, httptest.NewRequest(http.MethodGet, "/atom.xml", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/atom+xml; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `xmlns="http://www.w3.org/2005/Atom"`)
	assert.Contains(t, rec.Body.String(), "First Story")
	assert.Contains(t, rec.Body.String(), "acme:https://example.org/news/first")
}

func TestHandleAtomBeforeFirstPublish(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.handleAtom(rec, httptest.NewRequest(http.MethodGet, "/atom.xml", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleRootListsEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.handleRoot(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/feed.xml")
	assert.Contains(t, rec.Body.String(), "/atom.xml")
	assert.Contains(t, rec.Body.String(), "Example News")
}
