// Common test helpers
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/meghashyamc/sitesearch/config"
	"github.com/meghashyamc/sitesearch/db/indexdb"
	"github.com/meghashyamc/sitesearch/db/relateddb"
	"github.com/meghashyamc/sitesearch/db/snapshotdb"
	"github.com/meghashyamc/sitesearch/logger"
	"github.com/meghashyamc/sitesearch/services/index"
	"github.com/meghashyamc/sitesearch/services/search"
	"github.com/meghashyamc/sitesearch/validation"
	"github.com/stretchr/testify/require"
)

const testHomepageHTML = `<!DOCTYPE html>
<html><body>
<section id="features" class="hero-card">
  <h1>Run Models Locally</h1>
  <p>Everything stays on your machine, even with no network connection.</p>
</section>
<section id="download">
  <h2>Download</h2>
  <p>Grab the latest release for your platform.</p>
</section>
<section id="model-comparison">
  <h2>Model Comparison</h2>
  <p>Compare model sizes and hardware requirements side by side.</p>
</section>
</body></html>`

const testDocPageHTML = `<!DOCTYPE html>
<html><body>
<h1>Guide</h1>
<p>Welcome! This guide walks you through your first session with the app.</p>
<h2 id="first-model">Loading your first model</h2>
<p>Open the model browser and pick a model that fits your memory.</p>
</body></html>`

const testModelsJSON = `{
  "models": [
    {
      "id": "tiny",
      "name": "Tiny 1B",
      "description": "A compact model for quick answers.",
      "useCase": ["chat", "summaries"],
      "tags": ["fast", "cpu"],
      "difficulty": "beginner"
    }
  ]
}`

// newUpstreamServer fakes the static site the index is built from.
func newUpstreamServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(testHomepageHTML))
	})
	mux.HandleFunc("/docs/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testDocPageHTML))
	})
	mux.HandleFunc("/data/models.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(testModelsJSON))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

// setupTestServer wires the full handler stack over an index built from the
// fake upstream site.
func setupTestServer(t *testing.T, assert *require.Assertions) *gin.Engine {
	gin.SetMode(gin.TestMode)

	upstream := newUpstreamServer(t)
	t.Setenv("ENV", "test")
	t.Setenv("SOURCES_BASE_URL", upstream.URL)
	t.Setenv("SNAPSHOT_PATH", filepath.Join(t.TempDir(), "snapshot.db"))

	cfg, err := config.Load()
	assert.NoError(err)

	log := logger.New()

	related, err := relateddb.New(log)
	assert.NoError(err)
	t.Cleanup(func() { related.Close() })

	snapshots, err := snapshotdb.New(log, cfg)
	assert.NoError(err)
	t.Cleanup(func() { snapshots.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	holder := indexdb.NewHolder()
	indexService := index.New(ctx, log, cfg, holder, related, snapshots)
	indexService.BuildNow(ctx)

	searchService := search.New(log, holder, related)

	validator, err := validation.New(log)
	assert.NoError(err)

	router := gin.New()
	SetupSearch(router, log, searchService, validator)
	SetupSuggest(router, log, searchService, validator)
	SetupRelated(router, log, searchService, validator)
	SetupIndex(router, log, indexService)

	return router
}

func makeTestHTTPRequest(router *gin.Engine, method string, path string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(method, path, nil)
	router.ServeHTTP(recorder, request)
	return recorder
}

// decodeResponse unpacks the {data, errors} envelope every endpoint writes.
func decodeResponse[T any](assert *require.Assertions, recorder *httptest.ResponseRecorder, data *T) []string {
	var envelope struct {
		Data   T        `json:"data"`
		Errors []string `json:"errors"`
	}
	assert.NoError(json.Unmarshal(recorder.Body.Bytes(), &envelope))
	if data != nil {
		*data = envelope.Data
	}
	return envelope.Errors
}
