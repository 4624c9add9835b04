// Common test helpers
package index

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/meghashyamc/sitesearch/logger"
)

func newTestLogger() logger.Logger {

	opts := &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	}
	handler := slog.NewJSONHandler(os.Stderr, opts)
	return slog.New(handler)
}

// fakeSource lets indexing logic run against hand-built nodes, without a
// parsed document.
type fakeSource struct {
	nodes      []ContentNode
	elementIDs map[string]bool
}

func (f *fakeSource) Select(selector string) []ContentNode {
	return f.nodes
}

func (f *fakeSource) HasElement(id string) bool {
	return f.elementIDs[id]
}

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
<p>too short</p>
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
    },
    {
      "id": "big",
      "name": "Big 70B",
      "description": "A heavyweight model for complex reasoning.",
      "useCase": ["analysis"],
      "tags": ["gpu"],
      "difficulty": "advanced"
    }
  ]
}`

// newUpstreamServer fakes the static site: a homepage, documentation pages
// (troubleshooting deliberately missing), and the model-data resource.
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
		if r.URL.Path == "/docs/troubleshooting.html" {
			http.NotFound(w, r)
			return
		}
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
