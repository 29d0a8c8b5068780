// Package docs exposes a generated API document over HTTP: a browsable UI
// page at the mount root plus JSON and YAML downloads of the same in-memory
// document.
package docs

import (
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
)

// Document is any API description serializable to both JSON and YAML. Both
// representations must describe the same value.
type Document interface {
	JSON() ([]byte, error)
	YAML() ([]byte, error)
}

// Config holds presentation settings for the documentation UI.
type Config struct {
	// Title shown in the browser tab / UI header. Defaults to
	// "API Documentation".
	Title string
	// UITemplate is the HTML page rendering the UI. It must contain the
	// placeholders {{.Title}} and {{.SpecURL}}. Defaults to
	// SwaggerUITemplate.
	UITemplate UITemplate
}

// UITemplate is an HTML page template for the documentation UI. A distinct
// type keeps it from being mixed up with regular strings.
type UITemplate string

// Handler serves one document. The document can be swapped at runtime with
// Update, which lets callers rebuild on source changes without re-mounting
// routes. Both downloads are serialized once per Update, so every request
// for the same document is byte-for-byte identical.
type Handler struct {
	router   chi.Router
	rendered atomic.Pointer[renderedDocument]
}

type renderedDocument struct {
	json []byte
	yaml []byte
}

// NewHandler builds a Handler for doc. Mount it under any route prefix; it
// serves the UI at its root, the JSON download at json and the YAML
// download at yaml.
func NewHandler(doc Document, cfg Config) (*Handler, error) {
	if cfg.Title == "" {
		cfg.Title = "API Documentation"
	}
	if cfg.UITemplate == "" {
		cfg.UITemplate = SwaggerUITemplate
	}

	h := &Handler{}
	if err := h.Update(doc); err != nil {
		return nil, err
	}

	page := strings.NewReplacer(
		"{{.Title}}", cfg.Title,
		"{{.SpecURL}}", "json",
	).Replace(string(cfg.UITemplate))

	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		// The UI references the spec with a relative URL, which only
		// resolves under the mount prefix when the path ends in a slash.
		if !strings.HasSuffix(req.URL.Path, "/") {
			http.Redirect(w, req, req.URL.Path+"/", http.StatusMovedPermanently)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
	})
	r.Get("/json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Content-Disposition", "attachment; filename=api.json")
		_, _ = w.Write(h.rendered.Load().json)
	})
	r.Get("/yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/x-yaml; charset=utf-8")
		w.Header().Set("Content-Disposition", "attachment; filename=api.yaml")
		_, _ = w.Write(h.rendered.Load().yaml)
	})
	h.router = r
	return h, nil
}

// Update swaps the served document. Serialization happens here, once, so a
// failed document never replaces a good one halfway.
func (h *Handler) Update(doc Document) error {
	if doc == nil {
		return fmt.Errorf("docs: nil document")
	}
	jsonBytes, err := doc.JSON()
	if err != nil {
		return fmt.Errorf("serialize document to JSON: %w", err)
	}
	yamlBytes, err := doc.YAML()
	if err != nil {
		return fmt.Errorf("serialize document to YAML: %w", err)
	}
	h.rendered.Store(&renderedDocument{json: jsonBytes, yaml: yamlBytes})
	return nil
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// SwaggerUITemplate renders the document with Swagger UI from a public CDN.
const SwaggerUITemplate UITemplate = `<!DOCTYPE html>
<html>
<head>
    <title>{{.Title}}</title>
    <meta charset="utf-8">
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist/swagger-ui.css">
</head>
<body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist/swagger-ui-bundle.js"></script>
    <script>
        window.onload = function() {
            SwaggerUIBundle({
                url: "{{.SpecURL}}",
                dom_id: '#swagger-ui',
                presets: [
                    SwaggerUIBundle.presets.apis,
                    SwaggerUIBundle.SwaggerUIStandalonePreset
                ],
                layout: "BaseLayout"
            });
        }
    </script>
</body>
</html>`

// RedocUITemplate renders the document with Redoc.
const RedocUITemplate UITemplate = `<!DOCTYPE html>
<html>
<head>
    <title>{{.Title}}</title>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <style>body { margin: 0; padding: 0; }</style>
</head>
<body>
    <redoc spec-url="{{.SpecURL}}"></redoc>
    <script src="https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"></script>
</body>
</html>`
