package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Static wires the SPA front door: the entry point at the root and the
// prebuilt asset bundle under /dist/.
func Static(r chi.Router, indexFile, staticDir string) {
	r.Handle("/dist/*", http.StripPrefix("/dist/", http.FileServer(http.Dir(staticDir))))

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFile(w, req, indexFile)
	})
}
