package docs

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta las rutas de documentación (Swagger UI + OpenAPI YAML).
func RegisterRoutes(r chi.Router) {
	// /docs (sin slash) redirige a /docs/ para que los paths relativos del HTML resuelvan bien.
	r.Get("/docs", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/docs/", http.StatusMovedPermanently)
	})
	r.Get("/docs/", SwaggerUIHandler())
	r.Get("/docs/openapi.yaml", OpenAPIHandler())
}
