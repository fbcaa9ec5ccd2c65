package gear

import "github.com/go-chi/chi/v5"

// RegisterRoutes registra rutas de gear items en el router.
func RegisterRoutes(route chi.Router, handler *Handler) {
	route.Route("/gear-item", func(route chi.Router) {
		route.Post("/add", handler.Add)
		route.Get("/get", handler.List)
		route.Get("/get/{id}", handler.GetByID)
		route.Delete("/delete/{id}", handler.Delete)
		route.Put("/update/{id}", handler.Update)
		route.Patch("/update/{id}", handler.Update)
	})
}
