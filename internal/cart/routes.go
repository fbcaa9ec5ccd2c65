package cart

import "github.com/go-chi/chi/v5"

// RegisterRoutes registra rutas del carrito en el router.
func RegisterRoutes(route chi.Router, handler *Handler) {
	route.Route("/cart", func(route chi.Router) {
		route.Post("/add", handler.Add)
		route.Get("/get", handler.List)
		route.Get("/get/{id}", handler.GetByID)
		route.Delete("/delete", handler.DeleteAll)
		route.Delete("/delete/{id}", handler.Delete)
	})
}
