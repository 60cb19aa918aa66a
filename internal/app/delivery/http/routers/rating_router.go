package routers

import (
	"pandacare-gateway/internal/app/delivery/http/middlewares"
	"pandacare-gateway/internal/app/models"
	"pandacare-gateway/internal/app/services/ratings"
	"pandacare-gateway/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachRatingRoutes(r chi.Router, m *middlewares.Middlewares, controller *ratings.RatingController) {
	guard := m.Protect(constvars.ServiceRating)
	pacilianGuard := m.Protect(constvars.ServiceRating, models.RolePacilian)

	r.Route("/ratings", func(r chi.Router) {
		r.With(guard).Get("/doctor/{doctorID}", controller.ListByDoctor)
		r.With(pacilianGuard).Post("/", controller.Submit)
		r.With(pacilianGuard).Delete("/{ratingID}", controller.Delete)
	})
}
