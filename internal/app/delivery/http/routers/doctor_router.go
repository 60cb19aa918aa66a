package routers

import (
	"pandacare-gateway/internal/app/delivery/http/middlewares"
	"pandacare-gateway/internal/app/services/doctors"
	"pandacare-gateway/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(r chi.Router, m *middlewares.Middlewares, controller *doctors.DoctorController) {
	r.Route("/doctors", func(r chi.Router) {
		r.Use(m.Protect(constvars.ServiceDoctorList))
		r.Get("/", controller.Search)
		r.Get("/{doctorID}", controller.Detail)
	})
}
