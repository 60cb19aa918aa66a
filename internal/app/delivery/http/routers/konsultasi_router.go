package routers

import (
	"pandacare-gateway/internal/app/delivery/http/middlewares"
	"pandacare-gateway/internal/app/models"
	"pandacare-gateway/internal/app/services/konsultasi"
	"pandacare-gateway/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachKonsultasiRoutes(r chi.Router, m *middlewares.Middlewares, controller *konsultasi.KonsultasiController) {
	guard := m.Protect(constvars.ServiceKonsultasi)
	pacilianGuard := m.Protect(constvars.ServiceKonsultasi, models.RolePacilian)

	r.Route("/consultations", func(r chi.Router) {
		r.With(guard).Get("/", controller.List)
		r.With(pacilianGuard).Post("/", controller.Book)
		r.With(guard).Patch("/{consultationID}/reschedule", controller.Reschedule)
		r.With(guard).Delete("/{consultationID}", controller.Cancel)
	})

	// publishing availability is a caregiver-only operation
	r.Route("/schedules", func(r chi.Router) {
		r.Use(m.Protect(constvars.ServiceKonsultasi, models.RoleCaregiver))
		r.Post("/", controller.PublishSchedule)
	})
}
