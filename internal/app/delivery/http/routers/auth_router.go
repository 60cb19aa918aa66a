package routers

import (
	"pandacare-gateway/internal/app/config"
	"pandacare-gateway/internal/app/delivery/http/middlewares"
	"pandacare-gateway/internal/app/services/auth"
	"pandacare-gateway/internal/pkg/constvars"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

func attachAuthRoutes(r chi.Router, m *middlewares.Middlewares, internalConfig *config.InternalConfig, controller *auth.AuthController) {
	r.Route("/auth", func(r chi.Router) {
		// brute-force protection on the credentials endpoint only
		r.With(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Minute)).
			Post("/login", controller.Login)
		r.Post("/logout", controller.Logout)
		r.With(m.Protect(constvars.ServiceAuth)).Get("/me", controller.Profile)
	})
}
