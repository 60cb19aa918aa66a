package routers

import (
	"pandacare-gateway/internal/app/config"
	"pandacare-gateway/internal/app/delivery/http/middlewares"
	"pandacare-gateway/internal/app/services/auth"
	"pandacare-gateway/internal/app/services/chat"
	"pandacare-gateway/internal/app/services/doctors"
	"pandacare-gateway/internal/app/services/konsultasi"
	"pandacare-gateway/internal/app/services/ratings"
	"pandacare-gateway/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type Controllers struct {
	Auth       *auth.AuthController
	Konsultasi *konsultasi.KonsultasiController
	Doctor     *doctors.DoctorController
	Rating     *ratings.RatingController
	Chat       *chat.ChatController
}

func SetupRoutes(router *chi.Mux, m *middlewares.Middlewares, internalConfig *config.InternalConfig, controllers *Controllers) {
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodPut, constvars.MethodPatch, constvars.MethodDelete, constvars.MethodOptions},
		AllowedHeaders:   []string{constvars.HeaderContentType, constvars.HeaderAuthorization, constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Use(m.RequestIDMiddleware)
	router.Use(m.LoggingMiddleware)
	router.Use(m.RecoverMiddleware)
	router.Use(m.SessionContext)

	router.Route("/"+internalConfig.App.EndpointPrefix, func(r chi.Router) {
		attachAuthRoutes(r, m, internalConfig, controllers.Auth)
		attachKonsultasiRoutes(r, m, controllers.Konsultasi)
		attachDoctorRoutes(r, m, controllers.Doctor)
		attachRatingRoutes(r, m, controllers.Rating)
		attachChatRoutes(r, m, controllers.Chat)
	})
}
