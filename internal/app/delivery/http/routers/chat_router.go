package routers

import (
	"pandacare-gateway/internal/app/delivery/http/middlewares"
	"pandacare-gateway/internal/app/services/chat"
	"pandacare-gateway/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachChatRoutes(r chi.Router, m *middlewares.Middlewares, controller *chat.ChatController) {
	r.Route("/chat", func(r chi.Router) {
		r.Use(m.Protect(constvars.ServiceChat))
		r.Get("/rooms", controller.Rooms)
		r.Get("/rooms/{roomID}/messages", controller.Messages)
		r.Get("/rooms/{roomID}/poll", controller.Poll)
		r.Post("/rooms/{roomID}/messages", controller.Send)
	})
}
