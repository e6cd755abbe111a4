package ws

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"lodge/infras/otel"
	"lodge/infras/ws"
	"lodge/shared/constant"
	"lodge/transport/http/response"
)

type Handler struct {
	hub  ws.Hub
	otel otel.Otel
}

func New(hub ws.Hub, otel otel.Otel) Handler {
	return Handler{
		hub:  hub,
		otel: otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/ws", handler.Attach)
}

// Attach upgrades the request to a websocket notification channel.
// @Summary Open the notification channel
// @Description Upgrade to a websocket connection that receives new_notification events.
// @Tags Notification
// @Success 101 "Switching Protocols"
// @Failure 400 {object} response.Error
// @Router /v1/ws [get]
func (handler *Handler) Attach(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelWsScopeName, constant.OtelWsScopeName+".Attach")
	defer scope.End()

	if err := handler.hub.Attach(w, r); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to attach websocket client")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Websocket client attached")
}
