package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"lodge/config"
)

// Hub fans events out to every connected client. Delivery is best-effort: a
// slow or dead client is dropped, never retried.
type Hub interface {
	Attach(writer http.ResponseWriter, request *http.Request) error
	Broadcast(ctx context.Context, payload any)
	Close()
}

type hubImpl struct {
	upgrader websocket.Upgrader
	clients  map[*websocket.Conn]struct{}
	mu       sync.Mutex
}

func New(cfg *config.Config) Hub {
	allowedOrigins := cfg.App.CORS.AllowedOrigins

	return &hubImpl{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if !cfg.App.CORS.Enable {
					return true
				}

				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}

				for _, allowed := range allowedOrigins {
					if allowed == "*" || allowed == origin {
						return true
					}
				}

				return false
			},
		},
		clients: map[*websocket.Conn]struct{}{},
	}
}

// Attach upgrades the request and keeps the connection registered until the
// peer closes it. Inbound frames are read and discarded, the channel is
// push-only.
func (h *hubImpl) Attach(writer http.ResponseWriter, request *http.Request) error {
	conn, err := h.upgrader.Upgrade(writer, request, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to upgrade websocket connection")

		return err
	}

	h.register(conn)

	go func() {
		defer h.unregister(conn)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	return nil
}

func (h *hubImpl) Broadcast(_ context.Context, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal broadcast payload")

		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Warn().Err(err).Msg("dropping unresponsive websocket client")

			_ = conn.Close()
			delete(h.clients, conn)
		}
	}
}

func (h *hubImpl) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		_ = conn.Close()
		delete(h.clients, conn)
	}
}

func (h *hubImpl) register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[conn] = struct{}{}

	log.Info().Int("clients", len(h.clients)).Msg("websocket client connected")
}

func (h *hubImpl) unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	_ = conn.Close()
	delete(h.clients, conn)

	log.Info().Int("clients", len(h.clients)).Msg("websocket client disconnected")
}
