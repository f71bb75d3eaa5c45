package stream_events

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	eventName        = "change"
	watchBuffer      = 16
	defaultHeartbeat = 25 * time.Second
)

type Handler struct {
	feed      ChangeFeed
	heartbeat time.Duration
	logger    Logger
}

func NewHandler(feed ChangeFeed, heartbeat time.Duration, logger Logger) *Handler {
	if heartbeat <= 0 {
		heartbeat = defaultHeartbeat
	}
	return &Handler{
		feed:      feed,
		heartbeat: heartbeat,
		logger:    logger,
	}
}

// Handle GET /api/v1/admin/events
// Server-Sent Events: одно событие на каждый новый снапшот коллекции
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rc := http.NewResponseController(w)

	// Соединение живёт дольше WriteTimeout сервера
	_ = rc.SetWriteDeadline(time.Time{})

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	if err := rc.Flush(); err != nil {
		h.logger.Warn("GET /admin/events - Streaming not supported: %v", err)
		return
	}

	changes, cancel := h.feed.Watch(watchBuffer)
	defer cancel()

	h.logger.Info("GET /admin/events - Client subscribed: remote=%s", r.RemoteAddr)

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			h.logger.Info("GET /admin/events - Client disconnected: remote=%s", r.RemoteAddr)
			return

		case change, ok := <-changes:
			if !ok {
				h.logger.Info("GET /admin/events - Change feed closed")
				return
			}
			payload, err := json.Marshal(ChangeEvent{Collection: change.Collection, At: change.At})
			if err != nil {
				h.logger.Error("GET /admin/events - Failed to encode event: %v", err)
				continue
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", eventName, payload); err != nil {
				return
			}
			if err := rc.Flush(); err != nil {
				return
			}

		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			if err := rc.Flush(); err != nil {
				return
			}
		}
	}
}
