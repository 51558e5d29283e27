package handlers

import (
	"net/http"
	"sync"
	"time"

	"top-sales-tracker/internal/middleware"
	"top-sales-tracker/internal/services"
	"top-sales-tracker/internal/view"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const streamWriteTimeout = 10 * time.Second

// StreamHandler pushes the page of a session to websocket viewers on every state change
type StreamHandler struct {
	registry *services.SessionRegistry
	upgrader websocket.Upgrader
}

func NewStreamHandler(registry *services.SessionRegistry, checkOrigin func(r *http.Request) bool) *StreamHandler {
	if checkOrigin == nil {
		checkOrigin = func(r *http.Request) bool { return true }
	}
	return &StreamHandler{
		registry: registry,
		upgrader: websocket.Upgrader{CheckOrigin: checkOrigin},
	}
}

// Stream godoc
// @Summary Stream session state
// @Description Websocket. Sends the current page and then every newer page as JSON.
// @Tags sessions
// @Param id path string true "Session ID"
// @Success 101
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id}/stream [get]
func (h *StreamHandler) Stream(c *gin.Context) {
	id, controller, ok := lookupSession(c, h.registry)
	if !ok {
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already replied to the client
		middleware.LogWithCorrelationID(c.Request.Context()).Warn("Websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	log := middleware.LogWithCorrelationID(c.Request.Context()).With(zap.String("session_id", id.String()))
	log.Debug("Stream opened")

	// Only the newest pending snapshot is kept; a slow viewer skips intermediate states.
	var (
		mu      sync.Mutex
		pending *services.Snapshot
	)
	wake := make(chan struct{}, 1)
	push := func(snapshot services.Snapshot) {
		mu.Lock()
		if pending == nil || snapshot.Version > pending.Version {
			pending = &snapshot
		}
		mu.Unlock()
		select {
		case wake <- struct{}{}:
		default:
		}
	}
	unsubscribe := controller.Subscribe(push)
	defer unsubscribe()
	push(controller.Snapshot())

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	var lastVersion uint64
	sent := false
	for {
		select {
		case <-closed:
			log.Debug("Stream closed by viewer")
			return
		case <-wake:
			mu.Lock()
			next := pending
			pending = nil
			mu.Unlock()
			if next == nil {
				continue
			}
			snapshot := *next
			if sent && snapshot.Version <= lastVersion {
				continue
			}
			_ = conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
			if err := conn.WriteJSON(view.Build(snapshot)); err != nil {
				log.Debug("Stream write failed", zap.Error(err))
				return
			}
			lastVersion = snapshot.Version
			sent = true
		}
	}
}
