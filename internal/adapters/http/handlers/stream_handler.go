package handlers

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"coopeasy/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// StreamHandler handles the SSE event stream
type StreamHandler struct {
	streamService *services.StreamService
}

// NewStreamHandler creates a new stream handler
func NewStreamHandler(streamService *services.StreamService) *StreamHandler {
	return &StreamHandler{streamService: streamService}
}

// Events streams workflow notifications to the authenticated caller
// @Summary Subscribe to event stream
// @Description Server-sent events: workflow notifications targeted at the caller's user ID and role
// @Tags Events
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200 {string} string "event stream"
// @Router /events/stream [get]
func (h *StreamHandler) Events(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(string)

	clientID := uuid.New().String()

	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		client := &services.StreamClient{
			ID:      clientID,
			UserID:  userID,
			Role:    role,
			Channel: make(chan services.Event, 50),
		}

		h.streamService.Register(client)
		defer h.streamService.Unregister(clientID)

		fmt.Fprintf(w, "event: connected\ndata: {\"client_id\":\"%s\"}\n\n", clientID)
		if err := w.Flush(); err != nil {
			return
		}

		heartbeat := time.NewTicker(30 * time.Second)
		defer heartbeat.Stop()

		for {
			select {
			case event, ok := <-client.Channel:
				if !ok {
					return
				}
				writeStreamEvent(w, event)
				if err := w.Flush(); err != nil {
					log.Printf("📡 SSE client disconnected: %s", clientID)
					return
				}

			case <-heartbeat.C:
				fmt.Fprintf(w, ": heartbeat\n\n")
				if err := w.Flush(); err != nil {
					log.Printf("📡 SSE client disconnected: %s", clientID)
					return
				}
			}
		}
	})

	return nil
}

// writeStreamEvent serializes one event in SSE wire format.
func writeStreamEvent(w *bufio.Writer, event services.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("⚠️ Failed to marshal SSE event %s: %v", event.Type, err)
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, data)
}
