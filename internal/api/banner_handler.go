package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/BenjaminLindeen/RoomHub/internal/typewriter"
)

// Banner animation bounds. The delay is clamped so a client cannot request
// a stream that spins the server.
const (
	defaultBannerDelay = 150 * time.Millisecond
	minBannerDelay     = 30 * time.Millisecond
	maxBannerDelay     = time.Second
)

// DefaultBannerPhrases are the phrases cycled on the start page.
var DefaultBannerPhrases = []string{
	"Welcome to RoomHub",
	"Share chores, not arguments",
	"One calendar for the whole house",
	"Plan the week together",
}

// BannerHandler streams typewriter animation frames for the start page as
// server-sent events.
type BannerHandler struct {
	phrases []string
}

// NewBannerHandler creates a BannerHandler cycling the given phrases, or
// DefaultBannerPhrases when none are given.
func NewBannerHandler(phrases []string) *BannerHandler {
	if len(phrases) == 0 {
		phrases = DefaultBannerPhrases
	}
	return &BannerHandler{phrases: phrases}
}

// Stream handles GET /start/banner. Each animation frame is sent as one SSE
// data event; the stream runs until the client disconnects. An optional
// delay query parameter sets the per-character delay in milliseconds.
func (h *BannerHandler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	delay := defaultBannerDelay
	if raw := r.URL.Query().Get("delay"); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "delay must be an integer millisecond count", http.StatusBadRequest)
			return
		}
		delay = time.Duration(ms) * time.Millisecond
		if delay < minBannerDelay {
			delay = minBannerDelay
		}
		if delay > maxBannerDelay {
			delay = maxBannerDelay
		}
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	display := typewriter.DisplayFunc(func(text string) {
		fmt.Fprintf(w, "data: %s\n\n", text)
		flusher.Flush()
	})

	animator, err := typewriter.New(h.phrases, delay, display)
	if err != nil {
		slog.Error("failed to build banner animator", "error", err)
		http.Error(w, "banner unavailable", http.StatusInternalServerError)
		return
	}

	if err := animator.Run(r.Context()); err != nil && !errors.Is(err, context.Canceled) {
		slog.Debug("banner stream ended", "error", err)
	}
}
