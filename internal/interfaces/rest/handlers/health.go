package handlers

import (
	"context"
	"net/http"

	"github.com/kristjanluik/ordertrack/internal/interfaces/rest"
)

// Pinger reports store reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthResponse struct {
	Status string `json:"status"`
}

// Health returns a handler for GET /healthz backed by a store ping.
func Health(pinger Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := pinger.Ping(r.Context()); err != nil {
			rest.WriteJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
			return
		}
		rest.WriteJSON(w, http.StatusOK, healthResponse{Status: "ok"})
	}
}
