package rest

import "net/http"

// Routes is implemented by the handler set registered on the mux.
type Routes interface {
	CreateOrder(w http.ResponseWriter, r *http.Request)
	ListOrders(w http.ResponseWriter, r *http.Request)
}

// NewMux registers the order routes and the health endpoint.
func NewMux(h Routes, health http.HandlerFunc) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/orders", h.CreateOrder)
	mux.HandleFunc("GET /api/orders", h.ListOrders)
	mux.HandleFunc("GET /healthz", health)
	return mux
}
