package handler

import (
	"net/http"

	"fraxlend/core"
	"fraxlend/handler/hc"
	"fraxlend/handler/rest"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pair the read side of a pair
type Pair interface {
	rest.Pair
	Sequence() uint64
}

// Server server
type Server struct {
	pair    Pair
	events  core.EventStore
	version string
}

// New new server function
func New(pair Pair, events core.EventStore, version string) Server {
	return Server{
		pair:    pair,
		events:  events,
		version: version,
	}
}

// HandleRestAPI handle restful apis
func (s Server) HandleRestAPI() http.Handler {
	return rest.Handle(s.pair, s.events)
}

// Handler root handler with health check, metrics & the rest api
func (s Server) Handler() http.Handler {
	mux := chi.NewMux()
	mux.Use(middleware.Recoverer)
	mux.Use(middleware.StripSlashes)

	mux.Mount("/hc", hc.Handle(s.version, s.pair.Sequence))
	mux.Mount("/metrics", promhttp.Handler())
	mux.Mount("/api", s.HandleRestAPI())
	return mux
}
