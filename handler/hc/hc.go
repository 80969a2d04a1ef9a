package hc

import (
	"net/http"
	"time"

	"fraxlend/handler/render"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
)

// Handle handle hc request
func Handle(ver string, sequence func() uint64) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.NoCache)
	r.Handle("/", handle(ver, sequence))
	return r
}

func handle(version string, sequence func() uint64) http.HandlerFunc {
	b := time.Now()
	return func(w http.ResponseWriter, r *http.Request) {
		uptime := time.Since(b).Truncate(time.Millisecond)
		render.JSON(w, render.H{
			"uptime":   uptime.String(),
			"version":  version,
			"sequence": sequence(),
		})
	}
}
