package rest

import (
	"errors"
	"net/http"

	"fraxlend/core"
	"fraxlend/handler/render"

	"github.com/go-chi/chi"
)

// Pair the read side of a pair
type Pair interface {
	Params() core.PairParams
	State() *core.PairState
	GetConstants() core.Constants
}

// Handle handle rest api request
func Handle(pair Pair, events core.EventStore) http.Handler {
	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, errors.New("not found"))
	})

	router.Get("/pair", pairHandler(pair))
	router.Get("/constants", constantsHandler(pair))
	router.Get("/positions/{address}", positionHandler(pair))
	router.Get("/convert/{vault}", convertHandler(pair))
	router.Get("/events", eventsHandler(pair, events))

	return router
}
