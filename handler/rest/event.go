package rest

import (
	"net/http"

	"fraxlend/core"
	"fraxlend/handler/param"
	"fraxlend/handler/render"
	"fraxlend/handler/views"
)

const (
	defaultEventLimit = 100
	maxEventLimit     = 500
)

func eventsHandler(pair Pair, events core.EventStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			From  uint64 `json:"from"`
			Limit int    `json:"limit"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		if params.Limit <= 0 {
			params.Limit = defaultEventLimit
		} else if params.Limit > maxEventLimit {
			params.Limit = maxEventLimit
		}

		list, err := events.List(r.Context(), pair.Params().Address.Hex(), params.From, params.Limit)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, views.EventViews(list))
	}
}
