package rest

import (
	"net/http"

	"fraxlend/handler/render"
	"fraxlend/handler/views"
)

func pairHandler(pair Pair) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, views.PairView(pair.Params(), pair.State()))
	}
}

func constantsHandler(pair Pair) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, pair.GetConstants())
	}
}
