package rest

import (
	"fmt"
	"net/http"

	"fraxlend/handler/render"
	"fraxlend/handler/views"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi"
)

func positionHandler(pair Pair) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		address := chi.URLParam(r, "address")
		if !common.IsHexAddress(address) {
			render.BadRequest(w, fmt.Errorf("invalid address %q", address))
			return
		}

		render.JSON(w, views.PositionView(pair.Params(), pair.State(), common.HexToAddress(address)))
	}
}
