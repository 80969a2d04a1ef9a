package rest

import (
	"errors"
	"fmt"
	"net/http"

	"fraxlend/core"
	"fraxlend/handler/param"
	"fraxlend/handler/render"
	"fraxlend/pkg/fraxlend"

	"github.com/go-chi/chi"
	"github.com/shopspring/decimal"
)

func convertHandler(pair Pair) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Amount  decimal.Decimal `json:"amount"`
			Shares  decimal.Decimal `json:"shares"`
			RoundUp bool            `json:"round_up"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		if params.Amount.IsNegative() || params.Shares.IsNegative() {
			render.BadRequest(w, errors.New("negative value"))
			return
		}

		state := pair.State()

		var total core.VaultAccount
		switch vault := chi.URLParam(r, "vault"); vault {
		case "asset":
			total = state.TotalAsset
		case "borrow":
			total = state.TotalBorrow
		default:
			render.NotFoundRequest(w, fmt.Errorf("unknown vault %q", vault))
			return
		}

		render.JSON(w, render.H{
			"shares": fraxlend.ToShares(total, params.Amount, params.RoundUp),
			"amount": fraxlend.ToAmount(total, params.Shares, params.RoundUp),
		})
	}
}
