package param

import (
	"net/http"
	"reflect"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/schema"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	d.SetAliasTag("json")

	d.RegisterConverter(decimal.Decimal{}, func(s string) reflect.Value {
		v, err := decimal.NewFromString(s)
		if err != nil {
			return reflect.Value{}
		}
		return reflect.ValueOf(v)
	})

	d.RegisterConverter(common.Address{}, func(s string) reflect.Value {
		if !common.IsHexAddress(s) {
			return reflect.Value{}
		}
		return reflect.ValueOf(common.HexToAddress(s))
	})

	d.RegisterConverter(false, func(s string) reflect.Value {
		v, err := cast.ToBoolE(s)
		if err != nil {
			return reflect.Value{}
		}
		return reflect.ValueOf(v)
	})

	return d
}

// Binding decode the query of r into v by json tags
func Binding(r *http.Request, v interface{}) error {
	return decoder.Decode(v, r.URL.Query())
}

// Uint64 parse a path or query value, zero when malformed
func Uint64(s string) uint64 {
	return cast.ToUint64(s)
}
