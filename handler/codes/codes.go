package codes

import (
	"errors"
	"net/http"

	"fraxlend/core"
)

const (
	// InvalidArguments malformed request parameters
	InvalidArguments = 100001
	// NotFound unknown resource
	NotFound = 100404
	// Internal unexpected failure
	Internal = 100500
)

// Get http status & business code of err
func Get(err error) (int, int) {
	var code core.ErrorCode
	if !errors.As(err, &code) {
		return http.StatusInternalServerError, Internal
	}

	switch code.Class() {
	case core.ErrorClassInput:
		return http.StatusBadRequest, int(code)
	case core.ErrorClassAuthorization:
		return http.StatusForbidden, int(code)
	case core.ErrorClassSolvency, core.ErrorClassLiquidity, core.ErrorClassTemporal:
		return http.StatusUnprocessableEntity, int(code)
	case core.ErrorClassOracle:
		return http.StatusServiceUnavailable, int(code)
	case core.ErrorClassReentrancy:
		return http.StatusConflict, int(code)
	default:
		return http.StatusInternalServerError, int(code)
	}
}
