package resthttp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"fraxlend/pkg/id"

	"github.com/go-resty/resty/v2"
)

const headerKeyRequestID = "X-Request-Id"

// ErrStatus non 2xx response
var ErrStatus = errors.New("unexpected http status")

var (
	clientOnce  sync.Once
	restyClient *resty.Client
)

// Client shared resty client with retries on transport errors
func Client() *resty.Client {
	clientOnce.Do(func() {
		restyClient = resty.New().
			SetHeader("Content-Type", "application/json").
			SetHeader("Charset", "utf-8").
			SetTimeout(10 * time.Second).
			SetRetryCount(2).
			SetRetryWaitTime(200 * time.Millisecond)
	})

	return restyClient
}

// Request new request carrying the trace id of ctx as request id
func Request(ctx context.Context) *resty.Request {
	r := Client().R().SetContext(ctx)
	if traceID := id.TraceIDFromContext(ctx); traceID != "" {
		r.SetHeader(headerKeyRequestID, traceID)
	}

	return r
}

// ParseResponse decode a 2xx json body into obj
func ParseResponse(r *resty.Response, obj interface{}) error {
	if !r.IsSuccess() {
		return fmt.Errorf("%w %s: %s", ErrStatus, r.Status(), strings.TrimSpace(string(r.Body())))
	}

	if obj != nil {
		return json.Unmarshal(r.Body(), obj)
	}

	return nil
}
