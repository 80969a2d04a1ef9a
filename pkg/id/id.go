package id

import (
	"context"
	"crypto/md5"
	"io"

	"github.com/gofrs/uuid"
)

type traceKey struct{}

// GenTraceID new normal traceID
func GenTraceID() string {
	return uuid.Must(uuid.NewV4()).String()
}

// TraceIDFrom new traceID from text
func TraceIDFrom(text string) string {
	h := md5.New()
	io.WriteString(h, text)
	sum := h.Sum(nil)
	sum[6] = (sum[6] & 0x0f) | 0x30
	sum[8] = (sum[8] & 0x3f) | 0x80
	return uuid.FromBytesOrNil(sum).String()
}

// WithTraceID attach a trace id to ctx, texts that are not uuids are hashed into one
func WithTraceID(ctx context.Context, traceID string) context.Context {
	if _, err := uuid.FromString(traceID); err != nil {
		traceID = TraceIDFrom(traceID)
	}

	return context.WithValue(ctx, traceKey{}, traceID)
}

// TraceIDFromContext trace id of ctx, empty when missing
func TraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(traceKey{}).(string)
	return traceID
}
