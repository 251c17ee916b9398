package http

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"time"
)

type requestIDKey struct{}

// newRequestID returns a short random hex ID used to correlate one request's
// log lines. If the random source fails, a nanosecond timestamp is unique
// enough for correlation.
func newRequestID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return strconv.FormatInt(time.Now().UnixNano(), 16)
	}
	return hex.EncodeToString(buf)
}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
