package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-crypt-keeper/internal/utils"
)

const (
	traceIDHeader = "X-Trace-ID"
	// maxTraceIDLength bounds caller supplied ids before they reach the logs.
	maxTraceIDLength = 128
)

// withTraceID puts a logger tagged with trace_id into the request context
// and echoes the id back. A missing or oversized X-Trace-ID is replaced by
// a new uuid.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" || len(traceID) > maxTraceIDLength {
			traceID = uuid.NewString()
		}

		reqLogger := h.logger.GetChildLogger()
		reqLogger.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		ctx := context.WithValue(r.Context(), utils.TraceIDCtxKey, traceID)
		w.Header().Set(traceIDHeader, traceID)

		next.ServeHTTP(w, r.WithContext(reqLogger.WithContext(ctx)))
	})
}
