package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestMiddleware_RecordsSpanAndTraceHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	metrics, err := NewHTTPMetrics()
	require.NoError(t, err)

	engine := gin.New()
	engine.Use(otelginWith(tp), metrics.handler())
	engine.GET("/api/v1/quotes/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/quotes/7", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(HeaderTraceID))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Contains(t, spans[0].Name(), "/api/v1/quotes/:id")
}

func TestMiddleware_ReturnsTracingThenMetrics(t *testing.T) {
	assert.Len(t, Middleware("quote-vote-service"), 2)
}

func otelginWith(tp *sdktrace.TracerProvider) gin.HandlerFunc {
	return otelgin.Middleware("test", otelgin.WithTracerProvider(tp))
}
