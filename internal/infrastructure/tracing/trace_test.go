package tracing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/GriffinCanCode/hypercomplex/internal/shared/id"
)

func newObservedTracer(t *testing.T) (*Tracer, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return New("hypercomplex", zap.New(core)), logs
}

func TestStartSpan(t *testing.T) {
	tracer, _ := newObservedTracer(t)
	defer tracer.Close()

	t.Run("new trace", func(t *testing.T) {
		span, ctx := tracer.StartSpan(context.Background(), "root")

		assert.True(t, id.IsValid(string(span.TraceID)))
		assert.True(t, id.IsValid(string(span.SpanID)))
		assert.Empty(t, span.ParentID)
		assert.Equal(t, span.TraceID, GetTraceID(ctx))
		assert.Equal(t, span.SpanID, GetSpanID(ctx))
	})

	t.Run("child span", func(t *testing.T) {
		parent, ctx := tracer.StartSpan(context.Background(), "parent")
		child, _ := tracer.StartSpan(ctx, "child")

		assert.Equal(t, parent.TraceID, child.TraceID)
		assert.Equal(t, parent.SpanID, child.ParentID)
		assert.NotEqual(t, parent.SpanID, child.SpanID)
	})

	t.Run("continued trace", func(t *testing.T) {
		ctx := WithTrace(context.Background(), "trc_incoming", "spn_caller")
		span, _ := tracer.StartSpan(ctx, "continued")

		assert.Equal(t, TraceID("trc_incoming"), span.TraceID)
		assert.Equal(t, SpanID("spn_caller"), span.ParentID)
	})
}

func TestSpanError(t *testing.T) {
	span := &Span{Tags: map[string]string{}}
	span.SetStatus(http.StatusBadRequest)
	span.SetError(errors.New("bad operand"))
	assert.Equal(t, http.StatusBadRequest, span.StatusCode)

	span = &Span{Tags: map[string]string{}}
	span.SetError(errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, span.StatusCode)
}

func TestTracerLogsSpans(t *testing.T) {
	tracer, logs := newObservedTracer(t)

	span, _ := tracer.StartSpan(context.Background(), "ok")
	span.Finish()
	tracer.Submit(span)

	failed, _ := tracer.StartSpan(context.Background(), "failed")
	failed.SetError(errors.New("division failed"))
	failed.Finish()
	tracer.Submit(failed)

	tracer.Close()

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "span completed", logs.All()[0].Message)
	assert.Equal(t, "span completed with error", logs.All()[1].Message)
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[1].Level)
}

func TestSubmitAfterClose(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tracer, logs := newObservedTracer(t)
	tracer.Close()

	span, _ := tracer.StartSpan(context.Background(), "late")
	span.Finish()
	assert.NotPanics(t, func() { tracer.Submit(span) })
	assert.NotPanics(t, tracer.Close)

	router := gin.New()
	router.Use(HTTPMiddleware(tracer))
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, logs.Len())
}

func TestHTTPMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tracer, logs := newObservedTracer(t)

	router := gin.New()
	router.Use(HTTPMiddleware(tracer))
	router.GET("/health", func(c *gin.Context) {
		assert.NotEmpty(t, GetTraceID(c.Request.Context()))
		c.Status(http.StatusOK)
	})

	t.Run("generates ids", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, id.IsValid(w.Header().Get(TraceHeader)))
		assert.True(t, id.IsValid(w.Header().Get(SpanHeader)))
	})

	t.Run("propagates incoming trace", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(TraceHeader, "trc_upstream")
		req.Header.Set(SpanHeader, "spn_upstream")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "trc_upstream", w.Header().Get(TraceHeader))
		assert.NotEqual(t, "spn_upstream", w.Header().Get(SpanHeader))
	})

	tracer.Close()

	entries := logs.FilterField(zap.String("operation", "GET /health")).All()
	assert.Len(t, entries, 2)
}
