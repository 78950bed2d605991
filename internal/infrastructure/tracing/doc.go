/*
Package tracing provides lightweight request tracing.

# Overview

Each HTTP request gets a span whose trace and span IDs are ULIDs. Incoming
X-Trace-ID and X-Span-ID headers continue an existing trace; the IDs of the
new span are echoed back in the response headers. Completed spans are logged
through zap by a background collector.

# Usage

	tracer := tracing.New("hypercomplex", logger)
	defer tracer.Close()

	router.Use(tracing.HTTPMiddleware(tracer))

	// Manual span creation
	span, ctx := tracer.StartSpan(ctx, "hypercomplex.multiply")
	defer func() {
		span.Finish()
		tracer.Submit(span)
	}()

# Performance

Spans are buffered (1000) and dropped with a warning when the collector falls
behind.
*/
package tracing
