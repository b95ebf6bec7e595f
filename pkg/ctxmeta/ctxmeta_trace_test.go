package ctxmeta_test

import (
	"context"
	"testing"

	"github.com/nordtex/aspect4-orders/pkg/ctxmeta"
	"go.opentelemetry.io/otel/trace"
)

func TestTraceIDFromContext_NoSpan(t *testing.T) {
	id, ok := ctxmeta.TraceIDFromContext(context.Background())
	if ok || id != "" {
		t.Fatalf("без спана ожидаем пусто/false, got id=%q ok=%v", id, ok)
	}
}

func TestTraceAndSpanID_FromValidSpanContext(t *testing.T) {
	traceID := trace.TraceID{0x01}
	spanID := trace.SpanID{0x02}
	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	gotTrace, ok := ctxmeta.TraceIDFromContext(ctx)
	if !ok || gotTrace != traceID.String() {
		t.Fatalf("trace id: got %q ok=%v, want %q", gotTrace, ok, traceID.String())
	}
	gotSpan, ok := ctxmeta.SpanIDFromContext(ctx)
	if !ok || gotSpan != spanID.String() {
		t.Fatalf("span id: got %q ok=%v, want %q", gotSpan, ok, spanID.String())
	}
}
