package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoopTracer(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "test")
	defer span.End()

	assert.False(t, span.IsRecording())
	assert.False(t, span.SpanContext().IsValid())
}

func TestTracerWithoutSetup(t *testing.T) {
	_, span := Tracer("combat").Start(context.Background(), "combat.event")
	defer span.End()

	assert.False(t, span.SpanContext().IsValid(), "global provider is a no-op until Setup")
}
