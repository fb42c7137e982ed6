package contextkeys

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextKey_String(t *testing.T) {
	key := contextKey("testKey")
	assert.Equal(t, "coursework-export context key testKey", key.String())
}

func TestContextKeys_Usage(t *testing.T) {
	ctx := context.Background()
	ctx = context.WithValue(ctx, RunIDKey, "run-123")
	ctx = context.WithValue(ctx, RunTimestampKey, "20240101-120000")
	ctx = context.WithValue(ctx, ModeKey, "live")
	ctx = context.WithValue(ctx, ComponentKey, "exporter")
	ctx = context.WithValue(ctx, CollectionKey, "lessons")

	assert.Equal(t, "run-123", ctx.Value(RunIDKey))
	assert.Equal(t, "20240101-120000", ctx.Value(RunTimestampKey))
	assert.Equal(t, "live", ctx.Value(ModeKey))
	assert.Equal(t, "exporter", ctx.Value(ComponentKey))
	assert.Equal(t, "lessons", ctx.Value(CollectionKey))
	assert.Nil(t, ctx.Value(contextKey("runID-other")))
}
