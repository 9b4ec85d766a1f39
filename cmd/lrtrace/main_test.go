package main

import (
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/stretchr/testify/assert"
)

func TestTraceLevels(t *testing.T) {
	initTracing()
	setTraceLevel("Debug")
	for _, key := range traceKeys {
		assert.Equal(t, tracing.LevelDebug, tracing.Select(key).GetTraceLevel(), "key %s", key)
	}
	setTraceLevel("Error")
	for _, key := range traceKeys {
		assert.Equal(t, tracing.LevelError, tracing.Select(key).GetTraceLevel(), "key %s", key)
	}
}
