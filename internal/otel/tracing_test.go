package otel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSampler(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want string
	}{
		{name: "always_on", want: "AlwaysOnSampler"},
		{name: "always_off", want: "AlwaysOffSampler"},
		{name: "traceidratio", arg: "0.5", want: "TraceIDRatioBased{0.5}"},
		{name: "traceidratio", arg: "junk", want: "TraceIDRatioBased{1}"},
		{name: "parentbased_always_off", want: "ParentBased{root:AlwaysOffSampler"},
		{name: "", want: "ParentBased{root:AlwaysOnSampler"},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.arg, func(t *testing.T) {
			assert.Contains(t, sampler(tt.name, tt.arg).Description(), tt.want)
		})
	}
}

func TestInitDisabled(t *testing.T) {
	t.Setenv("OTEL_SDK_DISABLED", "true")
	core, logs := observer.New(zap.InfoLevel)

	shutdown, err := Init(context.Background(), zap.New(core))

	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
	entries := logs.FilterMessage("tracing_configured").All()
	require.Len(t, entries, 1)
	assert.Equal(t, false, entries[0].ContextMap()["tracing_enabled"])
}

func TestInitUnsupportedProtocol(t *testing.T) {
	t.Setenv("OTEL_SDK_DISABLED", "false")
	t.Setenv("OTEL_EXPORTER_OTLP_PROTOCOL", "carrier-pigeon")
	core, logs := observer.New(zap.InfoLevel)

	shutdown, err := Init(context.Background(), zap.New(core))

	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
	assert.Equal(t, 1, logs.FilterMessage("tracing_init_failed").Len())
}
