package logctx

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestFromContext_NilContext(t *testing.T) {
	// FromContext(nil) should return the default logger, not panic
	logger := FromContext(nil)

	var buf bytes.Buffer
	testLogger := logger.Output(&buf)
	testLogger.Info().Msg("test")

	if buf.Len() == 0 {
		t.Error("expected logger to produce output")
	}
}

func TestFromContext_ContextWithoutLogger(t *testing.T) {
	ctx := context.Background()
	logger := FromContext(ctx)

	var buf bytes.Buffer
	testLogger := logger.Output(&buf)
	testLogger.Info().Msg("test")

	if buf.Len() == 0 {
		t.Error("expected logger to produce output")
	}
}

func TestWithLogger_AndFromContext(t *testing.T) {
	var buf bytes.Buffer
	customLogger := zerolog.New(&buf).With().Str("custom", "field").Logger()

	ctx := WithLogger(context.Background(), customLogger)
	logger := FromContext(ctx)

	logger.Info().Msg("test")

	output := buf.String()
	if !strings.Contains(output, `"custom":"field"`) {
		t.Errorf("expected custom field in output, got: %s", output)
	}
}

func TestWithLogger_NilContext(t *testing.T) {
	var buf bytes.Buffer
	customLogger := zerolog.New(&buf)

	ctx := WithLogger(nil, customLogger)
	if ctx == nil {
		t.Error("expected non-nil context")
	}

	logger := FromContext(ctx)
	logger.Info().Msg("test")

	if buf.Len() == 0 {
		t.Error("expected logger to produce output")
	}
}

func TestWithStr(t *testing.T) {
	var buf bytes.Buffer
	baseLogger := zerolog.New(&buf)
	ctx := WithLogger(context.Background(), baseLogger)

	ctx = WithStr(ctx, "column", "event.id")
	logger := FromContext(ctx)
	logger.Info().Msg("test")

	output := buf.String()
	if !strings.Contains(output, `"column":"event.id"`) {
		t.Errorf("expected column field in output, got: %s", output)
	}
}

func TestWithInt(t *testing.T) {
	var buf bytes.Buffer
	baseLogger := zerolog.New(&buf)
	ctx := WithLogger(context.Background(), baseLogger)

	ctx = WithInt(ctx, "row_group", 42)
	logger := FromContext(ctx)
	logger.Info().Msg("test")

	output := buf.String()
	if !strings.Contains(output, `"row_group":42`) {
		t.Errorf("expected row_group field in output, got: %s", output)
	}
}

func TestDefaultLogger(t *testing.T) {
	logger := DefaultLogger()

	var buf bytes.Buffer
	testLogger := logger.Output(&buf)
	testLogger.Info().Msg("test")

	if buf.Len() == 0 {
		t.Error("expected default logger to produce output")
	}
}

func TestNewConfiguredLogger(t *testing.T) {
	tests := []struct {
		name  string
		debug bool
		human bool
	}{
		{"json_info", false, false},
		{"json_debug", true, false},
		{"human_info", false, true},
		{"human_debug", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewConfiguredLogger(tt.debug, tt.human)

			var buf bytes.Buffer
			testLogger := logger.Output(&buf)
			testLogger.Info().Msg("test info")

			if buf.Len() == 0 {
				t.Error("expected logger to produce output")
			}
		})
	}
}

func TestChainedContexts(t *testing.T) {
	var buf bytes.Buffer
	baseLogger := zerolog.New(&buf)

	ctx := WithLogger(context.Background(), baseLogger)
	ctx = WithStr(ctx, "column", "event.id")
	ctx = WithInt(ctx, "row_group", 5)

	logger := FromContext(ctx)
	logger.Info().Msg("test")

	output := buf.String()
	if !strings.Contains(output, `"column":"event.id"`) {
		t.Errorf("expected column field, got: %s", output)
	}
	if !strings.Contains(output, `"row_group":5`) {
		t.Errorf("expected row_group field, got: %s", output)
	}
}
