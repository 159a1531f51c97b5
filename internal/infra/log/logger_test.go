package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lobby/config"
)

func TestNewWithWriter_RedactsSensitiveAttributes(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "lobby"
	cfg.Env.Log.Level = "debug"

	var buf bytes.Buffer
	logger, err := NewWithWriter(cfg, &buf)
	require.NoError(t, err)

	logger.Info("register", slog.String("password", "hunter22"), slog.String("email", "a@b.c"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, redacted, line["password"])
	assert.Equal(t, redacted, line["email"])
	assert.Equal(t, "lobby", line["service"])
	assert.NotContains(t, buf.String(), "hunter22")
	assert.NotContains(t, buf.String(), "a@b.c")
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}
