package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"agrimatch/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "", want: slog.LevelInfo},
		{in: "INFO", want: slog.LevelInfo},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewWithWriter_JSONCarriesServiceAttrs(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "agrimatch"
	cfg.Env.Env = "test"
	cfg.Env.Log.Level = "info"

	buf := &bytes.Buffer{}
	logger, err := NewWithWriter(cfg, buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("matches generated", slog.Int("count", 3))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "matches generated", line["msg"])
	assert.Equal(t, "agrimatch", line["service"])
	assert.Equal(t, "test", line["env"])
	assert.EqualValues(t, 3, line["count"])
}

func TestNewWithWriter_RejectsUnknownLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "loud"

	_, err := NewWithWriter(cfg, &bytes.Buffer{})
	assert.Error(t, err)
}
