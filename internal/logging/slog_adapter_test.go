// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestSlogHandler(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(NewTestLogger(&buf))
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() { Init(DefaultConfig()) })

	logger := NewSlogLogger().With("supervisor", "root").WithGroup("svc")
	logger.Warn("service restarted", "name", "http-server", "backoff", 15*time.Second, "attempt", 3)

	out := buf.String()
	tests := []string{
		`"level":"warn"`,
		`"supervisor":"root"`,
		`"svc.name":"http-server"`,
		`"svc.attempt":3`,
		`"message":"service restarted"`,
	}
	for _, want := range tests {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %s", out, want)
		}
	}
}

func TestToZerologLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   slog.Level
		want zerolog.Level
	}{
		{slog.LevelDebug, zerolog.DebugLevel},
		{slog.LevelInfo, zerolog.InfoLevel},
		{slog.LevelWarn, zerolog.WarnLevel},
		{slog.LevelError, zerolog.ErrorLevel},
		{slog.LevelError + 4, zerolog.ErrorLevel},
	}
	for _, tt := range tests {
		if got := toZerologLevel(tt.in); got != tt.want {
			t.Errorf("toZerologLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
