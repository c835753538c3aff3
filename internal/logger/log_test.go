// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("new should successfully create a stderr logger", func(t *testing.T) {
		l := New(slog.LevelInfo)
		if l == nil {
			t.Fatal("expected logger to be non-nil")
		}
		if !l.Enabled(t.Context(), slog.LevelInfo) {
			t.Error("expected info level to be enabled")
		}
		if l.Enabled(t.Context(), slog.LevelDebug) {
			t.Error("expected debug level to be disabled")
		}
	})
}

func TestNewLogger(t *testing.T) {
	messages := []struct {
		level slog.Level
		msg   string
	}{
		{slog.LevelDebug, "fetching weather"},
		{slog.LevelInfo, "weather rendered"},
		{slog.LevelWarn, "slow response"},
		{slog.LevelError, "request failed"},
	}
	tests := []struct {
		name  string
		level slog.Level
		want  int
	}{
		{"debug level logs everything", slog.LevelDebug, 4},
		{"info level hides debug", slog.LevelInfo, 3},
		{"warn level hides debug and info", slog.LevelWarn, 2},
		{"error level only logs errors", slog.LevelError, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := bytes.NewBuffer(nil)
			l := NewLogger(tc.level, buf)
			for _, m := range messages {
				l.Log(t.Context(), m.level, m.msg)
			}
			for i, m := range messages {
				logged := strings.Contains(buf.String(), m.msg)
				expected := i >= len(messages)-tc.want
				if logged != expected {
					t.Errorf("message %q logged: %t, expected: %t", m.msg, logged, expected)
				}
			}
		})
	}
}

func TestErr(t *testing.T) {
	t.Run("error attribute is rendered with the error key", func(t *testing.T) {
		buf := bytes.NewBuffer(nil)
		l := NewLogger(slog.LevelDebug, buf)
		l.Error("fetch failed", Err(errors.New("connection refused")))

		if !strings.Contains(buf.String(), `error="connection refused"`) {
			t.Errorf("expected error attribute in log output, got: %q", buf.String())
		}
	})
	t.Run("error attribute uses the error key", func(t *testing.T) {
		attr := Err(errors.New("boom"))
		if attr.Key != "error" {
			t.Errorf("expected attribute key to be %q, got %q", "error", attr.Key)
		}
	})
}
