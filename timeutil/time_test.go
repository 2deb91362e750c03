package timeutil

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/pylemonorg/strtrim/logger"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		input    time.Duration
		expected string
	}{
		{850 * time.Microsecond, "850µs"},
		{320 * time.Millisecond, "320ms"},
		{2500 * time.Millisecond, "2.50秒"},
		{3*time.Minute + 12*time.Second, "3分12秒"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.input); got != tt.expected {
			t.Errorf("FormatDuration(%v) = %q, 期望 %q", tt.input, got, tt.expected)
		}
	}
}

func TestTrackTime(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWithWriter(logger.LevelDebug, false, &buf)
	defer logger.Init(logger.LevelInfo, true)

	TrackTime("trim")()

	out := buf.String()
	if !strings.Contains(out, `"task":"trim"`) || !strings.Contains(out, "总耗时") {
		t.Errorf("TrackTime 日志不符合预期: %q", out)
	}
}
