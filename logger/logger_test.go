package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
		ok    bool
	}{
		{"debug", zerolog.DebugLevel, true},
		{"INFO", zerolog.InfoLevel, true},
		{"warn", zerolog.WarnLevel, true},
		{"warning", zerolog.WarnLevel, true},
		{" error ", zerolog.ErrorLevel, true},
		{"verbose", zerolog.InfoLevel, false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseLevel(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestInitWithWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(LevelInfo, false, &buf)
	defer Init(LevelInfo, true)

	Debugf("不应输出 %d", 1)
	Infof("trim 完成 %d", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("期望 1 行日志, 实际 %d 行: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("日志不是合法 JSON: %v", err)
	}
	if entry["message"] != "trim 完成 3" || entry["level"] != "info" {
		t.Errorf("日志内容不符合预期: %v", entry)
	}
}

func TestErrorfE(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(LevelError, false, &buf)
	defer Init(LevelInfo, true)

	base := errors.New("底层错误")
	err := ErrorfE("encutil: 解码失败: %w", base)
	if !errors.Is(err, base) {
		t.Errorf("ErrorfE 应保留 %%w 包装: %v", err)
	}
	if !strings.Contains(buf.String(), "解码失败") {
		t.Errorf("ErrorfE 未写入日志: %q", buf.String())
	}
}
