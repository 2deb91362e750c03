package jsonutil

import (
	"io"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/pylemonorg/strtrim/logger"
)

// 与 encoding/json 行为一致的 jsoniter 配置。
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Marshal 将任意值序列化为 JSON 字节切片，统一错误格式。
func Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, logger.ErrorfE("jsonutil: marshal 失败: %w", err)
	}
	return data, nil
}

// MarshalString 将任意值序列化为 JSON 字符串。
func MarshalString(v any) (string, error) {
	data, err := Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// MustMarshalString 将任意值序列化为 JSON 字符串，失败时记录错误日志并返回空串。
// 适用于确信不会失败的场景，省去 if err 判断。
func MustMarshalString(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Errorf("jsonutil: MustMarshalString 失败: %v", err)
		return ""
	}
	return string(data)
}

// Unmarshal 将 JSON 字节切片反序列化到目标对象。
func Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return logger.ErrorfE("jsonutil: unmarshal 失败: %w", err)
	}
	return nil
}

// UnmarshalString 将 JSON 字符串反序列化到目标对象。
func UnmarshalString(s string, v any) error {
	return Unmarshal([]byte(s), v)
}

// ---------------------------------------------------------------------------
// JSON Lines
// ---------------------------------------------------------------------------

// LineWriter 按 JSON Lines 格式逐条写出，每条记录占一行，可并发调用。
// 不转义 HTML 字符，裁剪结果中的 <、>、& 原样输出。
//
// 用法：
//
//	w := jsonutil.NewLineWriter(os.Stdout)
//	w.Write(map[string]string{"result": "hi"})
type LineWriter struct {
	mu  sync.Mutex
	enc *jsoniter.Encoder
	n   int
}

// NewLineWriter 创建写入 w 的 LineWriter。
func NewLineWriter(w io.Writer) *LineWriter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &LineWriter{enc: enc}
}

// Write 序列化 v 并写出一行（Encoder 自动追加换行符）。
func (lw *LineWriter) Write(v any) error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	if err := lw.enc.Encode(v); err != nil {
		return logger.ErrorfE("jsonutil: 写出第 %d 行失败: %w", lw.n+1, err)
	}
	lw.n++
	return nil
}

// Count 返回已成功写出的行数。
func (lw *LineWriter) Count() int {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	return lw.n
}
