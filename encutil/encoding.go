package encutil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pylemonorg/strtrim/logger"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// 编码相关的哨兵错误。
var (
	ErrEmptyInput         = errors.New("encutil: 输入为空，无法检测编码")
	ErrUnsupportedCharset = errors.New("encutil: 不支持的字符集")
)

// 特殊的编码标签。
const (
	LabelAuto = "auto"
	LabelUTF8 = "utf-8"
)

// chardetAliases chardet 输出的名称与 WHATWG 标签不一致的部分。
var chardetAliases = map[string]string{
	"gb-18030": "gb18030",
	"utf8":     "utf-8",
}

// Result 编码检测结果。
type Result struct {
	Charset    string // 字符集名称，如 UTF-8、GB-18030
	Language   string // 语言代码，可能为空
	Confidence int    // 置信度 0-100
}

// Detect 使用 chardet 检测 data 最可能的字符集。
func Detect(data []byte) (Result, error) {
	if len(data) == 0 {
		return Result{}, ErrEmptyInput
	}
	best, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil {
		return Result{}, fmt.Errorf("encutil: 检测编码失败: %w", err)
	}
	return Result{
		Charset:    best.Charset,
		Language:   best.Language,
		Confidence: best.Confidence,
	}, nil
}

// Lookup 根据标签查找编码，返回编码和规范名称。
// 同时接受 WHATWG 标签（如 "gbk"、"latin1"）和 chardet 输出的名称（如 "GB-18030"）。
func Lookup(label string) (encoding.Encoding, string, error) {
	key := strings.ToLower(strings.TrimSpace(label))
	if alias, ok := chardetAliases[key]; ok {
		key = alias
	}
	enc, name := charset.Lookup(key)
	// "replacement" 编码会把整个输入替换成 U+FFFD，视为不支持
	if enc == nil || name == "replacement" {
		return nil, "", fmt.Errorf("%w: '%s'", ErrUnsupportedCharset, label)
	}
	return enc, name, nil
}

// Decode 将 data 按 label 指定的编码转换为 UTF-8。
//   - label 为 "" 或 "auto" 时先用 Detect 检测；
//   - label 为 "utf-8" 时去除 BOM，非法字节替换为 U+FFFD；
//   - 其他标签通过 Lookup 查找编码。
func Decode(data []byte, label string) ([]byte, error) {
	if len(data) == 0 {
		return data, nil
	}

	label = strings.TrimSpace(label)
	if label == "" || strings.EqualFold(label, LabelAuto) {
		res, err := Detect(data)
		if err != nil {
			return nil, logger.ErrorfE("encutil: 自动检测失败: %w", err)
		}
		logger.Debug().
			Str("charset", res.Charset).
			Str("language", res.Language).
			Int("confidence", res.Confidence).
			Msg("encutil: 检测到编码")
		label = res.Charset
	}

	var dec *encoding.Decoder
	if strings.EqualFold(label, LabelUTF8) {
		dec = unicode.UTF8BOM.NewDecoder()
	} else {
		enc, name, err := Lookup(label)
		if err != nil {
			return nil, err
		}
		if name == LabelUTF8 {
			dec = unicode.UTF8BOM.NewDecoder()
		} else {
			dec = enc.NewDecoder()
		}
	}

	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return nil, logger.ErrorfE("encutil: 按 %s 解码失败: %w", label, err)
	}
	return out, nil
}

// DecodeString 与 Decode 相同，返回字符串。
func DecodeString(data []byte, label string) (string, error) {
	out, err := Decode(data, label)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
