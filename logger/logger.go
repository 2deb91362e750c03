package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// 全局 logger
var log zerolog.Logger

// 日志级别常量
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

const timeFormat = "2006/01/02 15:04:05"

func init() {
	// 默认彩色控制台输出到 stderr，stdout 留给命令行的结果输出
	Init(LevelInfo, true)
}

// Init 初始化全局 logger，输出到 os.Stderr。
//   - level: debug, info, warn, error
//   - pretty: true 为彩色控制台输出，false 为 JSON 输出
//
// 用法：
//
//	// 开发模式（彩色控制台，默认）
//	logger.Init(logger.LevelInfo, true)
//	// 生产模式（JSON 格式）
//	logger.Init(logger.LevelInfo, false)
func Init(level string, pretty bool) {
	InitWithWriter(level, pretty, os.Stderr)
}

// InitWithWriter 初始化 logger 并输出到指定 writer（测试中可传入 bytes.Buffer）。
// w 为 nil 时使用 os.Stderr。
func InitWithWriter(level string, pretty bool, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}

	SetLevel(level)

	if pretty {
		consoleWriter := zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: timeFormat,
			NoColor:    w != os.Stderr && w != os.Stdout, // 非终端输出不需要颜色
		}
		log = zerolog.New(consoleWriter).With().Timestamp().Logger()
		return
	}

	zerolog.TimeFieldFormat = timeFormat
	log = zerolog.New(w).With().Timestamp().Logger()
}

// ParseLevel 将字符串转换为 zerolog.Level，不区分大小写。
// 无法识别时返回 zerolog.InfoLevel 和 false。
func ParseLevel(level string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case LevelDebug:
		return zerolog.DebugLevel, true
	case LevelInfo:
		return zerolog.InfoLevel, true
	case LevelWarn, "warning":
		return zerolog.WarnLevel, true
	case LevelError:
		return zerolog.ErrorLevel, true
	default:
		return zerolog.InfoLevel, false
	}
}

// SetLevel 动态设置日志级别，无法识别的级别按 info 处理。
func SetLevel(level string) {
	zeroLevel, _ := ParseLevel(level)
	zerolog.SetGlobalLevel(zeroLevel)
}

// ==================== 简洁风格 ====================

// Debugf 调试日志
func Debugf(format string, v ...interface{}) {
	log.Debug().Msgf(format, v...)
}

// Infof 信息日志
func Infof(format string, v ...interface{}) {
	log.Info().Msgf(format, v...)
}

// Warnf 警告日志
func Warnf(format string, v ...interface{}) {
	log.Warn().Msgf(format, v...)
}

// Errorf 错误日志
func Errorf(format string, v ...interface{}) {
	log.Error().Msgf(format, v...)
}

// ErrorfE 错误日志并返回 error（一行代码同时记录日志和返回错误）。
// 支持 %w，返回的 error 可用 errors.Is 判断。
func ErrorfE(format string, v ...interface{}) error {
	err := fmt.Errorf(format, v...)
	log.Error().Msg(err.Error())
	return err
}

// ==================== 链式风格（需要结构化字段时使用）====================

// Debug 调试日志（链式）
func Debug() *zerolog.Event {
	return log.Debug()
}

// Info 信息日志（链式）
func Info() *zerolog.Event {
	return log.Info()
}

// Warn 警告日志（链式）
func Warn() *zerolog.Event {
	return log.Warn()
}

// Error 错误日志（链式）
func Error() *zerolog.Event {
	return log.Error()
}
