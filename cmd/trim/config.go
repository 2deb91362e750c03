package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/pylemonorg/strtrim/logger"
	"github.com/pylemonorg/strtrim/ptr"
)

// Config 命令行配置，优先级：命令行参数 > 环境变量 > 默认值。
type Config struct {
	Chars     *string `env:"TRIM_CHARS"` // nil 表示使用默认字符集
	Ends      string  `env:"TRIM_ENDS" envDefault:"both"`
	Lines     bool    `env:"TRIM_LINES" envDefault:"false"`
	Encoding  string  `env:"TRIM_ENCODING" envDefault:"utf-8"`
	JSON      bool    `env:"TRIM_JSON" envDefault:"false"`
	LogLevel  string  `env:"TRIM_LOG_LEVEL" envDefault:"warn"`
	LogPretty bool    `env:"TRIM_LOG_PRETTY" envDefault:"true"`
}

var errParsingConfig = errors.New("config: 解析环境变量失败")

// loadConfig 读取环境变量。environ 为 nil 时先加载当前目录的 .env（不存在则忽略），再读取进程环境。
func loadConfig(environ map[string]string) (*Config, error) {
	if environ == nil {
		loadDotEnv(".env")
	}
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, errors.Join(errParsingConfig, err)
	}
	return cfg, nil
}

// loadDotEnv 加载 .env 文件到进程环境。文件不存在时静默跳过，其他错误只记录警告。
func loadDotEnv(path string) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warnf("config: 加载 %s 失败: %v", path, err)
	}
}

// flagValues 命令行参数的原始值，只有显式设置过的参数才覆盖 Config。
type flagValues struct {
	chars    string
	ends     string
	lines    bool
	encoding string
	json     bool
	logLevel string
}

func (f *flagValues) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&f.chars, "chars", "c", "", "裁剪字符集（默认为空格、\\t、\\n、\\r、\\0、\\v）")
	fs.StringVarP(&f.ends, "ends", "e", "both", "裁剪端：left、right 或 both")
	fs.BoolVarP(&f.lines, "lines", "l", false, "逐行裁剪")
	fs.StringVar(&f.encoding, "encoding", "utf-8", "输入编码，auto 为自动检测")
	fs.BoolVar(&f.json, "json", false, "以 JSON Lines 格式输出")
	fs.StringVar(&f.logLevel, "log-level", "warn", "日志级别：debug、info、warn、error")
}

// apply 用显式设置的参数覆盖 cfg。
func (f *flagValues) apply(fs *pflag.FlagSet, cfg *Config) {
	if fs.Changed("chars") {
		cfg.Chars = ptr.To(f.chars)
	}
	if fs.Changed("ends") {
		cfg.Ends = f.ends
	}
	if fs.Changed("lines") {
		cfg.Lines = f.lines
	}
	if fs.Changed("encoding") {
		cfg.Encoding = f.encoding
	}
	if fs.Changed("json") {
		cfg.JSON = f.json
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
}

func (c *Config) String() string {
	return fmt.Sprintf("chars=%q ends=%s lines=%v encoding=%s json=%v",
		ptr.Or(c.Chars, "<default>"), c.Ends, c.Lines, c.Encoding, c.JSON)
}
