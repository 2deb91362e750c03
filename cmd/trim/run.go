package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pylemonorg/strtrim/encutil"
	"github.com/pylemonorg/strtrim/jsonutil"
	"github.com/pylemonorg/strtrim/logger"
	"github.com/pylemonorg/strtrim/strutil"
	"github.com/pylemonorg/strtrim/timeutil"
)

const stdinName = "-"

// record JSON 输出的单条结果。Line 从 1 开始，整段裁剪时省略。
type record struct {
	Source string `json:"source"`
	Line   int    `json:"line,omitempty"`
	Result string `json:"result"`
}

// emitter 按配置写出结果（纯文本或 JSON Lines）。
type emitter struct {
	text *bufio.Writer
	json *jsonutil.LineWriter
}

func (e *emitter) emit(r record) error {
	if e.json != nil {
		return e.json.Write(r)
	}
	if _, err := e.text.WriteString(r.Result); err != nil {
		return err
	}
	return e.text.WriteByte('\n')
}

// runTrim 是所有命令的公共入口。fixed 非 0 时覆盖配置中的裁剪端。
func runTrim(cmd *cobra.Command, args []string, flags *flagValues, fixed strutil.Ends) error {
	cfg, err := loadConfig(nil)
	if err != nil {
		return err
	}
	flags.apply(cmd.Flags(), cfg)

	logger.InitWithWriter(cfg.LogLevel, cfg.LogPretty, cmd.ErrOrStderr())

	ends := fixed
	if ends == 0 {
		if ends, err = strutil.ParseEnds(cfg.Ends); err != nil {
			return fmt.Errorf("--ends: %w", err)
		}
	}

	return trimInputs(cmd.InOrStdin(), cmd.OutOrStdout(), args, cfg, ends)
}

// trimInputs 依次处理每个输入，结果写到 out。
func trimInputs(in io.Reader, out io.Writer, sources []string, cfg *Config, ends strutil.Ends) (err error) {
	defer timeutil.TrackTime("trim")()
	logger.Debugf("trim: %s ends=%s", cfg, ends)

	if len(sources) == 0 {
		sources = []string{stdinName}
	}

	// 某个输入失败时，之前输入的结果仍然写出
	buf := bufio.NewWriter(out)
	defer func() {
		if flushErr := buf.Flush(); flushErr != nil {
			err = errors.Join(err, flushErr)
		}
	}()
	e := &emitter{text: buf}
	if cfg.JSON {
		e.json = jsonutil.NewLineWriter(buf)
	}

	for _, src := range sources {
		text, err := readSource(in, src, cfg.Encoding)
		if err != nil {
			return err
		}
		if err := trimSource(e, src, text, cfg, ends); err != nil {
			return err
		}
	}
	return nil
}

// readSource 读取并解码单个输入。
func readSource(in io.Reader, src, encoding string) (string, error) {
	var (
		data []byte
		err  error
	)
	if src == stdinName {
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(src)
	}
	if err != nil {
		return "", logger.ErrorfE("trim: 读取 [%s] 失败: %w", src, err)
	}
	logger.Debug().Str("source", src).Int("bytes", len(data)).Msg("trim: 读取输入")

	text, err := encutil.DecodeString(data, encoding)
	if err != nil {
		return "", fmt.Errorf("trim: 解码 [%s] 失败: %w", src, err)
	}
	return text, nil
}

// trimSource 裁剪单个输入的全文或每一行。
func trimSource(e *emitter, src, text string, cfg *Config, ends strutil.Ends) error {
	if !cfg.Lines {
		result, err := strutil.TrimAny(text, cfg.Chars, ends)
		if err != nil {
			return err
		}
		return e.emit(record{Source: src, Result: result})
	}

	lines := strings.Split(text, "\n")
	// 末尾换行不构成新的一行
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		result, err := strutil.TrimAny(line, cfg.Chars, ends)
		if err != nil {
			return err
		}
		if err := e.emit(record{Source: src, Line: i + 1, Result: result}); err != nil {
			return err
		}
	}
	logger.Debugf("trim: [%s] 共处理 %d 行", src, len(lines))
	return nil
}
