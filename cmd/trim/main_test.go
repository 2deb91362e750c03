package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"

	"github.com/pylemonorg/strtrim/jsonutil"
	"github.com/pylemonorg/strtrim/logger"
)

// execute 运行命令并返回标准输出。
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { logger.Init(logger.LevelInfo, true) })

	var out, errOut bytes.Buffer
	cmd := newRootCommand()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTrimCommand_Stdin(t *testing.T) {
	out, err := execute(t, " \t hello world \r\n")
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", out)
}

func TestTrimCommand_Chars(t *testing.T) {
	out, err := execute(t, "foo bar", "--chars", " of")
	require.NoError(t, err)
	assert.Equal(t, "bar\n", out)
}

func TestTrimCommand_EmptyCharsTrimsNothing(t *testing.T) {
	out, err := execute(t, " x ", "--chars", "")
	require.NoError(t, err)
	assert.Equal(t, " x \n", out)
}

func TestTrimCommand_Lines(t *testing.T) {
	out, err := execute(t, "  a  \n\tb\n c\r\n", "--lines")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\nc\n", out)
}

func TestTrimCommand_Ends(t *testing.T) {
	out, err := execute(t, "##x##", "--chars", "#", "--ends", "left")
	require.NoError(t, err)
	assert.Equal(t, "x##\n", out)
}

func TestTrimCommand_Subcommands(t *testing.T) {
	out, err := execute(t, "##x##", "ltrim", "--chars", "#")
	require.NoError(t, err)
	assert.Equal(t, "x##\n", out)

	out, err = execute(t, "##x##", "rtrim", "--chars", "#", "--ends", "left")
	require.NoError(t, err)
	assert.Equal(t, "##x\n", out, "子命令固定裁剪端，忽略 --ends")
}

func TestTrimCommand_InvalidEnds(t *testing.T) {
	_, err := execute(t, "x", "--ends", "middle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ends")
}

func TestTrimCommand_JSON(t *testing.T) {
	out, err := execute(t, " a \n b \n", "--lines", "--json")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)

	var r record
	require.NoError(t, jsonutil.UnmarshalString(lines[1], &r))
	assert.Equal(t, record{Source: "-", Line: 2, Result: "b"}, r)
}

func TestTrimCommand_Files(t *testing.T) {
	dir := t.TempDir()
	utf8File := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(utf8File, []byte("**标题**"), 0o644))

	gbk, err := simplifiedchinese.GBK.NewEncoder().String("  中文  ")
	require.NoError(t, err)
	gbkFile := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(gbkFile, []byte(gbk), 0o644))

	out, err := execute(t, "", "--chars", "* ", utf8File)
	require.NoError(t, err)
	assert.Equal(t, "标题\n", out)

	out, err = execute(t, "", "--encoding", "gbk", gbkFile)
	require.NoError(t, err)
	assert.Equal(t, "中文\n", out)
}

func TestTrimCommand_MissingFile(t *testing.T) {
	_, err := execute(t, "", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestTrimCommand_MissingFileKeepsEarlierOutput(t *testing.T) {
	dir := t.TempDir()
	okFile := filepath.Join(dir, "ok.txt")
	require.NoError(t, os.WriteFile(okFile, []byte("  ok  "), 0o644))

	out, err := execute(t, "", okFile, filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.Equal(t, "ok\n", out)

	out, err = execute(t, "", "--json", okFile, filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	var r record
	require.NoError(t, jsonutil.UnmarshalString(strings.TrimSpace(out), &r))
	assert.Equal(t, "ok", r.Result)
}

func TestTrimCommand_Environment(t *testing.T) {
	t.Setenv("TRIM_CHARS", "-")
	t.Setenv("TRIM_ENDS", "right")

	out, err := execute(t, "--x--")
	require.NoError(t, err)
	assert.Equal(t, "--x\n", out)
}
