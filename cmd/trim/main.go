// Command trim 按自定义字符集裁剪文件或标准输入的两端（或单端）。
//
// 用法：
//
//	echo "  hello  " | trim
//	trim --chars "#*" --lines notes.txt
//	trim rtrim --encoding auto --json legacy_gbk.txt
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pylemonorg/strtrim/strutil"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	flags := &flagValues{}
	rootCommand := &cobra.Command{
		Use:   "trim [file ...]",
		Short: "按自定义字符集裁剪文本",
		Long:  "读取文件（无参数或 - 表示标准输入），解码为 UTF-8 后按字符集裁剪，结果写到标准输出。",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrim(cmd, args, flags, 0)
		},
	}
	rootCommand.SilenceUsage = true
	flags.bind(rootCommand.PersistentFlags())
	rootCommand.AddCommand(newFixedEndsCommand("ltrim", "仅裁剪左端", strutil.Left, flags))
	rootCommand.AddCommand(newFixedEndsCommand("rtrim", "仅裁剪右端", strutil.Right, flags))
	return rootCommand
}

// newFixedEndsCommand 创建固定裁剪端的子命令，忽略 --ends。
func newFixedEndsCommand(name, short string, ends strutil.Ends, flags *flagValues) *cobra.Command {
	return &cobra.Command{
		Use:   name + " [file ...]",
		Short: short,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrim(cmd, args, flags, ends)
		},
	}
}
