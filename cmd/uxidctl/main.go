// uxidctl 是 UXID 的命令行工具，用于生成与解码标识符。
//
// 用法:
//
//	uxidctl <命令> [命令参数]
//
// 命令:
//
//	generate       生成 UXID（可指定前缀、尺寸、时间戳与数量）
//	decode <id>... 解码 UXID，显示前缀与时间戳等结构化字段
//	help           显示帮助信息
//
// 退出码:
//
//	0: 命令执行成功
//	1: 命令执行失败（生成或解码错误）
//	2: 参数错误（缺少参数、未知 flag、尺寸选项冲突等）
//
// 示例:
//
//	uxidctl generate                          # 生成一个默认尺寸的 UXID
//	uxidctl generate -p cus -n 5              # 生成 5 个带前缀 "cus" 的 UXID
//	uxidctl generate -s xl                    # 使用 xl 预设（20 字节随机后缀）
//	uxidctl generate -c uxid.yaml             # 从配置文件读取生成默认值
//	uxidctl decode cus_01BX5ZZKBKACTAV9WEVGEMMVRZ
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run())
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:     "uxidctl",
		Usage:    "UXID 生成与解码工具",
		Version:  fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Commands: createCommands(),
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}

func run() int {
	app := createApp()

	if err := app.Run(context.Background(), os.Args); err != nil {
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr.msg)
			return 2
		}
		// CLI 框架产生的参数错误（未知 flag、未知命令）同样映射到退出码 2
		if _, ok := err.(cli.ExitCoder); ok {
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}

	return 0
}
