package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/uxid/pkg/uxid"
	"github.com/omeyang/uxid/pkg/uxidconf"
)

// usageError 表示参数错误，映射到退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// createCommands 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createGenerateCommand(),
		createDecodeCommand(),
	}
}

// createGenerateCommand 创建 generate 子命令。
func createGenerateCommand() *cli.Command {
	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"g"},
		Usage:   "生成 UXID",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "prefix",
				Aliases: []string{"p"},
				Usage:   "前缀（可包含分隔符 \"_\"，不能以其结尾）",
			},
			&cli.StringFlag{
				Name:    "size",
				Aliases: []string{"s"},
				Usage:   "命名尺寸预设 (xs/s/m/l/xl)，与 --rand-size 互斥",
			},
			&cli.IntFlag{
				Name:    "rand-size",
				Aliases: []string{"r"},
				Usage:   "随机后缀字节数，与 --size 互斥",
			},
			&cli.Int64Flag{
				Name:    "time",
				Aliases: []string{"t"},
				Usage:   "覆盖时间戳（毫秒），默认当前时间",
				Value:   -1,
			},
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "生成数量",
				Value:   1,
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "生成默认值配置文件 (YAML/JSON)，命令行 flag 优先",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			opts, err := buildGenOptions(cmd)
			if err != nil {
				return err
			}
			count := cmd.Int("count")
			if count < 1 {
				return &usageError{msg: fmt.Sprintf("无效的 --count 值: %d", count)}
			}
			return cmdGenerate(cmd.Root().Writer, count, opts)
		},
	}
}

// createDecodeCommand 创建 decode 子命令。
func createDecodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Aliases:   []string{"d"},
		Usage:     "解码 UXID",
		ArgsUsage: "<id>...",
		Action: func(_ context.Context, cmd *cli.Command) error {
			ids := cmd.Args().Slice()
			if len(ids) == 0 {
				return &usageError{msg: "decode 需要至少一个 UXID 参数"}
			}
			return cmdDecode(cmd.Root().Writer, ids)
		},
	}
}

// buildGenOptions 从配置文件与命令行 flag 构建生成选项。
// 配置文件先应用，命令行 flag 后应用、优先生效：flag 指定的尺寸选择器
// 会覆盖配置文件里的，无论两侧用的是预设名还是显式字节数。
// 同一次调用里同时给出 --size 与 --rand-size 则直接拒绝。
func buildGenOptions(cmd *cli.Command) ([]uxid.GenOption, error) {
	var opts []uxid.GenOption

	if path := cmd.String("config"); path != "" {
		defaults, err := uxidconf.Load(path)
		if err != nil {
			return nil, err
		}
		opts = append(opts, defaults.GenOptions()...)
	}

	size := cmd.String("size")
	randSize := cmd.Int("rand-size")
	if size != "" && randSize != 0 {
		return nil, fmt.Errorf("%w: --size 与 --rand-size 不能同时指定",
			uxid.ErrInvalidSizeOption)
	}

	if prefix := cmd.String("prefix"); prefix != "" {
		opts = append(opts, uxid.WithPrefix(prefix))
	}
	if size != "" {
		opts = append(opts, uxid.WithSize(uxid.Size(size)))
	}
	if randSize != 0 {
		opts = append(opts, uxid.WithRandSize(randSize))
	}
	if ms := cmd.Int64("time"); ms >= 0 {
		opts = append(opts, uxid.WithTime(ms))
	}
	return opts, nil
}

// cmdGenerate 生成并输出 count 个 UXID，每行一个。
func cmdGenerate(w io.Writer, count int, opts []uxid.GenOption) error {
	for i := 0; i < count; i++ {
		s, err := uxid.Generate(opts...)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, s)
	}
	return nil
}

// cmdDecode 解码并输出每个 UXID 的结构化字段。
func cmdDecode(w io.Writer, ids []string) error {
	for _, s := range ids {
		u, err := uxid.Decode(s)
		if err != nil {
			return fmt.Errorf("解码 %q 失败: %w", s, err)
		}
		printRecord(w, u)
	}
	return nil
}

// printRecord 输出解码记录。随机后缀相关字段无法还原，标注为不支持。
func printRecord(w io.Writer, u uxid.UXID) {
	prefix := u.Prefix
	if prefix == "" {
		prefix = "(无)"
	}
	fmt.Fprintf(w, "string:       %s\n", u.String())
	fmt.Fprintf(w, "prefix:       %s\n", prefix)
	fmt.Fprintf(w, "time:         %d (%s)\n", u.Timestamp(),
		time.UnixMilli(u.Timestamp()).UTC().Format(time.RFC3339Nano))
	fmt.Fprintf(w, "time_encoded: %s\n", u.TimeEncoded)
	fmt.Fprintf(w, "rand_encoded: %s\n", u.RandEncoded)
	fmt.Fprintf(w, "rand:         (不支持解码)\n")
	fmt.Fprintf(w, "rand_size:    (不支持解码)\n")
	fmt.Fprintf(w, "size:         (不支持解码)\n")
}
