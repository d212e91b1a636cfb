// Package uxid 提供带前缀、按时间可排序、人类友好的唯一标识符（UXID）。
//
// # 设计理念
//
// UXID = 可选前缀 + 固定 10 字符的时间戳编码 + 可变长度的随机后缀编码。
// 主要特点：
//   - 按生成时间字典序可排序（时间戳在前、定宽编码）
//   - 抗枚举（随机后缀来自加密安全随机源）
//   - 复制粘贴安全（Crockford Base32 字母表，排除 I/L/O/U 易混淆字符）
//   - 解码无需任何外部协调或状态（时间戳可从字符串直接还原）
//
// # ID 结构
//
//	[<prefix>_]<time:10 chars><rand:N chars>
//
//	48 bits - 毫秒时间戳（定宽 10 字符：3 bits + 9×5 bits，高位在前）
//	N bytes - 随机后缀（默认 10 字节 = 80 bits，编码为 16 字符）
//
// 无前缀时默认 26 字符，与 ULID 同长且时间戳段与 ULID 位兼容。
//
// # 快速开始
//
// 基本用法：
//
//	id, err := uxid.Generate(uxid.WithPrefix("cus"))
//	if err != nil {
//	    return err
//	}
//	// 例如: "cus_01J9PBRT5SGVPQN8X4K2M7E3FD"
//
//	// 或一行式（失败时 panic，仅适用于 crash-fast 场景）
//	id := uxid.MustGenerate()
//
// 解码：
//
//	u, err := uxid.Decode("cus_01J9PBRT5SGVPQN8X4K2M7E3FD")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(u.Prefix, u.Time) // "cus" 1728000000000
//
// # 随机后缀尺寸
//
// 随机字节数通过 WithRandSize（显式字节数）或 WithSize（命名预设）指定。
// 两者是同一选择器的两种形式，选项列表中后出现者生效——分层配置
//（默认选项在前、调用方覆盖在后）因此可以跨形式覆盖。预设表：
//
//	| 预设        | 字节数 | 编码字符数 |
//	|-------------|--------|------------|
//	| SizeXSmall  | 2      | 4          |
//	| SizeSmall   | 5      | 8          |
//	| SizeMedium  | 10     | 16         |（默认）
//	| SizeLarge   | 15     | 24         |
//	| SizeXLarge  | 20     | 32         |
//
// # 前缀
//
// 前缀可以包含分隔符 "_"（如 "multi_word_prefix"），解码时最后一个分隔符
// 之后的部分始终作为编码体，其余部分还原为前缀。前缀不能以 "_" 结尾。
//
// # 解码的边界
//
// 解码只能还原前缀与时间戳。随机后缀的原始字节数无法从字符串推断
// （编码体中不包含长度或校验信息），因此解码结果中 Rand 为 nil、
// RandSize 为 [RandSizeUnsupported]、Size 为 [SizeDecodeUnsupported]。
// 这是设计上的明确声明，而非遗漏。
//
// # 唯一性
//
// UXID 不保证全局唯一，碰撞概率由随机后缀熵决定（默认 80 bits，
// 同一毫秒内生成两个相同 ID 的概率约 2^-80）。需要更强保证时增大
// WithRandSize 或使用 SizeXLarge。
//
// # 确定性测试
//
// 时钟与随机源均可注入，便于确定性测试：
//
//	gen, err := uxid.NewGenerator(
//	    uxid.WithClock(func() time.Time { return fixedTime }),
//	    uxid.WithEntropy(bytes.NewReader(fixedBytes)),
//	)
//
// # 线程安全
//
// uxid 包的所有公开函数都是线程安全的，可以被多个 goroutine 并发调用。
// Generator 自身无共享可变状态，其并发安全性取决于注入的随机源
// （默认 crypto/rand.Reader 是并发安全的）。
package uxid
