package uxid

// =============================================================================
// 随机后缀尺寸预设
// =============================================================================

// Size 随机后缀的命名尺寸预设。
type Size string

// 预设表。字节数为明确选定的常量：默认 10 字节（80 bits）与 ULID
// 的随机段等熵，无前缀时整体 26 字符、与 ULID 同长。
const (
	// SizeXSmall 2 字节（16 bits，编码 4 字符）。仅适合极低频、短生命周期的场景。
	SizeXSmall Size = "xs"

	// SizeSmall 5 字节（40 bits，编码 8 字符）。
	SizeSmall Size = "s"

	// SizeMedium 10 字节（80 bits，编码 16 字符）。默认值，ULID 等熵。
	SizeMedium Size = "m"

	// SizeLarge 15 字节（120 bits，编码 24 字符）。
	SizeLarge Size = "l"

	// SizeXLarge 20 字节（160 bits，编码 32 字符）。
	SizeXLarge Size = "xl"

	// SizeDecodeUnsupported 解码哨兵：表示尺寸无法从字符串还原。
	// 编码体中不包含字节数信息，这是设计上的明确声明，而非猜测或 null。
	SizeDecodeUnsupported Size = "decoding-unsupported"
)

// DefaultRandSize 未指定尺寸时的随机字节数（对应 SizeMedium）。
const DefaultRandSize = 10

// RandSizeUnsupported 解码哨兵：RandSize 字段无法从字符串还原时的取值。
const RandSizeUnsupported = -1

// sizeBytes 预设名 → 随机字节数。
var sizeBytes = map[Size]int{
	SizeXSmall: 2,
	SizeSmall:  5,
	SizeMedium: DefaultRandSize,
	SizeLarge:  15,
	SizeXLarge: 20,
}

// Bytes 返回预设对应的随机字节数。未知预设（含解码哨兵）返回 0 与 false。
func (s Size) Bytes() (int, bool) {
	n, ok := sizeBytes[s]
	return n, ok
}
