package uxid

import "errors"

// =============================================================================
// 错误定义
// =============================================================================

var (
	// ErrInvalidPrefix 前缀格式无效。
	// 前缀如果存在必须非空，且不能以分隔符 "_" 结尾
	// （否则生成的字符串会出现连续分隔符，解码时前缀无法还原）。
	ErrInvalidPrefix = errors.New("uxid: invalid prefix")

	// ErrInvalidSizeOption 随机后缀尺寸配置无效。
	// WithRandSize 字节数非正数或 WithSize 预设名未知时返回此错误。
	ErrInvalidSizeOption = errors.New("uxid: invalid size option")

	// ErrEmptyBody 字符串在分隔符之后没有编码体。
	// 如 "prefix_" 这类以分隔符结尾的输入。
	ErrEmptyBody = errors.New("uxid: empty body after delimiter")

	// ErrBodyTooShort 编码体长度不足 10 个字符，无法容纳时间戳段。
	ErrBodyTooShort = errors.New("uxid: body shorter than time segment")

	// ErrInvalidSymbol 编码体中出现字母表之外的字符。
	// 字母表为 Crockford Base32（0-9 与大写字母，排除 I/L/O/U），
	// 解码时小写会被折叠为大写后再查表。
	ErrInvalidSymbol = errors.New("uxid: invalid symbol")

	// ErrTimeOverflow 时间戳超出 48 位可表示范围。
	// 合法域为 [0, 2^48-1] 毫秒，上界约为公元 10889 年。
	ErrTimeOverflow = errors.New("uxid: time exceeds 48 bits")

	// ErrInvalidConfig 生成器配置无效。
	// NewGenerator 校验到 nil 时钟或 nil 随机源时返回此错误。
	ErrInvalidConfig = errors.New("uxid: invalid generator config")

	// ErrEntropyRead 随机源读取失败。
	// 包装底层 io.Reader 的错误，可用 errors.Is 检查。
	ErrEntropyRead = errors.New("uxid: entropy read failed")
)
