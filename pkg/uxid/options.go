package uxid

import (
	"io"
	"time"
)

// =============================================================================
// 生成器配置
// =============================================================================

// options 生成器内部配置结构。
type options struct {
	clock   func() time.Time
	entropy io.Reader
}

// Option 生成器配置选项函数。
type Option func(*options)

// WithClock 设置自定义时钟。
//
// 默认使用 time.Now。时钟只在调用方未通过 WithTime 显式指定时间戳时读取，
// 取其 UnixMilli 作为时间戳。典型用途是测试中注入固定时间以获得确定性输出。
//
// 传入 nil 会在 NewGenerator 中返回 [ErrInvalidConfig]（fail-fast）。
func WithClock(fn func() time.Time) Option {
	return func(c *options) {
		c.clock = fn
	}
}

// WithEntropy 设置自定义随机源。
//
// 默认使用 crypto/rand.Reader。随机源必须是加密安全的，
// 通用伪随机数生成器（math/rand）会使随机后缀可预测、丧失抗枚举性。
// 测试中可注入固定字节序列（如 bytes.NewReader）获得确定性输出。
//
// 传入 nil 会在 NewGenerator 中返回 [ErrInvalidConfig]（fail-fast）。
func WithEntropy(r io.Reader) Option {
	return func(c *options) {
		c.entropy = r
	}
}

// =============================================================================
// 单次生成配置
// =============================================================================

// genOptions 单次生成的内部配置结构。
type genOptions struct {
	prefix      string
	time        int64
	timeSet     bool // 区分"未传入"与"显式传入 0"
	randSize    int
	randSizeSet bool
	size        Size
	sizeSet     bool
}

// GenOption 单次生成的配置选项函数。
type GenOption func(*genOptions)

// WithPrefix 设置前缀。
//
// 前缀不能以分隔符 "_" 结尾，但可以包含分隔符（如 "multi_word_prefix"），
// 解码时能正确还原。空字符串等价于不设置前缀。
func WithPrefix(prefix string) GenOption {
	return func(c *genOptions) {
		c.prefix = prefix
	}
}

// WithTime 覆盖时间戳（毫秒）。
//
// 不设置时使用生成器时钟的当前时间。合法域为 [0, 2^48-1]，
// 越界时 New/Generate 返回 [ErrTimeOverflow]。
// 显式传入 0 是合法的（编码为 "0000000000"）。
func WithTime(ms int64) GenOption {
	return func(c *genOptions) {
		c.time = ms
		c.timeSet = true
	}
}

// WithRandSize 显式设置随机后缀字节数。
//
// 与 WithSize 是同一选择器的两种形式，选项列表中后出现者生效，
// 会清除此前通过 WithSize 做出的选择。这保证分层配置
//（如配置文件默认值在前、调用方覆盖在后）跨形式覆盖也能成立。
// 字节数必须为正，非正数返回 [ErrInvalidSizeOption]。
func WithRandSize(n int) GenOption {
	return func(c *genOptions) {
		c.randSize = n
		c.randSizeSet = true
		c.size = ""
		c.sizeSet = false
	}
}

// WithSize 通过命名预设设置随机后缀字节数。
//
// 与 WithRandSize 是同一选择器的两种形式，选项列表中后出现者生效，
// 会清除此前通过 WithRandSize 做出的选择。
// 未知预设名返回 [ErrInvalidSizeOption]。预设表见 [Size] 常量。
func WithSize(size Size) GenOption {
	return func(c *genOptions) {
		c.size = size
		c.sizeSet = true
		c.randSize = 0
		c.randSizeSet = false
	}
}
