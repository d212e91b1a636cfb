package uxid

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"time"
)

// =============================================================================
// Generator - 实例化的 ID 生成器
// =============================================================================

// Generator UXID 生成器。
//
// 支持两种使用方式：
//   - 实例化：通过 NewGenerator 创建独立实例，适用于依赖注入和测试隔离
//   - 全局函数：通过包级别函数（New/Generate 等）使用默认全局实例
//
// Generator 自身无共享可变状态，所有方法都是并发安全的
//（前提是注入的随机源并发安全；默认的 crypto/rand.Reader 满足）。
type Generator struct {
	clock   func() time.Time
	entropy io.Reader
}

// NewGenerator 创建新的 UXID 生成器实例。
//
// 默认时钟为 time.Now、随机源为 crypto/rand.Reader。
// 时钟与随机源均可通过 Option 注入，便于确定性测试。
//
// 设计决策: nil Option 静默跳过而非返回错误，便于条件式构建
// Option 列表；显式传入 nil 时钟或 nil 随机源则 fail-fast
// 返回 [ErrInvalidConfig]——前者是"未配置"，后者是配置错误。
func NewGenerator(opts ...Option) (*Generator, error) {
	cfg := &options{
		clock:   time.Now,
		entropy: rand.Reader,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	if cfg.clock == nil {
		return nil, fmt.Errorf("%w: nil clock", ErrInvalidConfig)
	}
	if cfg.entropy == nil {
		return nil, fmt.Errorf("%w: nil entropy reader", ErrInvalidConfig)
	}
	return &Generator{clock: cfg.clock, entropy: cfg.entropy}, nil
}

// =============================================================================
// 生成管线
// =============================================================================

// New 生成新的 UXID，返回完整记录。
//
// 管线：校验前缀 → 解析随机尺寸 → 编码时间戳 → 读取并编码随机后缀 →
// 拼装编码体与完整字符串。除读取随机源外所有步骤均为纯函数。
//
// 可能的错误：[ErrInvalidPrefix]、[ErrInvalidSizeOption]、
// [ErrTimeOverflow]、[ErrEntropyRead]。
func (g *Generator) New(opts ...GenOption) (UXID, error) {
	cfg := &genOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	u := UXID{}

	// 阶段 1：前缀校验。空前缀等价于未设置；以分隔符结尾的前缀会在
	// 解码时产出空编码体，直接拒绝。
	if cfg.prefix != "" {
		if strings.HasSuffix(cfg.prefix, Delimiter) {
			return UXID{}, fmt.Errorf("%w: %q must not end with %q",
				ErrInvalidPrefix, cfg.prefix, Delimiter)
		}
		u.Prefix = cfg.prefix
	}

	// 阶段 2：解析随机字节数。
	randSize, size, err := resolveRandSize(cfg)
	if err != nil {
		return UXID{}, err
	}
	u.RandSize = randSize
	u.Size = size

	// 阶段 3：时间戳编码。
	ms := cfg.time
	if !cfg.timeSet {
		ms = g.clock().UnixMilli()
	}
	if ms < 0 {
		return UXID{}, fmt.Errorf("%w: negative timestamp %d", ErrTimeOverflow, ms)
	}
	encoded, err := packTime(uint64(ms))
	if err != nil {
		return UXID{}, err
	}
	u.Time = ms
	u.TimeEncoded = encoded

	// 阶段 4：随机后缀。唯一的副作用步骤（消耗熵）。
	b, err := readRand(g.entropy, randSize)
	if err != nil {
		return UXID{}, err
	}
	u.Rand = b
	u.RandEncoded = encodeBytes(b)

	// 阶段 5-6：拼装编码体与完整字符串。
	u.Encoded = u.TimeEncoded + u.RandEncoded
	if u.Prefix != "" {
		u.str = u.Prefix + Delimiter + u.Encoded
	} else {
		u.str = u.Encoded
	}
	return u, nil
}

// Generate 生成新的 UXID，只返回字符串表示。
func (g *Generator) Generate(opts ...GenOption) (string, error) {
	u, err := g.New(opts...)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// MustGenerate 生成新的 UXID 字符串，失败时 panic。
//
// 适用于明确接受 crash-fast 策略的场景（如测试夹具、启动时预生成）。
// 生产路径建议使用 [Generator.Generate] 以便自定义错误处理。
func (g *Generator) MustGenerate(opts ...GenOption) string {
	s, err := g.Generate(opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// resolveRandSize 从单次配置解析随机字节数与对应预设。
//
// WithRandSize 与 WithSize 后出现者生效（选项应用时互相清除），
// 进入此函数时两个选择器至多一个被设置。都未设置时使用默认值
// [DefaultRandSize]（即 [SizeMedium]）。显式字节数不回填预设名，
// 预设字段只在确由预设选定时携带语义。
func resolveRandSize(cfg *genOptions) (int, Size, error) {
	switch {
	case cfg.randSizeSet:
		if cfg.randSize <= 0 {
			return 0, "", fmt.Errorf("%w: rand size must be positive, got %d",
				ErrInvalidSizeOption, cfg.randSize)
		}
		return cfg.randSize, "", nil
	case cfg.sizeSet:
		n, ok := cfg.size.Bytes()
		if !ok {
			return 0, "", fmt.Errorf("%w: unknown size preset %q", ErrInvalidSizeOption, cfg.size)
		}
		return n, cfg.size, nil
	default:
		return DefaultRandSize, SizeMedium, nil
	}
}

// =============================================================================
// 全局默认生成器
// =============================================================================

// defaultGenerator 包级函数使用的默认生成器（真实时钟 + crypto/rand）。
// 无配置项可失败，直接构造。
var defaultGenerator = &Generator{clock: time.Now, entropy: rand.Reader}

// New 使用默认生成器生成新的 UXID，返回完整记录。
func New(opts ...GenOption) (UXID, error) {
	return defaultGenerator.New(opts...)
}

// Generate 使用默认生成器生成新的 UXID，只返回字符串表示。
func Generate(opts ...GenOption) (string, error) {
	return defaultGenerator.Generate(opts...)
}

// MustGenerate 使用默认生成器生成新的 UXID 字符串，失败时 panic。
//
// 默认生成器下仅在配置错误（如非法前缀、尺寸冲突）时可能失败，
// 适用于参数固定且已验证的 crash-fast 场景。
func MustGenerate(opts ...GenOption) string {
	return defaultGenerator.MustGenerate(opts...)
}
