package uxid

import (
	"fmt"
	"strings"
)

// Delimiter 前缀与编码体之间的分隔符。
const Delimiter = "_"

// =============================================================================
// UXID 记录
// =============================================================================

// UXID 描述一个标识符的全部分解形态。
//
// 生成路径（New）会填充所有字段；解码路径（Decode）只能还原
// Prefix、Time、TimeEncoded、RandEncoded 与 Encoded，
// 随机后缀相关字段携带解码哨兵（见各字段注释）。
//
// 设计决策: 记录是值类型，管线各阶段以 UXID → (UXID, error) 的纯函数
// 形式逐字段填充，返回后不再变更，调用方独占所有权，无共享状态。
type UXID struct {
	// Prefix 可选前缀。空字符串表示无前缀。
	Prefix string

	// Time 毫秒时间戳（合法域 [0, 2^48-1]）。
	Time int64

	// TimeEncoded 时间戳的定宽 10 字符编码。
	TimeEncoded string

	// Rand 原始随机字节。解码后为 nil（无法还原）。
	Rand []byte

	// RandSize 随机字节数。解码后为 [RandSizeUnsupported]。
	RandSize int

	// RandEncoded 随机后缀的编码。解码路径中为编码体第 10 字符之后的部分。
	RandEncoded string

	// Size 命名尺寸预设。仅在通过预设（或默认值）选定尺寸时填充；
	// 解码后为 [SizeDecodeUnsupported]。
	Size Size

	// Encoded 编码体：TimeEncoded 与 RandEncoded 的拼接，不含分隔符。
	Encoded string

	// str 完整外部表示：Prefix + Delimiter + Encoded（无前缀时即 Encoded）。
	str string
}

// String 返回标识符的完整外部表示。
func (u UXID) String() string {
	return u.str
}

// Timestamp 返回时间戳段对应的 Unix 毫秒值，等价于直接读 Time 字段。
// 提供方法形式以便作为取值器传递。
func (u UXID) Timestamp() int64 {
	return u.Time
}

// =============================================================================
// 解码管线
// =============================================================================

// Decode 将字符串解析为 UXID 记录。
//
// 管线：分离前缀 → 切分编码体 → 解码时间戳 → 标记不可还原字段。
// 每一阶段都是 UXID → (UXID, error) 的纯函数，可独立测试。
// 解析是全有或全无的：任一阶段失败即返回类型化错误，不产出部分记录。
//
// 可能的错误：[ErrEmptyBody]、[ErrBodyTooShort]、[ErrInvalidSymbol]、
// [ErrTimeOverflow]（首字符数值超出 3 位域）。
func Decode(s string) (UXID, error) {
	u := UXID{str: s}
	for _, stage := range decodeStages {
		var err error
		if u, err = stage(u); err != nil {
			return UXID{}, err
		}
	}
	return u, nil
}

// decodeStages 解码管线的阶段序列，按序执行。
var decodeStages = []func(UXID) (UXID, error){
	separatePrefix,
	separateEncoded,
	decodeTime,
	markDecodeUnsupported,
}

// separatePrefix 按最后一个分隔符切分前缀与编码体。
//
// 无分隔符时整个字符串是编码体、前缀为空。有分隔符时最后一段始终是
// 编码体，之前的所有段（连同其间的分隔符）还原为前缀——因此前缀本身
// 可以合法地包含分隔符。
func separatePrefix(u UXID) (UXID, error) {
	idx := strings.LastIndex(u.str, Delimiter)
	if idx < 0 {
		u.Encoded = u.str
		return u, nil
	}
	body := u.str[idx+len(Delimiter):]
	if body == "" {
		return UXID{}, fmt.Errorf("%w: %q", ErrEmptyBody, u.str)
	}
	u.Prefix = u.str[:idx]
	u.Encoded = body
	return u, nil
}

// separateEncoded 在固定偏移 10 处切分编码体为时间戳段与随机段。
func separateEncoded(u UXID) (UXID, error) {
	if len(u.Encoded) < TimeEncodedLen {
		return UXID{}, fmt.Errorf("%w: body %q has %d characters, need at least %d",
			ErrBodyTooShort, u.Encoded, len(u.Encoded), TimeEncodedLen)
	}
	u.TimeEncoded = u.Encoded[:TimeEncodedLen]
	u.RandEncoded = u.Encoded[TimeEncodedLen:]
	return u, nil
}

// decodeTime 解码时间戳段。
func decodeTime(u UXID) (UXID, error) {
	t, err := unpackTime(u.TimeEncoded)
	if err != nil {
		return UXID{}, err
	}
	u.Time = int64(t)
	return u, nil
}

// markDecodeUnsupported 将随机后缀相关字段标记为解码哨兵。
//
// 编码体中没有随机字节数或校验信息，后缀长度本身不足以推断字节数，
// 因此这些字段被明确标记为不可还原，而不是 null 或猜测值。此阶段永不失败。
func markDecodeUnsupported(u UXID) (UXID, error) {
	u.Rand = nil
	u.RandSize = RandSizeUnsupported
	u.Size = SizeDecodeUnsupported
	return u, nil
}
