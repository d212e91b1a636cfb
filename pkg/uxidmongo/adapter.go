package uxidmongo

import (
	"fmt"

	"github.com/omeyang/uxid/pkg/uxid"
)

// =============================================================================
// 存储类型适配器
// =============================================================================

// Type UXID 字段的存储类型适配器。
//
// 持有一个生成器与一组默认生成选项（如集合统一的前缀），
// Autogenerate 在写入路径上按需生成新 ID。
type Type struct {
	gen      *uxid.Generator
	defaults []uxid.GenOption
}

// NewType 创建存储类型适配器。
//
// gen 为 nil 时使用 uxid 包级默认生成器（真实时钟 + crypto/rand）。
// defaults 会在每次 Autogenerate 时置于调用方选项之前，
// 调用方传入的同名选项后应用、因此可覆盖默认值。
func NewType(gen *uxid.Generator, defaults ...uxid.GenOption) *Type {
	return &Type{gen: gen, defaults: defaults}
}

// Autogenerate 生成新的 UXID 字符串。
func (t *Type) Autogenerate(opts ...uxid.GenOption) (string, error) {
	merged := make([]uxid.GenOption, 0, len(t.defaults)+len(opts))
	merged = append(merged, t.defaults...)
	merged = append(merged, opts...)
	if t.gen != nil {
		return t.gen.Generate(merged...)
	}
	return uxid.Generate(merged...)
}

// =============================================================================
// Cast / Load / Dump
// =============================================================================

// Cast 将外部输入归一化为 UXID 字符串。
//
// 接受 string、[]byte、ID 或 nil：nil 返回 (nil, nil) 表示空值；
// 其余返回指向归一化字符串的指针。数字、布尔、结构体等
// 其他任何类型返回 [ErrInvalidCastInput]。
//
// 设计决策: 不校验字符串是否为合法 UXID。存储边界需要接受历史数据
// 与外部系统的任意字符串 ID，结构校验是应用层通过 uxid.Decode 的职责。
func Cast(v any) (*string, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case string:
		return &x, nil
	case []byte:
		s := string(x)
		return &s, nil
	case ID:
		s := string(x)
		return &s, nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrInvalidCastInput, v)
	}
}

// Load 将存储值转换为应用值。
// 存储表示与线上表示相同，恒等转换。
func Load(v string) string { return v }

// Dump 将应用值转换为存储值。
// 存储表示与线上表示相同，恒等转换。
func Dump(v string) string { return v }
