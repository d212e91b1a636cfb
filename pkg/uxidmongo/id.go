package uxidmongo

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/omeyang/uxid/pkg/uxid"
)

// ID UXID 字符串的 BSON 适配类型。
//
// 在文档序列化时以 BSON 字符串存取，存储表示与线上表示相同。
type ID string

// String 返回 ID 的字符串形式。
func (id ID) String() string { return string(id) }

// UXID 将 ID 解码为结构化记录。
// 解码语义与 uxid.Decode 相同（随机后缀字段携带解码哨兵）。
func (id ID) UXID() (uxid.UXID, error) {
	return uxid.Decode(string(id))
}

// MarshalBSONValue 实现 bson.ValueMarshaler，序列化为 BSON 字符串。
func (id ID) MarshalBSONValue() (byte, []byte, error) {
	typ, data, err := bson.MarshalValue(string(id))
	if err != nil {
		return 0, nil, fmt.Errorf("uxidmongo: marshal %q: %w", string(id), err)
	}
	return byte(typ), data, nil
}

// UnmarshalBSONValue 实现 bson.ValueUnmarshaler，从 BSON 字符串反序列化。
// 非字符串类型返回 [ErrInvalidBSONType]。
func (id *ID) UnmarshalBSONValue(typ byte, data []byte) error {
	rv := bson.RawValue{Type: bson.Type(typ), Value: data}
	s, ok := rv.StringValueOK()
	if !ok {
		return fmt.Errorf("%w: got %s", ErrInvalidBSONType, bson.Type(typ))
	}
	*id = ID(s)
	return nil
}
