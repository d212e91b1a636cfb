package uxidmongo

import "errors"

var (
	// ErrInvalidCastInput 表示 Cast 收到了不支持的输入类型。
	// 只接受 string、[]byte、ID 或 nil，数字、布尔等其他类型一律拒绝。
	ErrInvalidCastInput = errors.New("uxidmongo: cast accepts only string, bytes or nil")

	// ErrInvalidBSONType 表示反序列化时遇到非字符串的 BSON 类型。
	ErrInvalidBSONType = errors.New("uxidmongo: expected BSON string")
)
