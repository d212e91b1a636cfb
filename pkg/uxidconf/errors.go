package uxidconf

import (
	"errors"
	"fmt"

	"github.com/omeyang/uxid/pkg/uxid"
)

var (
	// ErrEmptyPath 配置文件路径为空。
	ErrEmptyPath = errors.New("uxidconf: empty config path")

	// ErrUnsupportedFormat 不支持的配置格式。
	// 仅支持 YAML（.yaml/.yml）与 JSON（.json）。
	ErrUnsupportedFormat = errors.New("uxidconf: unsupported format")

	// ErrLoadFailed 配置加载失败（文件读取或解析错误）。
	ErrLoadFailed = errors.New("uxidconf: load failed")

	// ErrUnmarshalFailed 配置反序列化失败。
	ErrUnmarshalFailed = errors.New("uxidconf: unmarshal failed")

	// ErrConflictingSize size 与 rand_size 同时出现。
	// 此错误包装了 uxid.ErrInvalidSizeOption，可以使用 errors.Is 检查任一错误。
	ErrConflictingSize = fmt.Errorf("uxidconf: size and rand_size are mutually exclusive: %w",
		uxid.ErrInvalidSizeOption)
)
