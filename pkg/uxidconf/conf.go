package uxidconf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/omeyang/uxid/pkg/uxid"
)

// Format 定义配置文件格式。
type Format string

// 支持的配置格式。
const (
	// FormatYAML YAML 格式（推荐用于 K8s ConfigMap）。
	FormatYAML Format = "yaml"

	// FormatJSON JSON 格式。
	FormatJSON Format = "json"
)

// Defaults UXID 生成默认值。
type Defaults struct {
	// Prefix 默认前缀，空表示无前缀。
	Prefix string `koanf:"prefix"`

	// Size 命名尺寸预设名，与 RandSize 互斥。
	Size string `koanf:"size"`

	// RandSize 显式随机字节数，与 Size 互斥。0 表示未设置。
	RandSize int `koanf:"rand_size"`
}

// Load 从文件路径加载生成默认值。
// 根据文件扩展名自动检测格式（.yaml/.yml 或 .json）。
func Load(path string) (*Defaults, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	return LoadBytes(data, format)
}

// LoadBytes 从字节数据加载生成默认值。
// 需要显式指定格式，适用于 K8s ConfigMap 等场景。
// 空数据返回零值 Defaults（所有字段未设置）。
func LoadBytes(data []byte, format Format) (*Defaults, error) {
	parser, err := parserFor(format)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if len(data) > 0 {
		if err := k.Load(rawbytes.Provider(data), parser); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
		}
	}

	d := &Defaults{}
	if err := k.UnmarshalWithConf("", d, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnmarshalFailed, err)
	}

	// 形状校验：互斥选择器不允许同时出现。
	// 预设名合法性、字节数正数等语义校验留给 uxid 核心在生成时执行。
	if d.Size != "" && d.RandSize != 0 {
		return nil, ErrConflictingSize
	}
	return d, nil
}

// GenOptions 将默认值转换为 uxid 生成选项。
// 未设置的字段不产生选项，保持 uxid 核心自身的默认行为。
func (d *Defaults) GenOptions() []uxid.GenOption {
	var opts []uxid.GenOption
	if d.Prefix != "" {
		opts = append(opts, uxid.WithPrefix(d.Prefix))
	}
	if d.Size != "" {
		opts = append(opts, uxid.WithSize(uxid.Size(d.Size)))
	}
	if d.RandSize != 0 {
		opts = append(opts, uxid.WithRandSize(d.RandSize))
	}
	return opts
}

// detectFormat 根据文件扩展名检测配置格式。
func detectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// parserFor 返回格式对应的 koanf 解析器。
func parserFor(format Format) (koanf.Parser, error) {
	switch format {
	case FormatYAML:
		return yaml.Parser(), nil
	case FormatJSON:
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
