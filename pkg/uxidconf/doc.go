// Package uxidconf 提供 UXID 生成默认值的配置加载能力。
//
// # 设计理念
//
// uxid 核心包只接受代码内的函数式选项；uxidconf 负责把 YAML/JSON
// 配置文件（或 K8s ConfigMap 的字节数据）翻译为 uxid.GenOption 列表，
// 便于应用把前缀与随机尺寸等策略外置。
//
// 配置结构：
//
//	prefix: cus        # 可选前缀
//	size: m            # 命名尺寸预设（与 rand_size 互斥）
//	rand_size: 10      # 显式随机字节数（与 size 互斥）
//
// # 快速开始
//
//	defaults, err := uxidconf.Load("uxid.yaml")
//	if err != nil {
//	    return err
//	}
//	id, err := uxid.Generate(defaults.GenOptions()...)
//
// 从字节数据加载（K8s ConfigMap 等场景）：
//
//	defaults, err := uxidconf.LoadBytes(data, uxidconf.FormatJSON)
//
// # 校验边界
//
// 加载器只做形状校验：size 与 rand_size 同时出现即拒绝
// （包装 uxid.ErrInvalidSizeOption，可用 errors.Is 检查）。
// 预设名是否合法、字节数是否为正等语义校验留给 uxid 核心在生成时执行，
// 保证两条入口（代码选项与配置文件）的错误行为一致。
package uxidconf
