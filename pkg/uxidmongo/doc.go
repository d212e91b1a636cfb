// Package uxidmongo 提供 UXID 在 MongoDB 存储边界上的类型适配。
//
// # 设计理念
//
// UXID 的存储表示与线上表示相同（同一个字符串），因此适配层没有独立逻辑，
// 只暴露四个存储钩子：
//   - Autogenerate：写入时自动生成 ID（委托 uxid 生成器）
//   - Cast：外部输入归一化，只接受字符串/字节串/空值，拒绝其他任何类型
//   - Load / Dump：存储值与应用值的恒等转换
//
// 另外提供 [ID] 类型：实现 bson.ValueMarshaler / bson.ValueUnmarshaler，
// 使 UXID 字段在文档序列化时以 BSON 字符串存取。
//
// # 快速开始
//
//	type Order struct {
//	    ID      uxidmongo.ID `bson:"_id"`
//	    Amount  int64        `bson:"amount"`
//	}
//
//	typ := uxidmongo.NewType(nil, uxid.WithPrefix("ord"))
//	id, err := typ.Autogenerate()
//	if err != nil {
//	    return err
//	}
//	order := Order{ID: uxidmongo.ID(id), Amount: 100}
//
// # 校验边界
//
// Cast 只做类型归一化，不校验字符串是否为合法 UXID——存储层接受历史数据
// 与外部系统写入的任意字符串 ID。需要结构校验时使用 [ID.UXID] 解码。
package uxidmongo
