package uxid

import (
	"fmt"
	"io"
)

// =============================================================================
// 随机后缀编码
// =============================================================================

// readRand 从随机源读取 n 个字节。
// 这是整条生成管线中唯一的副作用步骤（消耗熵）。
func readRand(src io.Reader, n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(src, b); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEntropyRead, err)
	}
	return b, nil
}

// encodeBytes 将字节串按 5 位分组编码为字母表字符，高位在前。
// 末尾不足 5 位的组在低位补零扩展（与标准 base32 一致），
// 输出长度为 ceil(len(b)*8/5)。
//
// 逆运算不存在：编码体中没有字节数或校验信息，
// 同一后缀长度可能对应多种字节数，因此解码随机后缀不被支持。
func encodeBytes(b []byte) string {
	out := make([]byte, 0, (len(b)*8+4)/5)
	var acc uint64
	var bits uint
	for _, c := range b {
		acc = acc<<8 | uint64(c)
		bits += 8
		for bits >= 5 {
			bits -= 5
			out = append(out, alphabet[(acc>>bits)&0x1F])
		}
	}
	if bits > 0 {
		out = append(out, alphabet[(acc<<(5-bits))&0x1F])
	}
	return string(out)
}
