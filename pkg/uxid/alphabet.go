package uxid

// =============================================================================
// 字母表
// =============================================================================

// alphabet Crockford Base32 字母表：数字 0-9 加大写字母，
// 排除 I/L/O/U（避免与 1/1/0/V 视觉混淆）。
// 下标即 5 位组的数值（0-31），编码方向 value → symbol。
var alphabet = [32]byte{
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9',
	'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'J', 'K',
	'M', 'N', 'P', 'Q', 'R', 'S', 'T', 'V', 'W', 'X',
	'Y', 'Z',
}

// symbolValues 解码查表：字符码 → 数值，非法字符为 -1。
// 静态查表取代逐字符分支链，解码 O(1)。
// 小写字母映射到与大写相同的数值（解码大小写折叠；编码只输出大写）。
var symbolValues [256]int8

func init() {
	for i := range symbolValues {
		symbolValues[i] = -1
	}
	for v, c := range alphabet {
		symbolValues[c] = int8(v)
		if c >= 'A' && c <= 'Z' {
			symbolValues[c+('a'-'A')] = int8(v)
		}
	}
}

// symbolValue 返回字符对应的 5 位数值，非法字符返回 -1。
func symbolValue(c byte) int8 {
	return symbolValues[c]
}
