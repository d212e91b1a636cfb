package uxid

import "fmt"

// =============================================================================
// 时间戳编解码
// =============================================================================

const (
	// MaxTime 时间戳的最大合法值（2^48-1 毫秒）。
	MaxTime = 1<<48 - 1

	// TimeEncodedLen 时间戳编码后的固定字符数。
	// 48 bits = 3 bits + 9×5 bits，高位在前，因此对合法域内的
	// 任意时间戳，编码长度恒为 10，与数值大小无关。
	TimeEncodedLen = 10
)

// packTime 将 48 位毫秒时间戳编码为定宽 10 字符。
// 首字符承载最高 3 位（数值 0-7，字母表合法子集），
// 其余 9 个字符各承载 5 位，高位在前。
func packTime(t uint64) (string, error) {
	if t > MaxTime {
		return "", fmt.Errorf("%w: %d > %d", ErrTimeOverflow, t, uint64(MaxTime))
	}
	var buf [TimeEncodedLen]byte
	buf[0] = alphabet[(t>>45)&0x07]
	for i := 1; i < TimeEncodedLen; i++ {
		shift := uint(45 - i*5)
		buf[i] = alphabet[(t>>shift)&0x1F]
	}
	return string(buf[:]), nil
}

// unpackTime 将 10 字符的时间戳段还原为 48 位毫秒时间戳。
// 与 packTime 在整个合法域 [0, 2^48-1] 上互为精确逆运算。
//
// 首字符按 3 位字段解释：数值超过 7 的字符（如 '8'、'Z'）虽然在
// 字母表内，但对应的时间戳超出 48 位，返回 [ErrTimeOverflow]。
// 任何字母表之外的字符返回 [ErrInvalidSymbol]。
func unpackTime(s string) (uint64, error) {
	if len(s) != TimeEncodedLen {
		return 0, fmt.Errorf("%w: time segment must be %d characters, got %d",
			ErrBodyTooShort, TimeEncodedLen, len(s))
	}

	v := symbolValue(s[0])
	if v < 0 {
		return 0, fmt.Errorf("%w: %q at position 0", ErrInvalidSymbol, s[0])
	}
	if v > 7 {
		return 0, fmt.Errorf("%w: leading symbol %q", ErrTimeOverflow, s[0])
	}
	t := uint64(v)
	for i := 1; i < TimeEncodedLen; i++ {
		v := symbolValue(s[i])
		if v < 0 {
			return 0, fmt.Errorf("%w: %q at position %d", ErrInvalidSymbol, s[i], i)
		}
		t = t<<5 | uint64(v)
	}
	return t, nil
}
