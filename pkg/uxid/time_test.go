package uxid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackTime_KnownVectors(t *testing.T) {
	tests := []struct {
		name string
		time uint64
		want string
	}{
		{"zero", 0, "0000000000"},
		{"one", 1, "0000000001"},
		{"max", MaxTime, "7ZZZZZZZZZ"},
		{"single 5-bit group", 31, "000000000Z"},
		{"second group carry", 32, "0000000010"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := packTime(tt.time)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPackTime_FixedWidth(t *testing.T) {
	// 合法域内任意时间戳编码恒为 10 字符，与数值大小无关
	for _, ms := range []uint64{0, 1, 255, 1 << 20, 1 << 40, 3_000_000_000_000, MaxTime} {
		s, err := packTime(ms)
		require.NoError(t, err)
		assert.Len(t, s, TimeEncodedLen, "time %d", ms)
	}
}

func TestPackTime_Overflow(t *testing.T) {
	_, err := packTime(MaxTime + 1)
	assert.ErrorIs(t, err, ErrTimeOverflow)

	_, err = packTime(1 << 63)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestUnpackTime_RoundTrip(t *testing.T) {
	// 编码与解码在整个合法域上互为精确逆运算（边界与代表值抽样）
	for _, ms := range []uint64{0, 1, 7, 8, 31, 32, 1023, 1 << 24, 1 << 45, 3_000_000_000_000, MaxTime - 1, MaxTime} {
		s, err := packTime(ms)
		require.NoError(t, err)
		got, err := unpackTime(s)
		require.NoError(t, err)
		assert.Equal(t, ms, got, "round trip of %d", ms)
	}
}

func TestUnpackTime_CaseFold(t *testing.T) {
	s, err := packTime(3_000_000_000_000)
	require.NoError(t, err)

	lower := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		lower[i] = c
	}

	got, err := unpackTime(string(lower))
	require.NoError(t, err)
	assert.Equal(t, uint64(3_000_000_000_000), got)
}

func TestUnpackTime_InvalidSymbol(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"excluded letter I", "000000000I"},
		{"excluded letter L", "00000000L0"},
		{"excluded letter O", "0000000O00"},
		{"excluded letter U", "000000U000"},
		{"delimiter", "00000_0000"},
		{"punctuation", "!000000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := unpackTime(tt.input)
			assert.ErrorIs(t, err, ErrInvalidSymbol)
		})
	}
}

func TestUnpackTime_LeadingSymbolOverflow(t *testing.T) {
	// 首字符按 3 位字段解释，数值 8-31 的字符虽在字母表内但超出 48 位域
	for _, s := range []string{"8000000000", "Z000000000", "A000000000"} {
		_, err := unpackTime(s)
		assert.ErrorIs(t, err, ErrTimeOverflow, "input %q", s)
	}
}

func TestUnpackTime_WrongLength(t *testing.T) {
	for _, s := range []string{"", "012345678", "01234567890"} {
		_, err := unpackTime(s)
		require.Error(t, err, "input %q", s)
		assert.False(t, errors.Is(err, ErrInvalidSymbol))
	}
}
