package uxid

import (
	"reflect"
	"testing"
)

// FuzzTimeRoundTrip 验证时间戳编解码在整个 48 位域上互为精确逆运算。
func FuzzTimeRoundTrip(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(1))
	f.Add(uint64(3_000_000_000_000))
	f.Add(uint64(MaxTime))
	f.Add(^uint64(0))

	f.Fuzz(func(t *testing.T, ms uint64) {
		ms &= MaxTime

		s, err := packTime(ms)
		if err != nil {
			t.Fatalf("packTime(%d): %v", ms, err)
		}
		if len(s) != TimeEncodedLen {
			t.Fatalf("packTime(%d) length %d, want %d", ms, len(s), TimeEncodedLen)
		}
		for i := 0; i < len(s); i++ {
			if symbolValue(s[i]) < 0 {
				t.Fatalf("packTime(%d) produced non-alphabet symbol %q", ms, s[i])
			}
		}

		got, err := unpackTime(s)
		if err != nil {
			t.Fatalf("unpackTime(%q): %v", s, err)
		}
		if got != ms {
			t.Fatalf("round trip of %d yielded %d", ms, got)
		}
	})
}

// FuzzDecode 验证任意输入下解码不 panic，且成功时不变式成立。
func FuzzDecode(f *testing.F) {
	f.Add("01BX5ZZKBKACTAV9WEVGEMMVRZ")
	f.Add("cus_01BX5ZZKBKACTAV9WEVGEMMVRZ")
	f.Add("multi_word_prefix_0000000000")
	f.Add("")
	f.Add("_")
	f.Add("pre_")
	f.Add("012345678")

	f.Fuzz(func(t *testing.T, s string) {
		u, err := Decode(s)
		if err != nil {
			// 失败时零值记录，不产出部分结果
			if !reflect.DeepEqual(u, UXID{}) {
				t.Fatalf("Decode(%q) returned partial record on error: %+v", s, u)
			}
			return
		}
		if u.String() != s {
			t.Fatalf("Decode(%q).String() = %q", s, u.String())
		}
		if len(u.TimeEncoded) != TimeEncodedLen {
			t.Fatalf("time segment length %d", len(u.TimeEncoded))
		}
		if u.Encoded != u.TimeEncoded+u.RandEncoded {
			t.Fatalf("body %q != %q + %q", u.Encoded, u.TimeEncoded, u.RandEncoded)
		}
		if u.Rand != nil || u.RandSize != RandSizeUnsupported || u.Size != SizeDecodeUnsupported {
			t.Fatalf("decode sentinels not set: %+v", u)
		}
	})
}

// FuzzEncodeBytes 验证随机后缀编码的长度公式与字母表闭包。
func FuzzEncodeBytes(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x00})
	f.Add([]byte{0xFF, 0xFF})
	f.Add([]byte{0x12, 0x34, 0x56, 0x78, 0x9A})

	f.Fuzz(func(t *testing.T, b []byte) {
		s := encodeBytes(b)
		if want := (len(b)*8 + 4) / 5; len(s) != want {
			t.Fatalf("encodeBytes(%d bytes) length %d, want %d", len(b), len(s), want)
		}
		for i := 0; i < len(s); i++ {
			if symbolValue(s[i]) < 0 {
				t.Fatalf("non-alphabet symbol %q", s[i])
			}
		}
	})
}
