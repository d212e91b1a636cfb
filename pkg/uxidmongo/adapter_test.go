package uxidmongo

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/uxid/pkg/uxid"
)

func TestType_Autogenerate(t *testing.T) {
	typ := NewType(nil, uxid.WithPrefix("ord"))

	id, err := typ.Autogenerate()
	require.NoError(t, err)

	u, err := uxid.Decode(id)
	require.NoError(t, err)
	assert.Equal(t, "ord", u.Prefix)
}

func TestType_Autogenerate_CallerOverridesDefaults(t *testing.T) {
	gen, err := uxid.NewGenerator(
		uxid.WithClock(func() time.Time { return time.UnixMilli(0) }),
		uxid.WithEntropy(bytes.NewReader(make([]byte, 64))),
	)
	require.NoError(t, err)

	typ := NewType(gen, uxid.WithPrefix("ord"))

	// 调用方选项后应用，可覆盖默认前缀
	id, err := typ.Autogenerate(uxid.WithPrefix("inv"))
	require.NoError(t, err)

	u, err := uxid.Decode(id)
	require.NoError(t, err)
	assert.Equal(t, "inv", u.Prefix)
}

func TestType_Autogenerate_CallerOverridesDefaultSizeSelector(t *testing.T) {
	gen, err := uxid.NewGenerator(
		uxid.WithClock(func() time.Time { return time.UnixMilli(0) }),
		uxid.WithEntropy(bytes.NewReader(make([]byte, 64))),
	)
	require.NoError(t, err)

	// 默认值用预设、调用方用显式字节数，跨形式也必须覆盖成功
	typ := NewType(gen, uxid.WithSize(uxid.SizeMedium))

	id, err := typ.Autogenerate(uxid.WithRandSize(5))
	require.NoError(t, err)
	// 10 字符时间戳 + 8 字符随机段（5 字节）
	assert.Len(t, id, 18)
}

func TestType_Autogenerate_PropagatesCoreErrors(t *testing.T) {
	typ := NewType(nil, uxid.WithPrefix("bad_"))

	_, err := typ.Autogenerate()
	assert.ErrorIs(t, err, uxid.ErrInvalidPrefix)
}

func TestCast(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    string
		wantNil bool
		wantErr bool
	}{
		{"string", "cus_01BX5ZZKBKACTAV9WEVGEMMVRZ", "cus_01BX5ZZKBKACTAV9WEVGEMMVRZ", false, false},
		{"bytes", []byte("01BX5ZZKBK"), "01BX5ZZKBK", false, false},
		{"id type", ID("abc"), "abc", false, false},
		{"nil", nil, "", true, false},
		{"integer", 42, "", false, true},
		{"float", 3.14, "", false, true},
		{"bool", true, "", false, true},
		{"struct", struct{}{}, "", false, true},
		{"string pointer", new(string), "", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Cast(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCastInput)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestLoadDump_Identity(t *testing.T) {
	s := uxid.MustGenerate(uxid.WithPrefix("cus"))
	assert.Equal(t, s, Load(s))
	assert.Equal(t, s, Dump(s))
	assert.Equal(t, s, Load(Dump(s)))
}
