package uxid_test

import (
	"bytes"
	"fmt"
	"log"
	"time"

	"github.com/omeyang/uxid/pkg/uxid"
)

func Example_generate() {
	id, err := uxid.Generate(uxid.WithPrefix("cus"))
	if err != nil {
		log.Fatal(err)
	}
	// 默认尺寸下编码体 26 字符，加前缀与分隔符共 30 字符
	fmt.Printf("Has prefix: %v\n", id[:4] == "cus_")
	fmt.Printf("Length: %d\n", len(id))

	// Output:
	// Has prefix: true
	// Length: 30
}

func Example_deterministic() {
	// 注入固定时钟与固定随机源可获得确定性输出
	gen, err := uxid.NewGenerator(
		uxid.WithClock(func() time.Time { return time.UnixMilli(0) }),
		uxid.WithEntropy(bytes.NewReader(make([]byte, 10))),
	)
	if err != nil {
		log.Fatal(err)
	}

	id, err := gen.Generate(uxid.WithPrefix("ord"))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(id)

	// Output:
	// ord_00000000000000000000000000
}

func Example_decode() {
	u, err := uxid.Decode("cus_01BX5ZZKBKACTAV9WEVGEMMVRZ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Prefix: %s\n", u.Prefix)
	fmt.Printf("Time: %d\n", u.Time)
	// 随机后缀无法还原，相关字段携带解码哨兵
	fmt.Printf("RandSize recoverable: %v\n", u.RandSize != uxid.RandSizeUnsupported)

	// Output:
	// Prefix: cus
	// Time: 1508808576371
	// RandSize recoverable: false
}

func Example_sizes() {
	gen, err := uxid.NewGenerator(
		uxid.WithClock(func() time.Time { return time.UnixMilli(0) }),
		uxid.WithEntropy(bytes.NewReader(make([]byte, 64))),
	)
	if err != nil {
		log.Fatal(err)
	}

	for _, size := range []uxid.Size{uxid.SizeXSmall, uxid.SizeMedium, uxid.SizeXLarge} {
		u, err := gen.New(uxid.WithSize(size))
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s: %d bytes -> %d chars\n", size, u.RandSize, len(u.RandEncoded))
	}

	// Output:
	// xs: 2 bytes -> 4 chars
	// m: 10 bytes -> 16 chars
	// xl: 20 bytes -> 32 chars
}
