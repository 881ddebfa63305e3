package strview

import (
	"bytes"
	"testing"
)

var benchHay = bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog "), 32)

func BenchmarkFind(b *testing.B) {
	v := Of(benchHay)
	needle := OfString("lazy dog")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if v.Find(needle) == NotFound {
			b.Fatal("needle missing")
		}
	}
}

func BenchmarkBytesIndexBaseline(b *testing.B) {
	needle := []byte("lazy dog")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if bytes.Index(benchHay, needle) == -1 {
			b.Fatal("needle missing")
		}
	}
}

func BenchmarkFoldFind(b *testing.B) {
	v := WithTraits[byte, ASCIIFold](benchHay)
	needle := OfStringTraits[ASCIIFold]("LAZY DOG")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if v.Find(needle) == NotFound {
			b.Fatal("needle missing")
		}
	}
}

func BenchmarkSubstrCompare(b *testing.B) {
	v := Of(benchHay)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sub, err := v.Substr(4, 5)
		if err != nil {
			b.Fatal(err)
		}
		if sub.Compare(OfString("quick")) != 0 {
			b.Fatal("mismatch")
		}
	}
}

func BenchmarkHash64(b *testing.B) {
	v := Of(benchHay)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = v.Hash64()
	}
}

func BenchmarkHash64UTF16(b *testing.B) {
	units := make([]uint16, 512)
	for i := range units {
		units[i] = uint16(i)
	}
	v := Of(units)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = v.Hash64()
	}
}
