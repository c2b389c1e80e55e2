package md2html

import (
	"strings"
	"testing"
)

var benchDoc = strings.Repeat(`# Section

Some prose with *emphasis*, **strong text** and a [link](http://example.com/).

- item one
- item two
    - nested item

> A quote with ` + "`code`" + ` inside.

    indented code block

`, 10)

func BenchmarkTransform(b *testing.B) {
	eng := New()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = eng.Transform(benchDoc)
	}
}

func BenchmarkTransformParallel(b *testing.B) {
	eng := New()
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = eng.Transform(benchDoc)
		}
	})
}

func BenchmarkDetab(b *testing.B) {
	text := strings.Repeat("\tindented\tline with\ttabs\n", 200)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = detab(text)
	}
}

func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = New(WithStrictBoldItalic(true))
	}
}
