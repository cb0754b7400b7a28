package loshu_test

import (
	"testing"

	"github.com/katalvlaran/numerology/loshu"
)

func BenchmarkAnalyze(b *testing.B) {
	d := loshu.Date{Day: 23, Month: 11, Year: 1990}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = loshu.Analyze(d)
	}
}
