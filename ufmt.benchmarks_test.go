package ufmt

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

// =============================================================================
// FORMATTING BENCHMARKS
// =============================================================================

func BenchmarkFormat_Positional(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Format("Hello {0}, you have {1} messages", "Alice", 5)
	}
}

func BenchmarkFormat_PositionalSpecs(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Format("Score: {0:.2f}, ID: {1:08d}, Mask: {2:x}", 87.543, 42, 255)
	}
}

func BenchmarkFormat_ManyArguments(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Format("{0} {1} {2} {3} {4} {5} {6} {7}",
			"a", 1, 2.5, true, "b", 6, 7.5, false)
	}
}

func BenchmarkFormatStrict_CleanTemplate(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = FormatStrict("Hello {0}", "Alice")
	}
}

func BenchmarkFormatStrict_WithIssues(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = FormatStrict("Hello {0} and {missing}", "Alice")
	}
}

// =============================================================================
// CONTEXT BENCHMARKS
// =============================================================================

func BenchmarkLocalContext_Format(b *testing.B) {
	ctx := NewLocalContext()
	ctx.SetVar("user", "Alice")
	ctx.SetVar("role", "admin")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ctx.Format("User {user} has role {role}")
	}
}

func BenchmarkLocalContext_FormatSpecs(b *testing.B) {
	ctx := NewLocalContext()
	ctx.SetVar("score", 87.543)
	ctx.SetVar("count", 42)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ctx.Format("{score:.1f} of {count:08d}")
	}
}

func BenchmarkLocalContext_SetVar(b *testing.B) {
	ctx := NewLocalContext()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ctx.SetVar("key", i)
	}
}

func BenchmarkLocalContext_SetVar_Formatter(b *testing.B) {
	ctx := NewLocalContext()
	ctx.SetFormatter(FormatterFor[int](func(n int) string {
		return fmt.Sprintf("#%d", n)
	}))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ctx.SetVar("key", i)
	}
}

func BenchmarkSharedContext_Format(b *testing.B) {
	ctx := NewSharedContext(WithOwnerDesignation())
	ctx.SetVar("user", "Alice")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ctx.Format("User {user}")
	}
}

func BenchmarkSharedContext_GetVar(b *testing.B) {
	ctx := NewSharedContext(WithOwnerDesignation())
	ctx.SetVar("key", "value")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ctx.GetVar("key")
	}
}

func BenchmarkRegistry_GetOrCreate(b *testing.B) {
	r := NewContextRegistry()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.GetOrCreate(fmt.Sprintf("ctx%d", i%100))
	}
}

// =============================================================================
// CONCURRENT ACCESS BENCHMARKS
// =============================================================================

func BenchmarkSharedContext_Concurrent(b *testing.B) {
	ctx := NewSharedContext(WithOwnerDesignation())
	ctx.SetVar("base", "shared")

	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			switch i % 3 {
			case 0:
				ctx.SetVar("mine", i)
			case 1:
				_, _ = ctx.GetVar("base")
			case 2:
				_ = ctx.Format("{base} {mine}")
			}
			i++
		}
	})
}

func BenchmarkParallelScaling(b *testing.B) {
	ctx := NewSharedContext(WithOwnerDesignation())
	ctx.SetVar("region", "eu-west")

	for _, goroutines := range []int{1, 2, 4, 8, 16} {
		b.Run(fmt.Sprintf("Goroutines-%d", goroutines), func(b *testing.B) {
			var wg sync.WaitGroup
			iterations := b.N / goroutines
			if iterations == 0 {
				iterations = 1
			}

			b.ResetTimer()
			for g := 0; g < goroutines; g++ {
				wg.Add(1)
				go func(gid int) {
					defer wg.Done()
					for i := 0; i < iterations; i++ {
						_ = ctx.Format("{0} in {region}", gid*iterations+i)
					}
				}(g)
			}
			wg.Wait()
		})
	}
}

// =============================================================================
// STRINGIFICATION BENCHMARKS
// =============================================================================

func BenchmarkStringify_String(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Stringify("hello")
	}
}

func BenchmarkStringify_Int(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Stringify(42)
	}
}

func BenchmarkStringify_Float(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Stringify(87.543)
	}
}

func BenchmarkStringify_Fallback(b *testing.B) {
	value := point{X: 1, Y: 2}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Stringify(value)
	}
}

// =============================================================================
// TEMPLATE SIZE BENCHMARKS
// =============================================================================

func BenchmarkFormat_SmallTemplate(b *testing.B) {
	benchmarkTemplateSize(b, 100)
}

func BenchmarkFormat_MediumTemplate(b *testing.B) {
	benchmarkTemplateSize(b, 1000)
}

func BenchmarkFormat_LargeTemplate(b *testing.B) {
	benchmarkTemplateSize(b, 10000)
}

func benchmarkTemplateSize(b *testing.B, size int) {
	ctx := NewLocalContext()
	ctx.SetVar("x", "value")

	// Build a template with roughly the target size
	var sb strings.Builder
	sb.WriteString("Start: {0}\n")
	for sb.Len() < size {
		sb.WriteString("Line of content with {x} variable.\n")
	}
	sb.WriteString("End: {1}")
	template := sb.String()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ctx.Format(template, "Alice", 42)
	}
}

// =============================================================================
// MEMORY ALLOCATION BENCHMARKS
// =============================================================================

func BenchmarkFormat_Allocs(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Format("Hello {0}! Welcome to {1}.", "Alice", "ufmt")
	}
}

func BenchmarkLocalContext_Format_Allocs(b *testing.B) {
	ctx := NewLocalContext()
	ctx.SetVar("user", "Alice")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ctx.Format("Hello {user}!")
	}
}
