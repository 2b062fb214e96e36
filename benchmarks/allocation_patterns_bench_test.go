package heapmgr_test

import (
	"fmt"
	"runtime"
	"testing"
	"unsafe"

	"github.com/pmanishd/heapmgr"
	"github.com/pmanishd/heapmgr/baseline"
)

// BenchmarkSmallAllocations tests small allocation patterns (8-64 bytes).
func BenchmarkSmallAllocations(b *testing.B) {
	sizes := []int{8, 16, 32, 64}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Heap_%dB", size), func(b *testing.B) {
			h := heapmgr.New()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				h.Free(h.Malloc(uintptr(size)))
			}
		})

		b.Run(fmt.Sprintf("PaddedBump_%dB", size), func(b *testing.B) {
			a := baseline.NewPaddedBump(64 * 1024)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				a.AllocBytes(size)
				if i%1000 == 999 {
					a.Reset()
				}
			}
		})

		b.Run(fmt.Sprintf("Builtin_%dB", size), func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = make([]byte, size)
			}
		})
	}
}

// BenchmarkMediumAllocations tests medium allocation patterns (128-1024 bytes).
func BenchmarkMediumAllocations(b *testing.B) {
	sizes := []int{128, 256, 512, 1024}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Heap_%dB", size), func(b *testing.B) {
			h := heapmgr.New()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				h.Free(h.Malloc(uintptr(size)))
			}
		})

		b.Run(fmt.Sprintf("PaddedBump_%dB", size), func(b *testing.B) {
			a := baseline.NewPaddedBump(64 * 1024)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				a.AllocBytes(size)
				if i%500 == 499 {
					a.Reset()
				}
			}
		})

		b.Run(fmt.Sprintf("Builtin_%dB", size), func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = make([]byte, size)
			}
		})
	}
}

// BenchmarkLargeAllocations tests large allocation patterns (2KB-64KB).
func BenchmarkLargeAllocations(b *testing.B) {
	sizes := []int{2048, 8192, 32768, 65536}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Heap_%dB", size), func(b *testing.B) {
			h := heapmgr.New()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				h.Free(h.Malloc(uintptr(size)))
			}
		})

		b.Run(fmt.Sprintf("PaddedBump_%dB", size), func(b *testing.B) {
			a := baseline.NewPaddedBump(128 * 1024)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				a.AllocBytes(size)
				if i%100 == 99 {
					a.Reset()
				}
			}
		})

		b.Run(fmt.Sprintf("Builtin_%dB", size), func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = make([]byte, size)
			}
		})
	}
}

// BenchmarkTypedAllocations tests allocation of various Go types.
func BenchmarkTypedAllocations(b *testing.B) {
	b.Run("BasicTypes", func(b *testing.B) {
		b.Run("Heap_int", func(b *testing.B) {
			h := heapmgr.New()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				p := heapmgr.Alloc[int](h)
				heapmgr.FreeValue(h, p)
			}
		})

		b.Run("PaddedBump_int", func(b *testing.B) {
			a := baseline.NewPaddedBump(64 * 1024)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				baseline.Alloc[int](a)
				if i%1000 == 999 {
					a.Reset()
				}
			}
		})

		b.Run("Builtin_int", func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = new(int)
			}
		})
	})

	type SmallStruct struct {
		A int32
		B int32
	}
	type MediumStruct struct {
		A, B, C, D int64
		E          [32]byte
	}
	type LargeStruct struct {
		A [256]byte
		B int64
		C string
		D []int
	}

	b.Run("Structs", func(b *testing.B) {
		b.Run("Heap_SmallStruct", func(b *testing.B) {
			h := heapmgr.New()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				p := heapmgr.Alloc[SmallStruct](h)
				h.Free(p)
			}
		})
		b.Run("Builtin_SmallStruct", func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = new(SmallStruct)
			}
		})

		b.Run("Heap_MediumStruct", func(b *testing.B) {
			h := heapmgr.New()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				p := heapmgr.Alloc[MediumStruct](h)
				h.Free(p)
			}
		})
		b.Run("Builtin_MediumStruct", func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = new(MediumStruct)
			}
		})

		b.Run("Heap_LargeStruct", func(b *testing.B) {
			h := heapmgr.New()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				p := heapmgr.Alloc[LargeStruct](h)
				h.Free(p)
			}
		})
		b.Run("Builtin_LargeStruct", func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = new(LargeStruct)
			}
		})
	})
}

// BenchmarkSliceAllocations tests slice allocation patterns.
func BenchmarkSliceAllocations(b *testing.B) {
	sizes := []int{10, 100, 1000, 10000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Heap_Slice_%d", size), func(b *testing.B) {
			h := heapmgr.New()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				s := heapmgr.AllocSlice[int](h, size)
				heapmgr.FreeValue(h, &s[0])
			}
		})

		b.Run(fmt.Sprintf("PaddedBump_Slice_%d", size), func(b *testing.B) {
			a := baseline.NewPaddedBump(1024 * 1024)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				baseline.AllocSlice[int](a, size)
				if i%100 == 99 {
					a.Reset()
				}
			}
		})

		b.Run(fmt.Sprintf("Builtin_Slice_%d", size), func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = make([]int, size)
			}
		})
	}
}

// BenchmarkBatchAllocations tests scenarios with many allocations followed
// by cleanup, simulating request processing.
func BenchmarkBatchAllocations(b *testing.B) {
	b.Run("ManySmallAllocs", func(b *testing.B) {
		b.Run("Heap", func(b *testing.B) {
			h := heapmgr.New()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				ptrs := make([]*byte, 100)
				for j := 0; j < 100; j++ {
					ptrs[j] = heapmgr.Alloc[byte](h)
				}
				for _, p := range ptrs {
					heapmgr.FreeValue(h, p)
				}
			}
		})

		b.Run("PaddedBump", func(b *testing.B) {
			a := baseline.NewPaddedBump(64 * 1024)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				for j := 0; j < 100; j++ {
					a.AllocBytes(64)
				}
				a.Reset()
			}
		})

		b.Run("Builtin", func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				objects := make([][]byte, 100)
				for j := 0; j < 100; j++ {
					objects[j] = make([]byte, 64)
				}
				if i%10 == 0 {
					runtime.GC()
				}
			}
		})
	})

	b.Run("BufferReuse", func(b *testing.B) {
		b.Run("Heap", func(b *testing.B) {
			h := heapmgr.New()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				for j := 0; j < 10; j++ {
					buf1 := h.Malloc(1024)
					buf2 := h.Malloc(2048)
					buf3 := h.Malloc(512)
					h.Free(buf1)
					h.Free(buf2)
					h.Free(buf3)
				}
			}
		})

		b.Run("PaddedBump", func(b *testing.B) {
			a := baseline.NewPaddedBump(1024 * 1024)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				for j := 0; j < 10; j++ {
					buf1 := a.AllocBytes(1024)
					buf2 := a.AllocBytes(2048)
					buf3 := a.AllocBytes(512)
					buf1[0] = byte(j)
					buf2[0] = byte(j)
					buf3[0] = byte(j)
				}
				a.Reset()
			}
		})

		b.Run("Builtin", func(b *testing.B) {
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				buffers := make([][]byte, 30)
				for j := 0; j < 10; j++ {
					buffers[j*3] = make([]byte, 1024)
					buffers[j*3+1] = make([]byte, 2048)
					buffers[j*3+2] = make([]byte, 512)
				}
				if i%5 == 0 {
					runtime.GC()
				}
			}
		})
	})
}

// BenchmarkGCPressure measures GC impact of each strategy.
func BenchmarkGCPressure(b *testing.B) {
	b.Run("HighGCPressure", func(b *testing.B) {
		b.Run("Heap", func(b *testing.B) {
			h := heapmgr.New()
			runtime.GC()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				ptrs := make([]unsafe.Pointer, 1000)
				for j := 0; j < 1000; j++ {
					ptrs[j] = h.Malloc(128)
				}
				for _, p := range ptrs {
					h.Free(p)
				}
			}
		})

		b.Run("Builtin", func(b *testing.B) {
			runtime.GC()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				objects := make([][]byte, 1000)
				for j := 0; j < 1000; j++ {
					objects[j] = make([]byte, 128)
				}
			}
		})
	})

	b.Run("LowGCPressure", func(b *testing.B) {
		b.Run("Heap", func(b *testing.B) {
			h := heapmgr.New()
			runtime.GC()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				h.Free(h.Malloc(64))
			}
		})

		b.Run("Builtin", func(b *testing.B) {
			runtime.GC()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = make([]byte, 64)
			}
		})
	})
}
