package kernels

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-sumbench/internal/cpu"
	"github.com/cwbudde/algo-sumbench/internal/kernels/registry"
)

func TestAllOrder(t *testing.T) {
	want := []string{"naive", "unrolled", "vectorized", "vectorized unrolled"}
	got := All()
	if len(got) != len(want) {
		t.Fatalf("All() returned %d kernels, want %d", len(got), len(want))
	}
	for i, k := range got {
		if k.Name != want[i] {
			t.Errorf("All()[%d].Name = %q, want %q", i, k.Name, want[i])
		}
		if k.Fn == nil {
			t.Errorf("All()[%d].Fn is nil", i)
		}
	}
}

func TestKernelsKnownSums(t *testing.T) {
	cases := []struct {
		name string
		n    int
		a    []int32
		want int32
	}{
		{name: "empty", n: 0, a: nil, want: 0},
		{name: "zero length of non-empty", n: 0, a: []int32{5, 6, 7}, want: 0},
		{name: "eight", n: 8, a: []int32{1, 2, 3, 4, 5, 6, 7, 8}, want: 36},
		{name: "seven", n: 7, a: []int32{1, 2, 3, 4, 5, 6, 7}, want: 28},
		{name: "prefix only", n: 5, a: []int32{1, 2, 3, 4, 5, 100, 100}, want: 15},
		{name: "negatives", n: 6, a: []int32{-1, -2, -3, 4, 5, 6}, want: 9},
	}

	for _, k := range All() {
		for _, tc := range cases {
			t.Run(k.Name+"/"+tc.name, func(t *testing.T) {
				if got := k.Fn(tc.n, tc.a); got != tc.want {
					t.Fatalf("%s(%d) = %d, want %d", k.Name, tc.n, got, tc.want)
				}
			})
		}
	}
}

func TestKernelsReferenceParity(t *testing.T) {
	for _, n := range paritySizes {
		a := randomInts(uint64(n)+1, n)
		want := Naive(n, a)
		for _, k := range All() {
			t.Run(k.Name+"/"+sizeStr(n), func(t *testing.T) {
				if got := k.Fn(n, a); got != want {
					t.Fatalf("%s = %d, want %d", k.Name, got, want)
				}
			})
		}
	}
}

// A prefix that stops mid-vector must not read or count the elements after n.
func TestKernelsTailExact(t *testing.T) {
	a := make([]int32, 64)
	for i := range a {
		a[i] = 1 << (i % 20)
	}
	for n := 0; n <= 40; n++ {
		want := Naive(n, a)
		for _, k := range All() {
			if got := k.Fn(n, a); got != want {
				t.Errorf("%s(n=%d) = %d, want %d", k.Name, n, got, want)
			}
		}
	}
}

func TestKernelsIdempotent(t *testing.T) {
	a := randomInts(99, 7777)
	for _, k := range All() {
		first := k.Fn(len(a), a)
		second := k.Fn(len(a), a)
		if first != second {
			t.Errorf("%s: %d then %d", k.Name, first, second)
		}
	}
}

func TestKernelsOverflowWraps(t *testing.T) {
	cases := []struct {
		name string
		fill int32
		n    int
		want int32
	}{
		// 7777 * (2^31 - 1) mod 2^32 = 2^31 - 7777
		{name: "max", fill: math.MaxInt32, n: 7777, want: math.MaxInt32 - 7776},
		// 7777 * -2^31 mod 2^32 = 2^31, i.e. MinInt32
		{name: "min", fill: math.MinInt32, n: 7777, want: math.MinInt32},
		// 8 * (2^31 - 1) mod 2^32 = -8
		{name: "max even", fill: math.MaxInt32, n: 8, want: -8},
	}

	for _, tc := range cases {
		a := make([]int32, tc.n)
		for i := range a {
			a[i] = tc.fill
		}
		for _, k := range All() {
			t.Run(tc.name+"/"+k.Name, func(t *testing.T) {
				if got := k.Fn(tc.n, a); got != tc.want {
					t.Fatalf("%s = %d, want %d", k.Name, got, tc.want)
				}
			})
		}
	}
}

func TestKernelsOutOfRangePanics(t *testing.T) {
	a := []int32{1, 2, 3}
	for _, k := range All() {
		t.Run(k.Name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("%s(4, len 3) did not panic", k.Name)
				}
			}()
			_ = k.Fn(4, a)
		})
	}
}

// Every implementation the host can execute must agree with Naive.
func TestRegisteredImplementationsParity(t *testing.T) {
	hw := cpu.DetectFeatures()
	entries := registry.Global.ListEntries()
	if len(entries) == 0 {
		t.Fatal("no implementations registered")
	}

	for _, e := range entries {
		if !cpu.Supports(hw, e.SIMDLevel) {
			t.Logf("skipping %s: %v not available", e.Name, e.SIMDLevel)
			continue
		}
		for _, n := range paritySizes {
			a := randomInts(uint64(n)*31+7, n)
			want := Naive(n, a)
			t.Run(e.Name+"/"+sizeStr(n), func(t *testing.T) {
				if got := e.Vectorized(a); got != want {
					t.Errorf("Vectorized = %d, want %d", got, want)
				}
				if got := e.VectorizedUnrolled(a); got != want {
					t.Errorf("VectorizedUnrolled = %d, want %d", got, want)
				}
			})
		}
	}
}

func TestForceGenericDispatch(t *testing.T) {
	a := randomInts(7, 7777)
	want := Naive(len(a), a)

	withFeatures(cpu.Features{ForceGeneric: true}, func() {
		if got := Implementation(); got != "generic" {
			t.Fatalf("Implementation() = %q, want generic", got)
		}
		if got := Vectorized(len(a), a); got != want {
			t.Errorf("Vectorized = %d, want %d", got, want)
		}
		if got := VectorizedUnrolled(len(a), a); got != want {
			t.Errorf("VectorizedUnrolled = %d, want %d", got, want)
		}
	})
}

func TestDetectedDispatch(t *testing.T) {
	resetDispatchForTest()
	defer resetDispatchForTest()

	want := "generic"
	switch hw := cpu.DetectFeatures(); {
	case cpu.Supports(hw, cpu.SIMDNEON) && hasEntry("neon"):
		want = "neon"
	case cpu.Supports(hw, cpu.SIMDSSE2) && hasEntry("sse2"):
		want = "sse2"
	}
	if got := Implementation(); got != want {
		t.Fatalf("Implementation() = %q, want %q", got, want)
	}
}

func hasEntry(name string) bool {
	for _, e := range registry.Global.ListEntries() {
		if e.Name == name {
			return true
		}
	}
	return false
}
