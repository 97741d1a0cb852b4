// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand_test

import (
	"bytes"
	"math"
	"slices"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/citadel-station/smallrand/rand"
)

func TestDrawKnownAnswers(t *testing.T) {
	newG := func() *rand.Generator { return rand.New(mustSeed(t, "awawa")) }

	g := newG()
	var u32n []uint32
	for i := 0; i < 8; i++ {
		u32n = append(u32n, g.Uint32n(10))
	}
	if diff := cmp.Diff([]uint32{4, 6, 0, 1, 9, 7, 1, 1}, u32n); diff != "" {
		t.Errorf("Uint32n(10) mismatch (-want +got):\n%s", diff)
	}

	g = newG()
	var u64n []uint64
	for i := 0; i < 3; i++ {
		u64n = append(u64n, g.Uint64n(1e18))
	}
	if diff := cmp.Diff([]uint64{433298913457088960, 15609609000643008, 154196994647787733}, u64n); diff != "" {
		t.Errorf("Uint64n(1e18) mismatch (-want +got):\n%s", diff)
	}

	g = newG()
	if got := []int32{g.Int31(), g.Int31(), g.Int31()}; !slices.Equal(got, []int32{930502331, 1482904853, 33521380}) {
		t.Errorf("Int31 = %v", got)
	}

	g = newG()
	if got := []int64{g.Int63(), g.Int63()}; !slices.Equal(got, []int64{3996477081979671829, 143973231162767350}) {
		t.Errorf("Int63 = %v", got)
	}

	g = newG()
	if got := []float32{g.Float32(), g.Float32()}; !slices.Equal(got, []float32{0.43329888582229614, 0.6905313730239868}) {
		t.Errorf("Float32 = %v", got)
	}

	g = newG()
	if got := []float64{g.Float64(), g.Float64()}; !slices.Equal(got, []float64{0.43329891345708893, 0.015609609000642899}) {
		t.Errorf("Float64 = %v", got)
	}

	g = newG()
	var wide []int64
	for i := 0; i < 3; i++ {
		wide = append(wide, g.Int63Range(-1e12, 1e12))
	}
	if diff := cmp.Diff([]int64{-47165612703, -965674106798, -660917222834}, wide); diff != "" {
		t.Errorf("Int63Range(-1e12, 1e12) mismatch (-want +got):\n%s", diff)
	}
}

func TestBoundedInRange(t *testing.T) {
	g := rand.New(mustSeed(t, "bounds"))
	for _, n := range []uint32{1, 2, 3, 7, 10, 1 << 16, math.MaxInt32, 1<<31 + 1, math.MaxUint32} {
		for i := 0; i < 1000; i++ {
			if v := g.Uint32n(n); v >= n {
				t.Fatalf("Uint32n(%d) = %d", n, v)
			}
		}
	}
	for _, n := range []uint64{1, 3, 1 << 33, 1<<63 + 5, math.MaxUint64} {
		for i := 0; i < 1000; i++ {
			if v := g.Uint64n(n); v >= n {
				t.Fatalf("Uint64n(%d) = %d", n, v)
			}
		}
	}
	for _, r := range [][2]int64{
		{0, 1},
		{-10, 10},
		{math.MinInt32, math.MaxInt32},
		{-1 << 40, 1 << 40},
		{0, math.MaxInt64},
		{math.MinInt64, math.MaxInt64},
		{math.MaxInt64 - 3, math.MaxInt64},
	} {
		for i := 0; i < 1000; i++ {
			if v := g.Int63Range(r[0], r[1]); v < r[0] || v >= r[1] {
				t.Fatalf("Int63Range(%d, %d) = %d", r[0], r[1], v)
			}
		}
	}
	for _, r := range [][2]int32{{0, 1}, {-100, -50}, {math.MinInt32 / 2, math.MaxInt32 / 2}} {
		for i := 0; i < 1000; i++ {
			if v := g.Int31Range(r[0], r[1]); v < r[0] || v >= r[1] {
				t.Fatalf("Int31Range(%d, %d) = %d", r[0], r[1], v)
			}
		}
	}
	for i := 0; i < 1000; i++ {
		if v := g.Int31n(5); v < 0 || v >= 5 {
			t.Fatalf("Int31n(5) = %d", v)
		}
		if v := g.Int63n(1 << 45); v < 0 || v >= 1<<45 {
			t.Fatalf("Int63n(1<<45) = %d", v)
		}
		if v := g.Float32(); v < 0 || v >= 1 {
			t.Fatalf("Float32 = %v", v)
		}
		if v := g.Float64(); v < 0 || v >= 1 {
			t.Fatalf("Float64 = %v", v)
		}
		if v := g.Duration(time.Second, 2*time.Second); v < time.Second || v >= 2*time.Second {
			t.Fatalf("Duration(1s, 2s) = %v", v)
		}
		if v := g.DurationN(time.Minute); v < 0 || v >= time.Minute {
			t.Fatalf("DurationN(1m) = %v", v)
		}
	}
}

func TestEmptyRanges(t *testing.T) {
	g := rand.New(mustSeed(t, "empty"))
	if v := g.Uint32n(0); v != 0 {
		t.Errorf("Uint32n(0) = %d", v)
	}
	if v := g.Uint64n(0); v != 0 {
		t.Errorf("Uint64n(0) = %d", v)
	}
	if v := g.Int63Range(42, 42); v != 42 {
		t.Errorf("Int63Range(42, 42) = %d", v)
	}
	if v := g.Int31Range(-7, -7); v != -7 {
		t.Errorf("Int31Range(-7, -7) = %d", v)
	}
	if v := g.Duration(time.Hour, time.Hour); v != time.Hour {
		t.Errorf("Duration(1h, 1h) = %v", v)
	}
}

func TestRead(t *testing.T) {
	g := rand.New(mustSeed(t, "awawa"))
	buf := make([]byte, 11)
	n, err := g.Read(buf)
	if n != 11 || err != nil {
		t.Fatalf("Read = %d, %v", n, err)
	}
	want := []byte{0x2b, 0xaa, 0xc6, 0xb0, 0x76, 0xad, 0xec, 0x6e, 0xec, 0x6f, 0x3e}
	if !bytes.Equal(buf, want) {
		t.Errorf("Read = %x, want %x", buf, want)
	}
	if s := g.String(); s != "DC06BA3CA6F9E5943F19DF2FAFB37AC8" {
		t.Errorf("state after Read(11) = %s", s)
	}

	// A full chunk still consumes one extra draw.
	h := rand.New(mustSeed(t, "awawa"))
	h.Read(make([]byte, 8))
	if !h.DebugEqual(g) {
		t.Errorf("state after Read(8) = %v, want %v", h, g)
	}
}

func TestReadDrawCount(t *testing.T) {
	for _, n := range []int{0, 1, 7, 8, 9, 16, 100} {
		g := rand.New(mustSeed(t, "count"))
		ref := rand.New(mustSeed(t, "count"))
		g.Read(make([]byte, n))
		for i := 0; i < n/8+1; i++ {
			ref.Uint64()
		}
		if !g.DebugEqual(ref) {
			t.Errorf("Read(%d bytes) did not take %d draws", n, n/8+1)
		}
	}
}

func TestShuffle(t *testing.T) {
	g := rand.New(mustSeed(t, "awawa"))
	s := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	rand.Shuffle(g, s)
	if diff := cmp.Diff([]int{2, 8, 9, 7, 3, 5, 1, 0, 6, 4}, s); diff != "" {
		t.Errorf("Shuffle mismatch (-want +got):\n%s", diff)
	}

	// The swap-func form draws the same values.
	h := rand.New(mustSeed(t, "awawa"))
	u := []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}
	h.Shuffle(len(u), func(i, j int) { u[i], u[j] = u[j], u[i] })
	if diff := cmp.Diff([]string{"2", "8", "9", "7", "3", "5", "1", "0", "6", "4"}, u); diff != "" {
		t.Errorf("Generator.Shuffle mismatch (-want +got):\n%s", diff)
	}
}

func TestShufflePermutes(t *testing.T) {
	g := rand.New(mustSeed(t, "perm"))
	for n := 0; n <= 40; n++ {
		s := make([]int, n)
		for i := range s {
			s[i] = i % 5
		}
		orig := slices.Clone(s)
		before := g.Seed()
		rand.Shuffle(g, s)
		if n < 2 && g.Seed() != before {
			t.Errorf("Shuffle of %d elements drew values", n)
		}
		slices.Sort(s)
		slices.Sort(orig)
		if !slices.Equal(s, orig) {
			t.Errorf("Shuffle of %d elements is not a permutation: %v", n, s)
		}
	}

	type named []string
	ns := named{"a", "b", "c"}
	rand.Shuffle(g, ns)
	slices.Sort(ns)
	if !slices.Equal(ns, named{"a", "b", "c"}) {
		t.Errorf("Shuffle of named slice = %v", ns)
	}
}

func TestShuffleNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Shuffle(-1) did not panic")
		}
	}()
	rand.New(mustSeed(t, "neg")).Shuffle(-1, func(i, j int) {})
}
