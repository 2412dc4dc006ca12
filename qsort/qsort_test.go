// Copyright 2025 go-quicksort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package qsort

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func intLess(a, b int) bool { return a < b }

// sameElements reports whether a and b hold the same multiset of values.
func sameElements[E comparable](a, b []E) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[E]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
		if counts[v] < 0 {
			return false
		}
	}
	return true
}

func TestQuicksort(t *testing.T) {
	tests := []struct {
		name string
		data []int
		want []int
	}{
		{"empty", []int{}, []int{}},
		{"single", []int{42}, []int{42}},
		{"sorted", []int{1, 2, 3, 4, 5}, []int{1, 2, 3, 4, 5}},
		{"reverse", []int{5, 4, 3, 2, 1}, []int{1, 2, 3, 4, 5}},
		{"random", []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}, []int{1, 1, 2, 3, 3, 4, 5, 5, 5, 6, 9}},
		{"duplicates", []int{5, 2, 5, 3, 1, 2}, []int{1, 2, 2, 3, 5, 5}},
		{"negative", []int{-5, -2, -4, -1, -3}, []int{-5, -4, -3, -2, -1}},
		{"pair", []int{2, 1}, []int{1, 2}},
		{"allSame", []int{7, 7, 7, 7}, []int{7, 7, 7, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Quicksort(tt.data, intLess)
			if diff := cmp.Diff(tt.want, tt.data); diff != "" {
				t.Errorf("Quicksort mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestQuicksortNil tests that a nil slice is accepted
func TestQuicksortNil(t *testing.T) {
	var data []int
	Quicksort(data, intLess)
	if data != nil {
		t.Errorf("Quicksort(nil) = %v, want nil", data)
	}
}

// TestQuicksortLargeDescending sorts 1000 descending integers.
func TestQuicksortLargeDescending(t *testing.T) {
	data := make([]int, 1000)
	want := make([]int, 1000)
	for i := range data {
		data[i] = 1000 - i
		want[i] = i + 1
	}
	Quicksort(data, intLess)
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("Quicksort(descending) mismatch (-want +got):\n%s", diff)
	}
}

// TestQuicksortAllEqualLarge exercises the linear-depth case where every
// partition puts the pivot first.
func TestQuicksortAllEqualLarge(t *testing.T) {
	data := make([]int, 2000)
	for i := range data {
		data[i] = 3
	}
	Quicksort(data, intLess)
	for i, v := range data {
		if v != 3 {
			t.Fatalf("data[%d] = %d, want 3", i, v)
		}
	}
}

type person struct {
	Name string
	Age  uint32
}

func TestQuicksortRecords(t *testing.T) {
	byAge := func(a, b person) bool { return a.Age < b.Age }

	t.Run("sorted", func(t *testing.T) {
		data := []person{{"Alice", 20}, {"Bob", 25}, {"Charlie", 30}}
		want := slices.Clone(data)
		Quicksort(data, byAge)
		if diff := cmp.Diff(want, data); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("random", func(t *testing.T) {
		data := []person{{"Alice", 30}, {"Bob", 25}, {"Charlie", 35}, {"David", 20}}
		want := []person{{"David", 20}, {"Bob", 25}, {"Alice", 30}, {"Charlie", 35}}
		Quicksort(data, byAge)
		if diff := cmp.Diff(want, data); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestQuicksortRandomSizes(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	sizes := []int{0, 1, 2, 3, 7, 8, 15, 16, 31, 32, 63, 64, 100, 256, 1000}
	for _, n := range sizes {
		data := make([]int, n)
		for i := range data {
			data[i] = rng.Intn(100) - 50
		}
		want := slices.Clone(data)
		slices.Sort(want)

		Quicksort(data, intLess)
		if !slices.Equal(data, want) {
			t.Errorf("Quicksort(random, n=%d) = %v, want %v", n, data, want)
		}
	}
}

// TestQuicksortIdempotent checks that re-sorting sorted output changes nothing.
func TestQuicksortIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	data := make([]int, 500)
	for i := range data {
		data[i] = rng.Intn(1000)
	}
	Quicksort(data, intLess)
	once := slices.Clone(data)
	Quicksort(data, intLess)
	if !slices.Equal(once, data) {
		t.Errorf("second Quicksort changed the order")
	}
}

// TestQuicksortInconsistentPredicate checks that a predicate which is not a
// strict weak ordering still yields a permutation of the input.
func TestQuicksortInconsistentPredicate(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	data := make([]int, 300)
	for i := range data {
		data[i] = rng.Intn(50)
	}
	orig := slices.Clone(data)
	Quicksort(data, func(a, b int) bool { return rng.Intn(2) == 0 })
	if !sameElements(orig, data) {
		t.Errorf("inconsistent predicate lost or duplicated elements")
	}
}

// TestQuicksortPredicatePanic checks that a predicate panic reaches the caller
// and leaves every element in the slice.
func TestQuicksortPredicatePanic(t *testing.T) {
	data := []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	orig := slices.Clone(data)

	calls := 0
	func() {
		defer func() {
			r := recover()
			if r != "boom" {
				t.Errorf("recover() = %v, want boom", r)
			}
		}()
		Quicksort(data, func(a, b int) bool {
			calls++
			if calls == 12 {
				panic("boom")
			}
			return a < b
		})
	}()

	if !sameElements(orig, data) {
		t.Errorf("data after panic = %v, not a permutation of %v", data, orig)
	}
}

func TestPartition(t *testing.T) {
	tests := []struct {
		name  string
		data  []int
		want  []int
		pivot int
	}{
		{"reverse", []int{5, 4, 3, 2, 1}, []int{1, 2, 3, 4, 5}, 2},
		{"maxPivot", []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}, []int{3, 1, 4, 1, 5, 5, 2, 6, 5, 3, 9}, 10},
		{"pair", []int{1, 2}, []int{1, 2}, 1},
		{"ties", []int{2, 2, 2}, []int{2, 2, 2}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := Partition(tt.data, intLess)
			if k != tt.pivot {
				t.Errorf("Partition returned %d, want %d", k, tt.pivot)
			}
			if diff := cmp.Diff(tt.want, tt.data); diff != "" {
				t.Errorf("Partition layout mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestPartitionInvariant checks the pivot split on random data.
func TestPartitionInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for n := 2; n < 64; n++ {
		data := make([]int, n)
		for i := range data {
			data[i] = rng.Intn(20)
		}
		orig := slices.Clone(data)
		pivotVal := data[n/2]

		k := Partition(data, intLess)
		if data[k] != pivotVal {
			t.Fatalf("n=%d: data[%d]=%d, want pivot %d", n, k, data[k], pivotVal)
		}
		for i := 0; i < k; i++ {
			if data[i] >= pivotVal {
				t.Errorf("n=%d: data[%d]=%d should be < pivot %d", n, i, data[i], pivotVal)
			}
		}
		for i := k + 1; i < n; i++ {
			if data[i] < pivotVal {
				t.Errorf("n=%d: data[%d]=%d should be >= pivot %d", n, i, data[i], pivotVal)
			}
		}
		if !sameElements(orig, data) {
			t.Errorf("n=%d: Partition is not a permutation", n)
		}
	}
}

func TestSort(t *testing.T) {
	floats := []float64{2.5, math.NaN(), -1, 0, math.Inf(1), math.Inf(-1)}
	Sort(floats)
	if !math.IsNaN(floats[0]) {
		t.Errorf("Sort should place NaN first, got %v", floats)
	}
	if want := []float64{math.Inf(-1), -1, 0, 2.5, math.Inf(1)}; !slices.Equal(floats[1:], want) {
		t.Errorf("Sort(floats)[1:] = %v, want %v", floats[1:], want)
	}

	words := []string{"pear", "apple", "fig", "banana"}
	Sort(words)
	if want := []string{"apple", "banana", "fig", "pear"}; !slices.Equal(words, want) {
		t.Errorf("Sort(words) = %v, want %v", words, want)
	}
}

type ages []person

func TestSortFuncNamedSlice(t *testing.T) {
	data := ages{{"Carol", 41}, {"Dan", 19}, {"Erin", 33}}
	SortFunc(data, func(a, b person) bool { return a.Age < b.Age })
	want := ages{{"Dan", 19}, {"Erin", 33}, {"Carol", 41}}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("SortFunc mismatch (-want +got):\n%s", diff)
	}
}

type byName struct{}

func (byName) Less(a, b person) bool { return a.Name < b.Name }

func TestSortBy(t *testing.T) {
	data := []person{{"Zoe", 1}, {"Adam", 2}, {"Mia", 3}}
	SortBy(data, byName{})
	want := []person{{"Adam", 2}, {"Mia", 3}, {"Zoe", 1}}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("SortBy mismatch (-want +got):\n%s", diff)
	}

	ints := []int{3, 1, 2}
	SortBy(ints, LessFunc[int](intLess))
	if !slices.Equal(ints, []int{1, 2, 3}) {
		t.Errorf("SortBy(LessFunc) = %v", ints)
	}
}

func TestReverse(t *testing.T) {
	data := []int{3, 1, 4, 1, 5, 9, 2, 6}
	SortFunc(data, Reverse(intLess))
	want := []int{9, 6, 5, 4, 3, 2, 1, 1}
	if !slices.Equal(data, want) {
		t.Errorf("SortFunc(Reverse) = %v, want %v", data, want)
	}
}

func TestIsSorted(t *testing.T) {
	tests := []struct {
		name string
		data []int
		want bool
	}{
		{"empty", []int{}, true},
		{"single", []int{1}, true},
		{"sorted", []int{1, 2, 3, 4, 5}, true},
		{"unsorted", []int{1, 3, 2, 4, 5}, false},
		{"reverse", []int{5, 4, 3, 2, 1}, false},
		{"equal", []int{3, 3, 3, 3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSorted(tt.data); got != tt.want {
				t.Errorf("IsSorted(%v) = %v, want %v", tt.data, got, tt.want)
			}
			if got := IsSortedFunc(tt.data, intLess); got != tt.want {
				t.Errorf("IsSortedFunc(%v) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}
