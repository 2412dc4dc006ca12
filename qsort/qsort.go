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

import "cmp"

// LessFunc reports whether a must be ordered strictly before b.
type LessFunc[E any] func(a, b E) bool

// Less implements Comparator.
func (f LessFunc[E]) Less(a, b E) bool {
	return f(a, b)
}

// Comparator is the single-method form of an ordering predicate.
type Comparator[E any] interface {
	Less(a, b E) bool
}

// Reverse returns a predicate ordering elements in the opposite direction.
func Reverse[E any](less func(a, b E) bool) LessFunc[E] {
	return func(a, b E) bool {
		return less(b, a)
	}
}

// Sort sorts s in ascending order. NaNs are ordered before any other value.
func Sort[S ~[]E, E cmp.Ordered](s S) {
	Quicksort(s, cmp.Less[E])
}

// SortFunc sorts s in place so that no element is ordered by less before the
// element preceding it.
func SortFunc[S ~[]E, E any](s S, less LessFunc[E]) {
	Quicksort(s, less)
}

// SortBy sorts s in place using c as the ordering.
func SortBy[S ~[]E, E any](s S, c Comparator[E]) {
	Quicksort(s, c.Less)
}

// Quicksort sorts s in place. Slices of length 0 or 1 are left untouched.
//
// Each call partitions s around its middle element and recurses on the
// sub-slices on either side of the pivot, which are disjoint and exclude the
// pivot itself.
func Quicksort[S ~[]E, E any](s S, less func(a, b E) bool) {
	if len(s) <= 1 {
		return
	}
	k := Partition(s, less)
	Quicksort(s[:k], less)
	Quicksort(s[k+1:], less)
}

// Partition rearranges s around the element at len(s)/2 and returns that
// element's final index k. Afterwards every element of s[:k] is ordered
// strictly before s[k] and no element of s[k+1:] is.
//
// s must hold at least two elements.
func Partition[S ~[]E, E any](s S, less func(a, b E) bool) int {
	last := len(s) - 1
	mid := len(s) / 2
	s[mid], s[last] = s[last], s[mid]

	i := 0
	for j := 0; j < last; j++ {
		if less(s[j], s[last]) {
			s[i], s[j] = s[j], s[i]
			i++
		}
	}
	s[i], s[last] = s[last], s[i]
	return i
}
