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

// Package qsort provides a generic, in-place quicksort driven by a caller
// supplied ordering predicate.
//
// # Algorithm
//
// Each step picks the middle element of the current sub-slice as the pivot,
// moves it to the end, and runs a single left-to-right (Lomuto) scan that
// gathers every element ordered strictly before the pivot at the front. The
// pivot is then swapped into place and both sides are sorted recursively.
// The two recursive calls receive disjoint sub-slices of the same backing
// array, so nothing is ever copied out.
//
// The sort is not stable. Elements that compare equal end up on the pivot's
// side in no particular order.
//
// # Predicates
//
// The predicate reports whether a must be ordered strictly before b. It must
// be a strict weak ordering for the result to be sorted. Inconsistent
// predicates still produce a permutation of the input, never an out of range
// access, but the order is unspecified. A panicking predicate propagates to
// the caller and leaves the slice partially permuted.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-quicksort/qsort"
//
//	func ByAge(people []Person) {
//	    qsort.SortFunc(people, func(a, b Person) bool { return a.Age < b.Age })
//	}
//
//	func Ascending(data []int) {
//	    qsort.Sort(data)
//	}
//
// # Performance
//
// Average cost is O(n log n) comparisons with O(log n) recursion depth. The
// pivot is always the midpoint, with no sampling or randomization, so
// adversarial inputs degrade to O(n²) comparisons and O(n) depth. This is a
// known limitation kept so that the output order among ties is reproducible.
package qsort
