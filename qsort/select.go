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

// Select rearranges s such that s[k] is the element that would be at that
// position if s were sorted by less. Nothing in s[:k] is ordered after s[k]
// and nothing in s[k+1:] is ordered before it. Out of range k is a no-op.
func Select[S ~[]E, E any](s S, k int, less LessFunc[E]) {
	if k < 0 || k >= len(s) {
		return
	}
	for len(s) > 1 {
		p := Partition(s, less)
		switch {
		case k < p:
			s = s[:p]
		case k > p:
			s = s[p+1:]
			k -= p + 1
		default:
			return
		}
	}
}
