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

// Interface is implemented by index-addressed collections that are not Go
// slices. It mirrors sort.Interface.
type Interface interface {
	Len() int
	Less(i, j int) bool
	Swap(i, j int)
}

// SortInterface sorts data in place with the same pivot rule as Quicksort,
// working on [lo, hi) index ranges over the single backing collection.
func SortInterface(data Interface) {
	quicksortRange(data, 0, data.Len())
}

func quicksortRange(data Interface, lo, hi int) {
	if hi-lo <= 1 {
		return
	}
	k := PartitionInterface(data, lo, hi)
	quicksortRange(data, lo, k)
	quicksortRange(data, k+1, hi)
}

// PartitionInterface partitions data[lo:hi] around its middle element and
// returns the pivot's final absolute index. hi-lo must be at least 2.
func PartitionInterface(data Interface, lo, hi int) int {
	last := hi - 1
	data.Swap(lo+(hi-lo)/2, last)

	i := lo
	for j := lo; j < last; j++ {
		if data.Less(j, last) {
			data.Swap(i, j)
			i++
		}
	}
	data.Swap(i, last)
	return i
}
