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
	"math/rand"
	"slices"
	"testing"
)

// TestSelect tests partial sorting
func TestSelect(t *testing.T) {
	ref := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	for k := range ref {
		data := slices.Clone(ref)
		rand.Shuffle(len(data), func(i, j int) { data[i], data[j] = data[j], data[i] })

		Select(data, k, intLess)

		if data[k] != ref[k] {
			t.Errorf("Select(k=%d): got %v, want %v", k, data[k], ref[k])
		}
	}
}

func TestSelectSplit(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	data := make([]int, 200)
	for i := range data {
		data[i] = rng.Intn(30)
	}
	want := slices.Clone(data)
	slices.Sort(want)

	for _, k := range []int{0, 1, 57, 100, 199} {
		work := slices.Clone(data)
		Select(work, k, intLess)
		if work[k] != want[k] {
			t.Errorf("Select(k=%d) = %d, want %d", k, work[k], want[k])
		}
		for i := 0; i < k; i++ {
			if work[i] > work[k] {
				t.Errorf("k=%d: work[%d]=%d ordered after %d", k, i, work[i], work[k])
			}
		}
		for i := k + 1; i < len(work); i++ {
			if work[i] < work[k] {
				t.Errorf("k=%d: work[%d]=%d ordered before %d", k, i, work[i], work[k])
			}
		}
	}
}

func TestSelectOutOfRange(t *testing.T) {
	data := []int{3, 2, 1}
	Select(data, -1, intLess)
	Select(data, 3, intLess)
	if !slices.Equal(data, []int{3, 2, 1}) {
		t.Errorf("out of range Select modified data: %v", data)
	}
}
