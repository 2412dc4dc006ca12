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

// Package check runs randomized property trials against qsort: every trial
// generates an input, sorts it, and verifies the result is ordered, is a
// permutation of the input, and is unchanged by a second sort.
package check

import (
	"math/rand"

	"github.com/pkg/errors"
)

// Pattern names an input shape.
type Pattern string

const (
	PatternRandom   Pattern = "random"
	PatternSorted   Pattern = "sorted"
	PatternReverse  Pattern = "reverse"
	PatternEqual    Pattern = "equal"
	PatternSawtooth Pattern = "sawtooth"
	PatternFew      Pattern = "few" // few distinct values
)

// AllPatterns lists every pattern Generate understands.
var AllPatterns = []Pattern{
	PatternRandom,
	PatternSorted,
	PatternReverse,
	PatternEqual,
	PatternSawtooth,
	PatternFew,
}

// ParsePattern returns the Pattern named s.
func ParsePattern(s string) (Pattern, error) {
	for _, p := range AllPatterns {
		if string(p) == s {
			return p, nil
		}
	}
	return "", errors.Wrapf(ErrInvalidConfig, "unknown pattern %q", s)
}

// Generate returns n values shaped by p.
func Generate(p Pattern, n int, rng *rand.Rand) ([]int, error) {
	data := make([]int, n)
	switch p {
	case PatternRandom:
		for i := range data {
			data[i] = rng.Intn(2*n+1) - n
		}
	case PatternSorted:
		for i := range data {
			data[i] = i
		}
	case PatternReverse:
		for i := range data {
			data[i] = n - i
		}
	case PatternEqual:
		v := rng.Int()
		for i := range data {
			data[i] = v
		}
	case PatternSawtooth:
		period := 1 + rng.Intn(16)
		for i := range data {
			data[i] = i % period
		}
	case PatternFew:
		for i := range data {
			data[i] = rng.Intn(4)
		}
	default:
		return nil, errors.Wrapf(ErrInvalidConfig, "unknown pattern %q", p)
	}
	return data, nil
}
