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

package check

import (
	"context"
	"fmt"
	"math/rand"
	"slices"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ajroetker/go-quicksort/qsort"
	"github.com/ajroetker/go-quicksort/qsort/contrib/workerpool"
)

var (
	// ErrInvalidConfig is returned when a Config cannot be run.
	ErrInvalidConfig = errors.New("invalid check config")

	// ErrPropertyViolated is returned when at least one trial failed.
	ErrPropertyViolated = errors.New("sort property violated")
)

// Config controls a check run.
type Config struct {
	Trials   int       `yaml:"trials"`
	MaxLen   int       `yaml:"max_len"`
	Seed     int64     `yaml:"seed"`
	Workers  int       `yaml:"workers"`
	Patterns []Pattern `yaml:"patterns"`

	// Sort is the function under test. Nil means qsort.Sort.
	Sort func([]int) `yaml:"-"`
}

// DefaultConfig returns the settings used when none are given.
func DefaultConfig() Config {
	return Config{
		Trials:   1000,
		MaxLen:   1000,
		Seed:     1,
		Patterns: slices.Clone(AllPatterns),
	}
}

// Validate reports the first problem with c, if any.
func (c Config) Validate() error {
	if c.Trials <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "trials must be positive, got %d", c.Trials)
	}
	if c.MaxLen < 0 {
		return errors.Wrapf(ErrInvalidConfig, "max_len must not be negative, got %d", c.MaxLen)
	}
	if len(c.Patterns) == 0 {
		return errors.Wrap(ErrInvalidConfig, "no patterns")
	}
	for _, p := range c.Patterns {
		if _, err := ParsePattern(string(p)); err != nil {
			return err
		}
	}
	return nil
}

// Failure describes one failed trial.
type Failure struct {
	Trial   int
	Pattern Pattern
	Len     int
	Reason  string
}

func (f Failure) String() string {
	return fmt.Sprintf("trial %d (%s, len %d): %s", f.Trial, f.Pattern, f.Len, f.Reason)
}

// Report summarizes a check run.
type Report struct {
	Trials    int
	Elements  int
	ByPattern map[Pattern]int
	Failures  []Failure
}

// Run executes cfg.Trials trials on a worker pool. Trial i uses seed
// cfg.Seed+i, so a run is reproducible regardless of worker count.
//
// A partial report is returned alongside any error.
func Run(ctx context.Context, cfg Config, logger *zap.Logger) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sortFn := cfg.Sort
	if sortFn == nil {
		sortFn = qsort.Sort[[]int]
	}

	pool := workerpool.New(cfg.Workers)
	defer pool.Close()

	logger.Info("starting check",
		zap.Int("trials", cfg.Trials),
		zap.Int("max_len", cfg.MaxLen),
		zap.Int64("seed", cfg.Seed),
		zap.Int("workers", pool.NumWorkers()))

	var (
		mu     sync.Mutex
		report = &Report{ByPattern: make(map[Pattern]int)}
	)
	err := pool.Each(ctx, cfg.Trials, func(i int) {
		pattern := cfg.Patterns[i%len(cfg.Patterns)]
		rng := rand.New(rand.NewSource(cfg.Seed + int64(i)))
		n := rng.Intn(cfg.MaxLen + 1)

		data, err := Generate(pattern, n, rng)
		if err != nil {
			// Validate already rejected unknown patterns.
			panic(err)
		}
		reason := runTrial(data, sortFn)

		mu.Lock()
		defer mu.Unlock()
		report.Trials++
		report.Elements += n
		report.ByPattern[pattern]++
		if reason != "" {
			f := Failure{Trial: i, Pattern: pattern, Len: n, Reason: reason}
			report.Failures = append(report.Failures, f)
			logger.Warn("trial failed",
				zap.Int("trial", i),
				zap.String("pattern", string(pattern)),
				zap.Int("len", n),
				zap.String("reason", reason))
		}
	})
	if err != nil {
		return report, errors.Wrapf(err, "check interrupted after %d trials", report.Trials)
	}

	slices.SortFunc(report.Failures, func(a, b Failure) int { return a.Trial - b.Trial })
	logger.Info("check finished",
		zap.Int("trials", report.Trials),
		zap.Int("elements", report.Elements),
		zap.Int("failures", len(report.Failures)))

	if len(report.Failures) > 0 {
		return report, errors.Wrapf(ErrPropertyViolated, "%d of %d trials failed", len(report.Failures), report.Trials)
	}
	return report, nil
}

// runTrial sorts data in place and returns why the result is wrong, or "" if
// it is correct.
func runTrial(data []int, sortFn func([]int)) string {
	want := slices.Clone(data)
	slices.Sort(want)

	sortFn(data)
	if !qsort.IsSorted(data) {
		return "output is not sorted"
	}
	if !slices.Equal(data, want) {
		return "output is not a permutation of the input"
	}

	once := slices.Clone(data)
	sortFn(data)
	if !slices.Equal(once, data) {
		return "sorting sorted output changed it"
	}
	return ""
}
