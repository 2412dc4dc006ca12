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

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-quicksort/qsort/contrib/check"
)

func newCheckCmd(a *app) *cobra.Command {
	var (
		trials   int
		maxLen   int
		seed     int64
		workers  int
		patterns []string
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run randomized sortedness and permutation checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg.Check
			flags := cmd.Flags()
			if flags.Changed("trials") {
				cfg.Trials = trials
			}
			if flags.Changed("max-len") {
				cfg.MaxLen = maxLen
			}
			if flags.Changed("seed") {
				cfg.Seed = seed
			}
			if flags.Changed("workers") {
				cfg.Workers = workers
			}
			if flags.Changed("patterns") {
				parsed, err := parsePatterns(patterns)
				if err != nil {
					return err
				}
				cfg.Patterns = parsed
			}
			return a.runCheck(cmd.Context(), cfg)
		},
	}

	def := check.DefaultConfig()
	flags := cmd.Flags()
	flags.IntVar(&trials, "trials", def.Trials, "Number of trials")
	flags.IntVar(&maxLen, "max-len", def.MaxLen, "Maximum input length per trial")
	flags.Int64Var(&seed, "seed", def.Seed, "Base random seed")
	flags.IntVar(&workers, "workers", 0, "Concurrent trials (default GOMAXPROCS)")
	flags.StringSliceVar(&patterns, "patterns", nil,
		"Input patterns ("+strings.Join(lo.Map(check.AllPatterns, func(p check.Pattern, _ int) string { return string(p) }), ",")+")")
	return cmd
}

// parsePatterns trims, deduplicates and validates pattern names.
func parsePatterns(names []string) ([]check.Pattern, error) {
	names = lo.Uniq(lo.Filter(lo.Map(names, func(s string, _ int) string {
		return strings.TrimSpace(s)
	}), func(s string, _ int) bool {
		return s != ""
	}))

	out := make([]check.Pattern, 0, len(names))
	for _, name := range names {
		p, err := check.ParsePattern(name)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (a *app) runCheck(ctx context.Context, cfg check.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	report, err := check.Run(ctx, cfg, a.log)
	if report != nil {
		fmt.Fprintf(a.stdout, "trials: %d, elements: %d, failures: %d\n",
			report.Trials, report.Elements, len(report.Failures))
		for _, f := range report.Failures {
			fmt.Fprintf(a.stdout, "  %s\n", f)
		}
	}
	return err
}
