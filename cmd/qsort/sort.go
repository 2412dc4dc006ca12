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
	"bufio"
	"cmp"
	"context"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-quicksort/qsort"
)

const (
	typeInt    = "int"
	typeFloat  = "float"
	typeString = "string"

	maxConcurrentReads = 8
)

func validType(t string) bool {
	return t == typeInt || t == typeFloat || t == typeString
}

func newSortCmd(a *app) *cobra.Command {
	var (
		valueType string
		reverse   bool
	)
	cmd := &cobra.Command{
		Use:   "sort [files...]",
		Short: "Sort whitespace-separated values and print one per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("type") {
				a.cfg.Type = valueType
			}
			if cmd.Flags().Changed("reverse") {
				a.cfg.Reverse = reverse
			}
			return a.runSort(cmd.Context(), args)
		},
	}
	cmd.Flags().StringVarP(&valueType, "type", "t", typeString, "Value type: int, float or string")
	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "Sort in descending order")
	return cmd
}

func (a *app) runSort(ctx context.Context, paths []string) error {
	tokens, err := a.readTokens(ctx, paths)
	if err != nil {
		return err
	}
	a.log.Debug("read input", zap.Int("values", len(tokens)), zap.Int("files", len(paths)))

	var lines []string
	switch a.cfg.Type {
	case typeInt:
		lines, err = sortTokens(tokens, func(s string) (int64, error) {
			return strconv.ParseInt(s, 10, 64)
		}, cmp.Less[int64], a.cfg.Reverse, func(v int64) string {
			return strconv.FormatInt(v, 10)
		})
	case typeFloat:
		lines, err = sortTokens(tokens, func(s string) (float64, error) {
			return strconv.ParseFloat(s, 64)
		}, cmp.Less[float64], a.cfg.Reverse, func(v float64) string {
			return strconv.FormatFloat(v, 'g', -1, 64)
		})
	case typeString:
		lines, err = sortTokens(tokens, func(s string) (string, error) {
			return s, nil
		}, cmp.Less[string], a.cfg.Reverse, func(v string) string {
			return v
		})
	default:
		return errors.Errorf("unknown value type %q", a.cfg.Type)
	}
	if err != nil {
		return err
	}

	w := bufio.NewWriter(a.stdout)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return errors.Wrap(err, "writing output")
		}
	}
	return errors.Wrap(w.Flush(), "writing output")
}

// readTokens returns the whitespace-separated tokens of every file in paths,
// in path order, or of stdin when paths is empty. Files are read concurrently.
func (a *app) readTokens(ctx context.Context, paths []string) ([]string, error) {
	if len(paths) == 0 {
		raw, err := io.ReadAll(a.stdin)
		if err != nil {
			return nil, errors.Wrap(err, "reading stdin")
		}
		return strings.Fields(string(raw)), nil
	}

	if ctx == nil {
		ctx = context.Background()
	}
	chunks := make([][]string, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			raw, err := os.ReadFile(path)
			if err != nil {
				return errors.Wrapf(err, "reading %s", path)
			}
			chunks[i] = strings.Fields(string(raw))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return lo.Flatten(chunks), nil
}

// sortTokens parses every token, sorts the values with qsort and formats them
// back to strings.
func sortTokens[E any](tokens []string, parse func(string) (E, error), less func(a, b E) bool, reverse bool, format func(E) string) ([]string, error) {
	values := make([]E, len(tokens))
	for i, tok := range tokens {
		v, err := parse(tok)
		if err != nil {
			return nil, errors.Wrapf(err, "value %d", i+1)
		}
		values[i] = v
	}

	if reverse {
		qsort.SortFunc(values, qsort.Reverse(less))
	} else {
		qsort.SortFunc(values, less)
	}

	return lo.Map(values, func(v E, _ int) string {
		return format(v)
	}), nil
}
