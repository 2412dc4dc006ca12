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

// Command qsort sorts values read from files or standard input, and runs
// randomized property checks against the qsort package.
//
// Usage:
//
//	qsort sort --type int numbers.txt           # one value per line on stdout
//	qsort sort --type string --reverse < words.txt
//	qsort check --trials 5000 --max-len 2000 --patterns random,reverse
//	qsort --config qsort.yaml check
//
// Settings come from, in increasing priority: built-in defaults, the YAML file
// named by --config, the QSORT_* environment variables, and flags.
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
