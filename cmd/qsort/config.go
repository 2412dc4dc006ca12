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
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/ajroetker/go-quicksort/qsort/contrib/check"
)

const (
	defaultLogLevel = "warn"

	envLogLevel = "QSORT_LOG_LEVEL"
	envReverse  = "QSORT_REVERSE"
)

// Config is the on-disk configuration of the qsort command.
type Config struct {
	LogLevel string       `yaml:"log_level"`
	Type     string       `yaml:"type"`
	Reverse  bool         `yaml:"reverse"`
	Check    check.Config `yaml:"check"`
}

func defaultConfig() Config {
	return Config{
		LogLevel: defaultLogLevel,
		Type:     typeString,
		Check:    check.DefaultConfig(),
	}
}

func lookupEnv(key string) string {
	return os.Getenv(key)
}

// loadConfig starts from the defaults, overlays the file at path if path is
// not empty, then the environment.
func loadConfig(path string, getenv func(string) string) (Config, error) {
	cfg := defaultConfig()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrap(err, "reading config")
		}
		if err := yaml.UnmarshalStrict(raw, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "parsing config %s", path)
		}
	}
	applyEnv(&cfg, getenv)

	if !validType(cfg.Type) {
		return cfg, errors.Errorf("unknown value type %q", cfg.Type)
	}
	return cfg, nil
}

func applyEnv(cfg *Config, getenv func(string) string) {
	if v := getenv(envLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv(envReverse); v != "" {
		// Any non-empty value is true unless it parses as a false bool.
		b, err := strconv.ParseBool(v)
		cfg.Reverse = err != nil || b
	}
}
