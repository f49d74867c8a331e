// Copyright 2021 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads and validates the host-facing engine
// configuration.
package config

import (
	"context"

	"github.com/BurntSushi/toml"

	"github.com/matrixorigin/sortkit/pkg/common/moerr"
	"github.com/matrixorigin/sortkit/pkg/logutil"
	"github.com/matrixorigin/sortkit/pkg/sort"
)

// KeyConfig is one sort key as written in the configuration.  Sense is
// empty for row-mode keys, or minimize/maximize in Pareto mode.
type KeyConfig struct {
	Name       string `toml:"name"`
	Decreasing bool   `toml:"decreasing"`
	Absolute   bool   `toml:"absolute"`
	Sense      string `toml:"sense"`
}

// SortConfig is the engine configuration surface: the ordered key
// list plus the mode flags of the host contract.
type SortConfig struct {
	Keys []KeyConfig `toml:"keys"`

	OnlyUniqueRows     bool `toml:"only-unique-rows"`
	ProvideRunCount    bool `toml:"provide-run-count"`
	NaturalStringOrder bool `toml:"natural-string-order"`
	Stable             bool `toml:"stable"`

	// Pareto switches from row sorting to non-dominated ranking.
	Pareto bool `toml:"pareto"`

	// PageKeys name parameter-level keys ordering whole pages.
	PageKeys []KeyConfig `toml:"page-keys"`

	Log logutil.LogConfig `toml:"log"`
}

// Load reads a TOML configuration file.
func Load(path string) (*SortConfig, error) {
	var cfg SortConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func parseSense(ctx context.Context, s string) (sort.Sense, error) {
	switch s {
	case "":
		return sort.SenseNone, nil
	case "minimize":
		return sort.SenseMinimize, nil
	case "maximize":
		return sort.SenseMaximize, nil
	}
	return sort.SenseNone, moerr.NewBadSortConfig(ctx, "unknown objective sense '%s'", s)
}

func convertKeys(ctx context.Context, kcs []KeyConfig) ([]sort.KeySpec, error) {
	specs := make([]sort.KeySpec, len(kcs))
	for i, kc := range kcs {
		if kc.Name == "" {
			return nil, moerr.NewBadSortConfig(ctx, "sort key %d has no name", i)
		}
		sense, err := parseSense(ctx, kc.Sense)
		if err != nil {
			return nil, err
		}
		specs[i] = sort.KeySpec{
			Name:       kc.Name,
			Decreasing: kc.Decreasing,
			Absolute:   kc.Absolute,
			Sense:      sense,
		}
	}
	return specs, nil
}

// Options validates the configuration and converts it into engine
// options.  Pareto misconfiguration fails here, before any page is
// processed.
func (cfg *SortConfig) Options(ctx context.Context) (sort.Options, error) {
	var opts sort.Options
	keys, err := convertKeys(ctx, cfg.Keys)
	if err != nil {
		return opts, err
	}
	pageKeys, err := convertKeys(ctx, cfg.PageKeys)
	if err != nil {
		return opts, err
	}
	if cfg.Pareto {
		if len(keys) < 2 {
			return opts, moerr.NewBadSortConfig(ctx, "pareto mode needs at least two objective keys, got %d", len(keys))
		}
		for _, k := range keys {
			if k.Sense == sort.SenseNone {
				return opts, moerr.NewBadSortConfig(ctx, "objective key '%s' has no minimize/maximize sense", k.Name)
			}
		}
	}
	opts = sort.Options{
		Keys:               keys,
		OnlyUniqueRows:     cfg.OnlyUniqueRows,
		ProvideRunCount:    cfg.ProvideRunCount,
		NaturalStringOrder: cfg.NaturalStringOrder,
		Stable:             cfg.Stable,
		PageKeys:           pageKeys,
	}
	return opts, nil
}
