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

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/sortkit/pkg/common/moerr"
	"github.com/matrixorigin/sortkit/pkg/sort"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sort.toml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
only-unique-rows = true
provide-run-count = true
natural-string-order = true
stable = true

[[keys]]
name = "Step"
decreasing = true

[[keys]]
name = "Charge"
absolute = true

[[page-keys]]
name = "Pass"

[log]
level = "debug"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.True(t, cfg.OnlyUniqueRows)
	require.True(t, cfg.Stable)
	require.Equal(t, "debug", cfg.Log.Level)

	opts, err := cfg.Options(context.Background())
	require.NoError(t, err)
	require.Equal(t, []sort.KeySpec{
		{Name: "Step", Decreasing: true},
		{Name: "Charge", Absolute: true},
	}, opts.Keys)
	require.Equal(t, []sort.KeySpec{{Name: "Pass"}}, opts.PageKeys)
	require.True(t, opts.NaturalStringOrder)
	require.True(t, opts.ProvideRunCount)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestOptionsUnknownSense(t *testing.T) {
	cfg := &SortConfig{Keys: []KeyConfig{{Name: "f1", Sense: "smallest"}}}
	_, err := cfg.Options(context.Background())
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrBadSortConfig))
}

func TestOptionsUnnamedKey(t *testing.T) {
	cfg := &SortConfig{Keys: []KeyConfig{{Decreasing: true}}}
	_, err := cfg.Options(context.Background())
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrBadSortConfig))
}

func TestOptionsParetoValidation(t *testing.T) {
	cfg := &SortConfig{
		Pareto: true,
		Keys:   []KeyConfig{{Name: "f1", Sense: "minimize"}},
	}
	_, err := cfg.Options(context.Background())
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrBadSortConfig))

	cfg.Keys = append(cfg.Keys, KeyConfig{Name: "f2"})
	_, err = cfg.Options(context.Background())
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrBadSortConfig))

	cfg.Keys[1].Sense = "maximize"
	opts, err := cfg.Options(context.Background())
	require.NoError(t, err)
	require.Equal(t, sort.SenseMinimize, opts.Keys[0].Sense)
	require.Equal(t, sort.SenseMaximize, opts.Keys[1].Sense)
}
