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

// Package sort is the row sorting engine: multi-key order computation
// over a page's columns, in-place permutation of all parallel column
// vectors, and duplicate-run compression.  Everything runs
// synchronously against one fully materialized page; the engine issues
// no I/O of its own apart from the page orderer's spill.
package sort

import (
	"github.com/matrixorigin/sortkit/pkg/compare"
	"github.com/matrixorigin/sortkit/pkg/container/types"
)

// Sense is the objective direction of a key in Pareto mode.
type Sense int8

const (
	SenseNone Sense = iota
	SenseMinimize
	SenseMaximize
)

func (s Sense) String() string {
	switch s {
	case SenseMinimize:
		return "minimize"
	case SenseMaximize:
		return "maximize"
	}
	return "none"
}

// KeySpec names one sort key as configured by the host.
type KeySpec struct {
	Name string
	// Decreasing inverts the key's order (row mode).
	Decreasing bool
	// Absolute compares numeric values by magnitude (row mode).
	Absolute bool
	// Sense marks the key as a Pareto objective (Pareto mode).
	Sense Sense
}

// SortKey is a KeySpec resolved against one page's schema.  Column
// indices may differ between pages sharing a schema family, so
// resolution runs once per page.
type SortKey struct {
	Spec   KeySpec
	ColIdx int
	Typ    types.Type
	Cmp    compare.Compare
}

// Options is the host-provided configuration surface of the engine.
type Options struct {
	Keys []KeySpec

	// OnlyUniqueRows drops all but one row of every run of key-equal
	// rows after sorting; ProvideRunCount additionally emits the
	// IdenticalCount column.
	OnlyUniqueRows  bool
	ProvideRunCount bool

	// NaturalStringOrder switches string keys to the numeric-aware
	// total order.
	NaturalStringOrder bool

	// Stable uses a stable sort so ties keep their input order.  The
	// default is a non-stable sort with arbitrary tie resolution.
	Stable bool

	// PageKeys are parameter-level keys ordering whole pages.
	PageKeys []KeySpec
}

// IdenticalCountColumn is the synthesized run-length column.
const IdenticalCountColumn = "IdenticalCount"

// swapWidthLimit is the widest fixed-size element the row swapper
// accepts.  A wider scalar type added later fails loudly instead of
// corrupting rows.
const swapWidthLimit = 16
