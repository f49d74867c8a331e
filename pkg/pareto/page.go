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

package pareto

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/matrixorigin/sortkit/pkg/common/moerr"
	"github.com/matrixorigin/sortkit/pkg/container/page"
	"github.com/matrixorigin/sortkit/pkg/container/types"
	"github.com/matrixorigin/sortkit/pkg/container/vector"
	"github.com/matrixorigin/sortkit/pkg/logutil"
	"github.com/matrixorigin/sortkit/pkg/sort"
)

const (
	// RankColumn and CrowdingDistanceColumn are synthesized on every
	// ranked page.
	RankColumn             = "Rank"
	CrowdingDistanceColumn = "CrowdingDistance"
	// ConstraintsViolationColumn is synthesized unless the page
	// already carries it.
	ConstraintsViolationColumn = "ConstraintsViolation"
	// violationSuffix is the naming convention for constraint
	// columns: any column named *Violation contributes its negative
	// components to the synthesized violation sum.
	violationSuffix = "Violation"
)

// RankPage ranks one page's rows in objective space and reorders the
// page by ascending rank, then descending crowding distance.  The
// Rank, CrowdingDistance and (if absent) ConstraintsViolation columns
// are synthesized before the reorder so they travel with their rows.
//
// Configuration errors (fewer than two objective keys, a non-numeric
// objective column) surface before any row is touched.
func RankPage(ctx context.Context, pg *page.Page, opts sort.Options) error {
	specs := opts.Keys
	if len(specs) < 2 {
		return moerr.NewBadSortConfig(ctx, "pareto mode needs at least two objective keys, got %d", len(specs))
	}

	rows := pg.RowCount()
	objs := make([][]float64, len(specs))
	minimize := make([]bool, len(specs))
	for k, spec := range specs {
		if spec.Sense == sort.SenseNone {
			return moerr.NewBadSortConfig(ctx, "objective key '%s' has no minimize/maximize sense", spec.Name)
		}
		idx := pg.ColumnIndex(spec.Name)
		if idx < 0 {
			return moerr.NewUnknownSortKey(ctx, spec.Name)
		}
		vec := pg.Vecs[idx]
		if !vec.Typ.Oid.Numeric() {
			return moerr.NewUnsupportedType(ctx, vec.Typ.String())
		}
		objs[k] = numericColumn(vec)
		minimize[k] = spec.Sense == sort.SenseMinimize
	}

	violation, synthesized := constraintViolations(pg, rows)

	pop := &Population{
		Individuals: make([]Individual, rows),
		Minimize:    minimize,
	}
	for i := 0; i < rows; i++ {
		point := make([]float64, len(specs))
		for k := range specs {
			point[k] = objs[k][i]
		}
		pop.Individuals[i] = Individual{
			Objectives:          point,
			ConstraintViolation: violation[i],
		}
	}
	fronts := pop.Rank()

	rankVec := vector.New(types.New(types.T_int32))
	crowdVec := vector.New(types.New(types.T_float64))
	for i := 0; i < rows; i++ {
		vector.AppendFixed(rankVec, pop.Individuals[i].Rank)
		vector.AppendFixed(crowdVec, pop.Individuals[i].CrowdDistance)
	}
	pg.SetVector(RankColumn, rankVec)
	pg.SetVector(CrowdingDistanceColumn, crowdVec)
	if synthesized {
		vioVec := vector.New(types.New(types.T_float64))
		vector.AppendFixed(vioVec, violation...)
		pg.SetVector(ConstraintsViolationColumn, vioVec)
	}

	order := pop.Order()
	if err := sort.Apply(ctx, pg, order); err != nil {
		return err
	}

	logutil.Debug("page ranked",
		zap.Int("rows", rows),
		zap.Int("objectives", len(specs)),
		zap.Int("fronts", len(fronts)))
	return nil
}

// constraintViolations returns the per-row violation scalar.  An
// existing ConstraintsViolation column wins; otherwise the violation
// is synthesized from every column named *Violation, negating the sum
// of their negative components so a violated constraint yields a
// positive violation and untouched constraints yield zero (feasible).
func constraintViolations(pg *page.Page, rows int) (violation []float64, synthesized bool) {
	if vec := pg.Vector(ConstraintsViolationColumn); vec != nil && vec.Typ.Oid.Numeric() {
		return numericColumn(vec), false
	}
	violation = make([]float64, rows)
	for i, attr := range pg.Attrs {
		if !strings.HasSuffix(attr, violationSuffix) || attr == ConstraintsViolationColumn {
			continue
		}
		if !pg.Vecs[i].Typ.Oid.Numeric() {
			continue
		}
		col := numericColumn(pg.Vecs[i])
		for r := 0; r < rows; r++ {
			if col[r] < 0 {
				violation[r] -= col[r]
			}
		}
	}
	return violation, true
}

// numericColumn widens any numeric column into float64 objective
// values.
func numericColumn(vec *vector.Vector) []float64 {
	switch col := vec.Col.(type) {
	case []int16:
		return widen(col)
	case []int32:
		return widen(col)
	case []int64:
		return widen(col)
	case []uint16:
		return widen(col)
	case []uint32:
		return widen(col)
	case []uint64:
		return widen(col)
	case []float32:
		return widen(col)
	case []float64:
		out := make([]float64, len(col))
		copy(out, col)
		return out
	}
	return nil
}

type number interface {
	~int16 | ~int32 | ~int64 | ~uint16 | ~uint32 | ~uint64 | ~float32
}

func widen[T number](col []T) []float64 {
	out := make([]float64, len(col))
	for i, v := range col {
		out[i] = float64(v)
	}
	return out
}
