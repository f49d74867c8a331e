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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/sortkit/pkg/common/moerr"
	"github.com/matrixorigin/sortkit/pkg/container/page"
	"github.com/matrixorigin/sortkit/pkg/container/types"
	"github.com/matrixorigin/sortkit/pkg/container/vector"
	"github.com/matrixorigin/sortkit/pkg/sort"
)

func objectivePage(t *testing.T, f1, f2 []float64) *page.Page {
	t.Helper()
	pg := page.New([]string{"f1", "f2"})
	v1 := vector.New(types.New(types.T_float64))
	vector.AppendFixed(v1, f1...)
	v2 := vector.New(types.New(types.T_float64))
	vector.AppendFixed(v2, f2...)
	pg.Vecs[0] = v1
	pg.Vecs[1] = v2
	return pg
}

func minMinOpts() sort.Options {
	return sort.Options{Keys: []sort.KeySpec{
		{Name: "f1", Sense: sort.SenseMinimize},
		{Name: "f2", Sense: sort.SenseMinimize},
	}}
}

func TestRankPage(t *testing.T) {
	pg := objectivePage(t, []float64{1, 2, 3, 2}, []float64{5, 3, 1, 2})
	require.NoError(t, RankPage(context.Background(), pg, minMinOpts()))

	ranks := vector.MustFixedCol[int32](pg.Vector(RankColumn))
	require.Equal(t, []int32{0, 0, 0, 1}, ranks)

	// (2,3) is the only dominated point, it lands last
	f1 := vector.MustFixedCol[float64](pg.Vector("f1"))
	f2 := vector.MustFixedCol[float64](pg.Vector("f2"))
	require.Equal(t, 2.0, f1[3])
	require.Equal(t, 3.0, f2[3])

	crowd := vector.MustFixedCol[float64](pg.Vector(CrowdingDistanceColumn))
	require.Len(t, crowd, 4)

	// no *Violation inputs: the synthesized column is all zeros
	vio := vector.MustFixedCol[float64](pg.Vector(ConstraintsViolationColumn))
	require.Equal(t, []float64{0, 0, 0, 0}, vio)
}

func TestRankPageMaximize(t *testing.T) {
	pg := objectivePage(t, []float64{1, 2}, []float64{1, 2})
	opts := sort.Options{Keys: []sort.KeySpec{
		{Name: "f1", Sense: sort.SenseMaximize},
		{Name: "f2", Sense: sort.SenseMaximize},
	}}
	require.NoError(t, RankPage(context.Background(), pg, opts))
	// (2,2) dominates (1,1) when both objectives are maximized
	f1 := vector.MustFixedCol[float64](pg.Vector("f1"))
	require.Equal(t, []float64{2, 1}, f1)
	ranks := vector.MustFixedCol[int32](pg.Vector(RankColumn))
	require.Equal(t, []int32{0, 1}, ranks)
}

func TestRankPageConstraintSynthesis(t *testing.T) {
	pg := objectivePage(t, []float64{1, 100}, []float64{1, 100})
	cv := vector.New(types.New(types.T_float64))
	// row 0 breaches a constraint, row 1 does not
	vector.AppendFixed(cv, -2.5, 0.5)
	pg.SetVector("LimitViolation", cv)

	require.NoError(t, RankPage(context.Background(), pg, minMinOpts()))

	// the feasible row wins despite far worse objectives
	ranks := vector.MustFixedCol[int32](pg.Vector(RankColumn))
	require.Equal(t, []int32{0, 1}, ranks)
	f1 := vector.MustFixedCol[float64](pg.Vector("f1"))
	require.Equal(t, []float64{100, 1}, f1)

	// negated sum of negative components, positive components ignored
	vio := vector.MustFixedCol[float64](pg.Vector(ConstraintsViolationColumn))
	require.Equal(t, []float64{0, 2.5}, vio)
}

func TestRankPageExistingViolationColumn(t *testing.T) {
	pg := objectivePage(t, []float64{1, 2}, []float64{2, 1})
	cv := vector.New(types.New(types.T_float64))
	vector.AppendFixed(cv, 0.0, 3.0)
	pg.SetVector(ConstraintsViolationColumn, cv)
	attrs := len(pg.Attrs)

	require.NoError(t, RankPage(context.Background(), pg, minMinOpts()))

	// the existing column is used as-is, not re-synthesized
	require.Equal(t, attrs+2, len(pg.Attrs))
	ranks := vector.MustFixedCol[int32](pg.Vector(RankColumn))
	require.Equal(t, []int32{0, 1}, ranks)
}

func TestRankPageTooFewObjectives(t *testing.T) {
	pg := objectivePage(t, []float64{1}, []float64{2})
	err := RankPage(context.Background(), pg, sort.Options{Keys: []sort.KeySpec{
		{Name: "f1", Sense: sort.SenseMinimize},
	}})
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrBadSortConfig))
}

func TestRankPageMissingSense(t *testing.T) {
	pg := objectivePage(t, []float64{1}, []float64{2})
	err := RankPage(context.Background(), pg, sort.Options{Keys: []sort.KeySpec{
		{Name: "f1", Sense: sort.SenseMinimize},
		{Name: "f2"},
	}})
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrBadSortConfig))
}

func TestRankPageStringObjective(t *testing.T) {
	pg := page.New([]string{"f1", "name"})
	v1 := vector.New(types.New(types.T_float64))
	vector.AppendFixed(v1, 1.0)
	nv := vector.New(types.New(types.T_varchar))
	vector.AppendStrings(nv, "a")
	pg.Vecs[0] = v1
	pg.Vecs[1] = nv

	err := RankPage(context.Background(), pg, sort.Options{Keys: []sort.KeySpec{
		{Name: "f1", Sense: sort.SenseMinimize},
		{Name: "name", Sense: sort.SenseMaximize},
	}})
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrUnsupportedType))
}

func TestRankPageUnknownObjective(t *testing.T) {
	pg := objectivePage(t, []float64{1}, []float64{2})
	err := RankPage(context.Background(), pg, sort.Options{Keys: []sort.KeySpec{
		{Name: "f1", Sense: sort.SenseMinimize},
		{Name: "missing", Sense: sort.SenseMinimize},
	}})
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrUnknownSortKey))
}
