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

package page

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/sortkit/pkg/container/types"
	"github.com/matrixorigin/sortkit/pkg/container/vector"
)

func testPage(t *testing.T) *Page {
	t.Helper()
	pg := New([]string{"x", "name"})
	xv := vector.New(types.New(types.T_int32))
	vector.AppendFixed(xv, int32(3), int32(1), int32(2))
	nv := vector.New(types.New(types.T_varchar))
	vector.AppendStrings(nv, "c", "a", "b")
	pg.Vecs[0] = xv
	pg.Vecs[1] = nv

	pv := vector.New(types.New(types.T_float64))
	vector.AppendFixed(pv, 0.5)
	pg.SetParameter("Step", pv)
	return pg
}

func TestPageLookup(t *testing.T) {
	pg := testPage(t)
	require.Equal(t, 3, pg.RowCount())
	require.Equal(t, 0, pg.ColumnIndex("x"))
	require.Equal(t, -1, pg.ColumnIndex("missing"))
	require.NotNil(t, pg.Vector("name"))
	require.Nil(t, pg.Vector("missing"))
	require.NotNil(t, pg.Parameter("Step"))
	require.Nil(t, pg.Parameter("missing"))
}

func TestPageSetVector(t *testing.T) {
	pg := testPage(t)
	rv := vector.New(types.New(types.T_int32))
	vector.AppendFixed(rv, int32(0), int32(0), int32(1))
	pg.SetVector("Rank", rv)
	require.Equal(t, []string{"x", "name", "Rank"}, pg.Attrs)

	// replacing an existing column keeps the schema
	rv2 := vector.New(types.New(types.T_int32))
	vector.AppendFixed(rv2, int32(1), int32(1), int32(0))
	pg.SetVector("Rank", rv2)
	require.Equal(t, 3, len(pg.Attrs))
	require.Equal(t, []int32{1, 1, 0}, vector.MustFixedCol[int32](pg.Vector("Rank")))
}

func TestPageShrink(t *testing.T) {
	pg := testPage(t)
	pg.Shrink([]int64{0, 2})
	require.Equal(t, 2, pg.RowCount())
	require.Equal(t, []int32{3, 2}, vector.MustFixedCol[int32](pg.Vecs[0]))
	bs := vector.MustBytes(pg.Vecs[1])
	require.Equal(t, "c", string(bs.Get(0)))
	require.Equal(t, "b", string(bs.Get(1)))
}

func TestPageCodecRoundTrip(t *testing.T) {
	pg := testPage(t)
	data, err := pg.MarshalBinary()
	require.NoError(t, err)

	got := new(Page)
	require.NoError(t, got.UnmarshalBinary(data))
	require.Equal(t, pg.Attrs, got.Attrs)
	require.Equal(t, 3, got.RowCount())
	require.Equal(t, []int32{3, 1, 2}, vector.MustFixedCol[int32](got.Vecs[0]))
	require.Equal(t, "a", string(vector.MustBytes(got.Vecs[1]).Get(1)))

	prm := got.Parameter("Step")
	require.NotNil(t, prm)
	require.Equal(t, []float64{0.5}, vector.MustFixedCol[float64](prm.Vec))
}
