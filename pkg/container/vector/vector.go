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

package vector

import (
	"fmt"

	"github.com/matrixorigin/sortkit/pkg/container/types"
)

// Vector represents one column: a typed buffer holding one value per
// row.  All columns of a page are parallel vectors of equal length.
type Vector struct {
	Typ types.Type
	// Col is the typed data slice: []int16, []int32, []int64,
	// []uint16, []uint32, []uint64, []float32, []float64 (also
	// longdouble), []byte (char) or *types.Bytes (varchar).
	Col any
}

func New(typ types.Type) *Vector {
	v := &Vector{Typ: typ}
	switch typ.Oid {
	case types.T_int16:
		v.Col = []int16{}
	case types.T_int32:
		v.Col = []int32{}
	case types.T_int64:
		v.Col = []int64{}
	case types.T_uint16:
		v.Col = []uint16{}
	case types.T_uint32:
		v.Col = []uint32{}
	case types.T_uint64:
		v.Col = []uint64{}
	case types.T_float32:
		v.Col = []float32{}
	case types.T_float64, types.T_longdouble:
		v.Col = []float64{}
	case types.T_char:
		v.Col = []byte{}
	case types.T_varchar:
		v.Col = &types.Bytes{}
	default:
		panic(fmt.Sprintf("vector.New: unexpected type %s", typ))
	}
	return v
}

func (v *Vector) Length() int {
	if bs, ok := v.Col.(*types.Bytes); ok {
		return bs.Count()
	}
	switch col := v.Col.(type) {
	case []int16:
		return len(col)
	case []int32:
		return len(col)
	case []int64:
		return len(col)
	case []uint16:
		return len(col)
	case []uint32:
		return len(col)
	case []uint64:
		return len(col)
	case []float32:
		return len(col)
	case []float64:
		return len(col)
	case []byte:
		return len(col)
	}
	return 0
}

// MustFixedCol returns the typed slice of a fixed-size vector.  The
// caller is responsible for matching T to v.Typ.
func MustFixedCol[T any](v *Vector) []T {
	return v.Col.([]T)
}

// MustBytes returns the var-length arena of a varchar vector.
func MustBytes(v *Vector) *types.Bytes {
	return v.Col.(*types.Bytes)
}

// AppendFixed appends values to a fixed-size vector.
func AppendFixed[T any](v *Vector, vals ...T) {
	v.Col = append(v.Col.([]T), vals...)
}

// AppendBytes appends string values to a varchar vector.
func AppendBytes(v *Vector, vals ...[]byte) {
	v.Col.(*types.Bytes).Append(vals)
}

// AppendStrings appends string values to a varchar vector.
func AppendStrings(v *Vector, vals ...string) {
	bs := v.Col.(*types.Bytes)
	for _, s := range vals {
		bs.Append([][]byte{[]byte(s)})
	}
}

func swapFixed[T any](col []T, i, j int64) {
	col[i], col[j] = col[j], col[i]
}

// Swap exchanges the physical rows i and j.  Fixed-size elements swap
// in place; varchar rows swap their offset/length entries only, the
// string arena never moves.
func (v *Vector) Swap(i, j int64) {
	switch col := v.Col.(type) {
	case []int16:
		swapFixed(col, i, j)
	case []int32:
		swapFixed(col, i, j)
	case []int64:
		swapFixed(col, i, j)
	case []uint16:
		swapFixed(col, i, j)
	case []uint32:
		swapFixed(col, i, j)
	case []uint64:
		swapFixed(col, i, j)
	case []float32:
		swapFixed(col, i, j)
	case []float64:
		swapFixed(col, i, j)
	case []byte:
		swapFixed(col, i, j)
	case *types.Bytes:
		col.Swap(i, j)
	default:
		panic(fmt.Sprintf("vector.Swap: unexpected type %s", v.Typ))
	}
}

func shuffleFixed[T any](col []T, sels []int64) []T {
	ws := make([]T, len(sels))
	for i, sel := range sels {
		ws[i] = col[sel]
	}
	return ws
}

// Shuffle rebuilds the vector keeping only the rows named by sels, in
// sels order.  Used for kept-row projection after duplicate
// compression, where the result is smaller than the input.
func (v *Vector) Shuffle(sels []int64) {
	switch col := v.Col.(type) {
	case []int16:
		v.Col = shuffleFixed(col, sels)
	case []int32:
		v.Col = shuffleFixed(col, sels)
	case []int64:
		v.Col = shuffleFixed(col, sels)
	case []uint16:
		v.Col = shuffleFixed(col, sels)
	case []uint32:
		v.Col = shuffleFixed(col, sels)
	case []uint64:
		v.Col = shuffleFixed(col, sels)
	case []float32:
		v.Col = shuffleFixed(col, sels)
	case []float64:
		v.Col = shuffleFixed(col, sels)
	case []byte:
		v.Col = shuffleFixed(col, sels)
	case *types.Bytes:
		ws := &types.Bytes{}
		for _, sel := range sels {
			ws.Append([][]byte{col.Get(sel)})
		}
		v.Col = ws
	default:
		panic(fmt.Sprintf("vector.Shuffle: unexpected type %s", v.Typ))
	}
}

// UnionOne appends row sel of w to v.  Both vectors must share a type.
func (v *Vector) UnionOne(w *Vector, sel int64) {
	switch col := w.Col.(type) {
	case []int16:
		AppendFixed(v, col[sel])
	case []int32:
		AppendFixed(v, col[sel])
	case []int64:
		AppendFixed(v, col[sel])
	case []uint16:
		AppendFixed(v, col[sel])
	case []uint32:
		AppendFixed(v, col[sel])
	case []uint64:
		AppendFixed(v, col[sel])
	case []float32:
		AppendFixed(v, col[sel])
	case []float64:
		AppendFixed(v, col[sel])
	case []byte:
		AppendFixed(v, col[sel])
	case *types.Bytes:
		AppendBytes(v, col.Get(sel))
	default:
		panic(fmt.Sprintf("vector.UnionOne: unexpected type %s", w.Typ))
	}
}

func (v *Vector) String() string {
	return fmt.Sprintf("%s %v", v.Typ, v.Col)
}
