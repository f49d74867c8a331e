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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/sortkit/pkg/container/types"
)

func TestVectorSwapFixed(t *testing.T) {
	vec := New(types.New(types.T_int32))
	AppendFixed(vec, int32(1), int32(2), int32(3))
	vec.Swap(0, 2)
	require.Equal(t, []int32{3, 2, 1}, MustFixedCol[int32](vec))
}

func TestVectorSwapVarchar(t *testing.T) {
	vec := New(types.New(types.T_varchar))
	AppendStrings(vec, "aa", "b", "ccc")
	arena := MustBytes(vec).Data

	vec.Swap(0, 2)
	bs := MustBytes(vec)
	require.Equal(t, "ccc", string(bs.Get(0)))
	require.Equal(t, "b", string(bs.Get(1)))
	require.Equal(t, "aa", string(bs.Get(2)))
	// the arena never moves, only offsets swap
	require.Equal(t, "aabccc", string(arena))
}

func TestVectorShuffle(t *testing.T) {
	vec := New(types.New(types.T_float64))
	AppendFixed(vec, 1.5, 2.5, 3.5, 4.5)
	vec.Shuffle([]int64{0, 2})
	require.Equal(t, []float64{1.5, 3.5}, MustFixedCol[float64](vec))

	sv := New(types.New(types.T_varchar))
	AppendStrings(sv, "x", "y", "z")
	sv.Shuffle([]int64{2, 0})
	bs := MustBytes(sv)
	require.Equal(t, 2, bs.Count())
	require.Equal(t, "z", string(bs.Get(0)))
	require.Equal(t, "x", string(bs.Get(1)))
}

func TestVectorUnionOne(t *testing.T) {
	src := New(types.New(types.T_int64))
	AppendFixed(src, int64(7), int64(8))
	dst := New(types.New(types.T_int64))
	dst.UnionOne(src, 1)
	dst.UnionOne(src, 0)
	require.Equal(t, []int64{8, 7}, MustFixedCol[int64](dst))
}

func TestVectorCodecRoundTrip(t *testing.T) {
	fv := New(types.New(types.T_uint32))
	AppendFixed(fv, uint32(10), uint32(20), uint32(30))
	data, err := fv.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, fv.BinarySize(), len(data))

	got := new(Vector)
	require.NoError(t, got.UnmarshalBinary(data))
	require.Equal(t, fv.Typ, got.Typ)
	require.Equal(t, []uint32{10, 20, 30}, MustFixedCol[uint32](got))

	sv := New(types.New(types.T_varchar))
	AppendStrings(sv, "alpha", "", "gamma")
	data, err = sv.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, sv.BinarySize(), len(data))

	got = new(Vector)
	require.NoError(t, got.UnmarshalBinary(data))
	bs := MustBytes(got)
	require.Equal(t, 3, bs.Count())
	require.Equal(t, "alpha", string(bs.Get(0)))
	require.Equal(t, "", string(bs.Get(1)))
	require.Equal(t, "gamma", string(bs.Get(2)))
}

func TestLongDoubleVector(t *testing.T) {
	vec := New(types.New(types.T_longdouble))
	AppendFixed(vec, 1.25, 2.5)
	require.Equal(t, 2, vec.Length())
	require.Equal(t, []float64{1.25, 2.5}, MustFixedCol[float64](vec))
}
