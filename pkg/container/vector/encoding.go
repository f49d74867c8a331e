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
	"encoding/binary"

	"github.com/matrixorigin/sortkit/pkg/container/types"
)

// Binary layout: type header, row count, then the raw column payload.
// Varchar vectors carry offsets, lengths and the arena in sequence.
// Only the page spill uses this codec; it is not a storage format.

func (v *Vector) MarshalBinary() ([]byte, error) {
	var buf []byte
	buf = append(buf, types.EncodeType(&v.Typ)...)

	n := v.Length()
	buf = binary.LittleEndian.AppendUint32(buf, uint32(n))

	switch col := v.Col.(type) {
	case []int16:
		buf = append(buf, types.EncodeSlice(col)...)
	case []int32:
		buf = append(buf, types.EncodeSlice(col)...)
	case []int64:
		buf = append(buf, types.EncodeSlice(col)...)
	case []uint16:
		buf = append(buf, types.EncodeSlice(col)...)
	case []uint32:
		buf = append(buf, types.EncodeSlice(col)...)
	case []uint64:
		buf = append(buf, types.EncodeSlice(col)...)
	case []float32:
		buf = append(buf, types.EncodeSlice(col)...)
	case []float64:
		buf = append(buf, types.EncodeSlice(col)...)
	case []byte:
		buf = append(buf, col...)
	case *types.Bytes:
		buf = append(buf, types.EncodeSlice(col.Offsets)...)
		buf = append(buf, types.EncodeSlice(col.Lengths)...)
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(col.Data)))
		buf = append(buf, col.Data...)
	}
	return buf, nil
}

func (v *Vector) UnmarshalBinary(data []byte) error {
	v.Typ = types.DecodeType(data[:8])
	data = data[8:]

	n := int(binary.LittleEndian.Uint32(data))
	data = data[4:]

	sz := types.TypeSize(v.Typ.Oid)
	switch v.Typ.Oid {
	case types.T_int16:
		v.Col = append([]int16{}, types.DecodeSlice[int16](data[:n*sz])...)
	case types.T_int32:
		v.Col = append([]int32{}, types.DecodeSlice[int32](data[:n*sz])...)
	case types.T_int64:
		v.Col = append([]int64{}, types.DecodeSlice[int64](data[:n*sz])...)
	case types.T_uint16:
		v.Col = append([]uint16{}, types.DecodeSlice[uint16](data[:n*sz])...)
	case types.T_uint32:
		v.Col = append([]uint32{}, types.DecodeSlice[uint32](data[:n*sz])...)
	case types.T_uint64:
		v.Col = append([]uint64{}, types.DecodeSlice[uint64](data[:n*sz])...)
	case types.T_float32:
		v.Col = append([]float32{}, types.DecodeSlice[float32](data[:n*sz])...)
	case types.T_float64, types.T_longdouble:
		v.Col = append([]float64{}, types.DecodeSlice[float64](data[:n*sz])...)
	case types.T_char:
		v.Col = append([]byte{}, data[:n]...)
	case types.T_varchar:
		bs := &types.Bytes{}
		bs.Offsets = append([]uint32{}, types.DecodeSlice[uint32](data[:n*4])...)
		data = data[n*4:]
		bs.Lengths = append([]uint32{}, types.DecodeSlice[uint32](data[:n*4])...)
		data = data[n*4:]
		dn := int(binary.LittleEndian.Uint32(data))
		data = data[4:]
		bs.Data = append([]byte{}, data[:dn]...)
		v.Col = bs
	}
	return nil
}

// BinarySize returns the exact encoded size, used to frame vectors
// inside a page record.
func (v *Vector) BinarySize() int {
	n := v.Length()
	if bs, ok := v.Col.(*types.Bytes); ok {
		return 8 + 4 + n*8 + 4 + len(bs.Data)
	}
	return 8 + 4 + n*types.TypeSize(v.Typ.Oid)
}
