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

package types

import "fmt"

// T is the scalar type tag of a column.  Every comparison and every row
// swap dispatches on this tag.
type T uint8

const (
	// T_any is an invalid zero value, never stored in a schema.
	T_any T = iota

	T_int16
	T_int32
	T_int64
	T_uint16
	T_uint32
	T_uint64

	T_float32
	T_float64
	// T_longdouble is the extended precision float of the source data
	// format.  Go has no native extended float, so values are held as
	// float64; the tag is kept distinct so schemas round-trip.
	T_longdouble

	// T_char is a single byte character column.
	T_char
	// T_varchar is a variable length string column, stored in a Bytes
	// arena with per-row offset/length entries.
	T_varchar
)

// Type describes one column: the scalar tag plus the fixed element size
// in bytes (0 for var-length types).
type Type struct {
	Oid  T
	Size int32
}

func New(oid T) Type {
	return Type{Oid: oid, Size: int32(TypeSize(oid))}
}

// TypeSize returns the per-row byte width of a fixed-size tag, or 0 for
// var-length tags.
func TypeSize(oid T) int {
	switch oid {
	case T_char:
		return 1
	case T_int16, T_uint16:
		return 2
	case T_int32, T_uint32, T_float32:
		return 4
	case T_int64, T_uint64, T_float64, T_longdouble:
		return 8
	}
	return 0
}

// FixedSize reports whether the tag has a fixed per-row width.
func (t T) FixedSize() bool {
	return t != T_varchar && t != T_any
}

// Numeric reports whether values of the tag are ordered numbers.  Only
// numeric columns may serve as Pareto objectives.
func (t T) Numeric() bool {
	switch t {
	case T_int16, T_int32, T_int64, T_uint16, T_uint32, T_uint64,
		T_float32, T_float64, T_longdouble:
		return true
	}
	return false
}

func (t T) String() string {
	switch t {
	case T_int16:
		return "SHORT"
	case T_int32:
		return "LONG"
	case T_int64:
		return "LONG64"
	case T_uint16:
		return "USHORT"
	case T_uint32:
		return "ULONG"
	case T_uint64:
		return "ULONG64"
	case T_float32:
		return "FLOAT"
	case T_float64:
		return "DOUBLE"
	case T_longdouble:
		return "LONGDOUBLE"
	case T_char:
		return "CHARACTER"
	case T_varchar:
		return "STRING"
	}
	return fmt.Sprintf("unexpected type tag %d", uint8(t))
}

func (t Type) String() string {
	return t.Oid.String()
}
