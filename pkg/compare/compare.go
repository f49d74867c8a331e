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

// Package compare builds typed row comparators.  A Compare holds up to
// two vector slots so rows of different vectors (or the same vector in
// both slots) can be compared by position.
package compare

import (
	"context"

	"github.com/matrixorigin/sortkit/pkg/common/moerr"
	"github.com/matrixorigin/sortkit/pkg/container/types"
	"github.com/matrixorigin/sortkit/pkg/container/vector"
)

type Compare interface {
	// Set binds a vector to slot idx (0 or 1).
	Set(idx int, vec *vector.Vector)
	// Compare compares row vi of slot veci against row vj of slot
	// vecj, returning -1, 0 or 1 with the comparator's direction
	// already applied.
	Compare(veci, vecj int, vi, vj int64) int
}

// Options select the comparison mode of a single sort key.
type Options struct {
	// Desc inverts the order.
	Desc bool
	// Abs compares numeric values by magnitude.
	Abs bool
	// Natural enables the numeric-aware string order: digit runs
	// compare as numbers, longer runs of digits sort after shorter
	// ones and digits sort after all non-digit characters.  Only
	// meaningful for varchar columns.
	Natural bool
}

// New builds a comparator for the given column type.  An unrecognized
// tag is a schema/engine mismatch, not a user error; with a validated
// page schema it is unreachable.
func New(typ types.Type, opts Options) (Compare, error) {
	sign := 1
	if opts.Desc {
		sign = -1
	}
	switch typ.Oid {
	case types.T_int16:
		return newSigned[int16](sign, opts.Abs), nil
	case types.T_int32:
		return newSigned[int32](sign, opts.Abs), nil
	case types.T_int64:
		return newSigned[int64](sign, opts.Abs), nil
	case types.T_uint16:
		return newUnsigned[uint16](sign), nil
	case types.T_uint32:
		return newUnsigned[uint32](sign), nil
	case types.T_uint64:
		return newUnsigned[uint64](sign), nil
	case types.T_float32:
		return newFloat[float32](sign, opts.Abs), nil
	case types.T_float64, types.T_longdouble:
		return newFloat[float64](sign, opts.Abs), nil
	case types.T_char:
		return newUnsigned[byte](sign), nil
	case types.T_varchar:
		return newVarchar(sign, opts.Natural), nil
	}
	return nil, moerr.NewUnsupportedTypeTag(context.Background(), int(typ.Oid))
}
