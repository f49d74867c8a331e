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

package compare

import (
	"bytes"

	"github.com/matrixorigin/sortkit/pkg/container/types"
	"github.com/matrixorigin/sortkit/pkg/container/vector"
)

// varcharCompare borrows views into the column arena; no per-compare
// allocation or copying of string data.
type varcharCompare struct {
	sign    int
	natural bool
	xs      [2]*types.Bytes
}

func newVarchar(sign int, natural bool) *varcharCompare {
	return &varcharCompare{sign: sign, natural: natural}
}

func (c *varcharCompare) Set(idx int, vec *vector.Vector) {
	c.xs[idx] = vec.Col.(*types.Bytes)
}

func (c *varcharCompare) Compare(veci, vecj int, vi, vj int64) int {
	x, y := c.xs[veci].Get(vi), c.xs[vecj].Get(vj)
	var rel int
	if c.natural {
		rel = CompareNatural(x, y)
	} else {
		rel = bytes.Compare(x, y)
	}
	return rel * c.sign
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func trimLeadingZeros(s []byte) []byte {
	for len(s) > 1 && s[0] == '0' {
		s = s[1:]
	}
	return s
}

// CompareNatural is the numeric-aware string total order: runs of
// digits compare as numbers, a longer digit run sorts after a shorter
// one, and digit characters sort after all non-digit characters.
// This is a content-defined order distinct from plain lexicographic
// comparison; "item2" < "item10" here.
func CompareNatural(a, b []byte) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		da, db := isDigit(a[i]), isDigit(b[j])
		switch {
		case da && db:
			i0, j0 := i, j
			for i < len(a) && isDigit(a[i]) {
				i++
			}
			for j < len(b) && isDigit(b[j]) {
				j++
			}
			ra := trimLeadingZeros(a[i0:i])
			rb := trimLeadingZeros(b[j0:j])
			// equal length runs compare digit by digit; a longer
			// run is the larger number
			if len(ra) != len(rb) {
				if len(ra) < len(rb) {
					return -1
				}
				return 1
			}
			if rel := bytes.Compare(ra, rb); rel != 0 {
				return rel
			}
			// same value: fewer leading zeros first, keeps the
			// order total
			if n0, n1 := i-i0, j-j0; n0 != n1 {
				if n0 < n1 {
					return -1
				}
				return 1
			}
		case da:
			return 1
		case db:
			return -1
		default:
			if a[i] != b[j] {
				if a[i] < b[j] {
					return -1
				}
				return 1
			}
			i++
			j++
		}
	}
	switch {
	case i < len(a):
		return 1
	case j < len(b):
		return -1
	}
	return 0
}
