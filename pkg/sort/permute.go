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

package sort

import (
	"context"

	"github.com/matrixorigin/sortkit/pkg/common/moerr"
	"github.com/matrixorigin/sortkit/pkg/container/page"
	"github.com/matrixorigin/sortkit/pkg/container/types"
)

// Apply realizes the permutation on the page's vectors by swapping
// physical rows: after the call, position i of every column holds the
// value that position order[i] held before, and order is reset to the
// identity.  Each row is swapped into place at most once, so the data
// movement is at most rows-1 row swaps with O(rows) bookkeeping and no
// extra column storage.
//
// The width of every fixed-size column is validated before any row
// moves; a failure leaves the page untouched.
func Apply(ctx context.Context, pg *page.Page, order []int64) error {
	for i, vec := range pg.Vecs {
		if !vec.Typ.Oid.FixedSize() {
			continue // varchar swaps offsets only, width-free
		}
		if sz := types.TypeSize(vec.Typ.Oid); sz > swapWidthLimit {
			return moerr.NewUnsupportedWidth(ctx, pg.Attrs[i], sz, swapWidthLimit)
		}
	}

	n := int64(len(order))
	// location[r] is the current position of original row r; cur[p]
	// is the original row currently at position p.
	location := make([]int64, n)
	cur := make([]int64, n)
	for i := int64(0); i < n; i++ {
		location[i] = i
		cur[i] = i
	}
	for i := int64(0); i < n; i++ {
		want := order[i]
		pos := location[want]
		if pos != i {
			for _, vec := range pg.Vecs {
				vec.Swap(i, pos)
			}
			displaced := cur[i]
			cur[i], cur[pos] = want, displaced
			location[want] = i
			location[displaced] = pos
		}
		order[i] = i
	}
	return nil
}
