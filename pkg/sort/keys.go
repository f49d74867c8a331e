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
	"github.com/matrixorigin/sortkit/pkg/compare"
	"github.com/matrixorigin/sortkit/pkg/container/page"
)

// Resolve binds key specs to the page's schema, building one bound
// comparator per key.  A name missing from the schema aborts the page.
func Resolve(ctx context.Context, pg *page.Page, specs []KeySpec, natural bool) ([]SortKey, error) {
	if len(specs) == 0 {
		return nil, moerr.NewBadSortConfig(ctx, "no sort keys supplied")
	}
	keys := make([]SortKey, len(specs))
	for i, spec := range specs {
		idx := pg.ColumnIndex(spec.Name)
		if idx < 0 {
			return nil, moerr.NewUnknownSortKey(ctx, spec.Name)
		}
		vec := pg.Vecs[idx]
		cmp, err := compare.New(vec.Typ, compare.Options{
			Desc:    spec.Decreasing,
			Abs:     spec.Absolute,
			Natural: natural,
		})
		if err != nil {
			return nil, err
		}
		// both slots bound to the same vector: all row-mode
		// comparisons are within one page
		cmp.Set(0, vec)
		cmp.Set(1, vec)
		keys[i] = SortKey{Spec: spec, ColIdx: idx, Typ: vec.Typ, Cmp: cmp}
	}
	return keys, nil
}
