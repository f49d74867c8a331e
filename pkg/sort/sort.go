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

	"go.uber.org/zap"

	"github.com/matrixorigin/sortkit/pkg/container/page"
	"github.com/matrixorigin/sortkit/pkg/container/types"
	"github.com/matrixorigin/sortkit/pkg/container/vector"
	"github.com/matrixorigin/sortkit/pkg/logutil"
)

// SortPage sorts one page in place by the configured keys: resolve,
// order, permute, then optionally compress duplicate runs.  Any error
// aborts the page before its rows are moved.
func SortPage(ctx context.Context, pg *page.Page, opts Options) error {
	keys, err := Resolve(ctx, pg, opts.Keys, opts.NaturalStringOrder)
	if err != nil {
		return err
	}

	rows := pg.RowCount()
	order := ComputeOrder(rows, keys, opts.Stable)
	if err := Apply(ctx, pg, order); err != nil {
		return err
	}

	removed := 0
	if opts.OnlyUniqueRows {
		keep, counts := CompressRuns(rows, keys, opts.ProvideRunCount)
		sels := KeepSels(keep)
		removed = rows - len(sels)
		if removed > 0 {
			pg.Shrink(sels)
		}
		if opts.ProvideRunCount {
			vec := vector.New(types.New(types.T_int64))
			vector.AppendFixed(vec, counts...)
			pg.SetVector(IdenticalCountColumn, vec)
		}
	}

	logutil.Debug("page sorted",
		zap.Int("rows", rows),
		zap.Int("keys", len(keys)),
		zap.Int("removed", removed))
	return nil
}
