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
	"github.com/RoaringBitmap/roaring"
)

// CompressRuns scans rows already ordered under the given key set and
// marks all but the first row of every run of key-equal rows as
// removed.  The kept rows, in order, are exactly the distinct key
// tuples present.  counts is aligned with the kept rows (run length
// per kept row) and is nil unless provideCount is set.
//
// Running this under a key set other than the one the rows were sorted
// by is a misuse; runs are only contiguous after sorting.
func CompressRuns(rows int, keys []SortKey, provideCount bool) (keep []bool, counts []int64) {
	keep = make([]bool, rows)
	if rows == 0 {
		return keep, nil
	}

	kept := roaring.New()
	kept.Add(0)
	if provideCount {
		counts = append(counts, 1)
	}
	last := int64(0)
	for i := int64(1); i < int64(rows); i++ {
		if compareRows(keys, i, last) == 0 {
			if provideCount {
				counts[len(counts)-1]++
			}
			continue
		}
		kept.Add(uint32(i))
		if provideCount {
			counts = append(counts, 1)
		}
		last = i
	}

	it := kept.Iterator()
	for it.HasNext() {
		keep[it.Next()] = true
	}
	return keep, counts
}

// KeepSels converts a keep mask into the ascending row selection used
// by page.Shrink.
func KeepSels(keep []bool) []int64 {
	sels := make([]int64, 0, len(keep))
	for i, k := range keep {
		if k {
			sels = append(sels, int64(i))
		}
	}
	return sels
}
