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
	"sort"
)

// compareRows evaluates the keys in order and returns the first
// non-zero relation; each key's comparator already carries its
// direction, absolute and string-order modes.
func compareRows(keys []SortKey, i, j int64) int {
	for k := range keys {
		if rel := keys[k].Cmp.Compare(0, 1, i, j); rel != 0 {
			return rel
		}
	}
	return 0
}

// ComputeOrder returns the permutation order such that order[i] is the
// original row that belongs at position i under the key set.  Rows
// whose keys all compare equal are ties; with stable=false ties
// resolve arbitrarily, with stable=true they keep their input order.  O(rows * log rows * keys) comparisons, no
// allocation beyond the index array.
func ComputeOrder(rows int, keys []SortKey, stable bool) []int64 {
	order := make([]int64, rows)
	for i := range order {
		order[i] = int64(i)
	}
	less := func(i, j int) bool {
		return compareRows(keys, order[i], order[j]) < 0
	}
	if stable {
		sort.SliceStable(order, less)
	} else {
		sort.Slice(order, less)
	}
	return order
}
