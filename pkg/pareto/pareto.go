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

// Package pareto ranks a population of objective vectors into
// non-dominated fronts and computes the crowding-distance diversity
// metric within each front (NSGA-II style, with constraint
// domination).
package pareto

import (
	"math"
	"sort"
)

// Individual is one row of a page viewed as a point in objective
// space.
type Individual struct {
	Objectives []float64
	// ConstraintViolation <= 0 means feasible.
	ConstraintViolation float64
	// Rank is the front index, 0 for non-dominated individuals.
	Rank int32
	// CrowdDistance is +Inf for per-objective extremes of a front.
	CrowdDistance float64
}

// Population is all individuals of one page plus the per-objective
// sense flags.  Created fresh per page and discarded after ranking.
type Population struct {
	Individuals []Individual
	// Minimize[k] is true when objective k is minimized.
	Minimize []bool
}

// dominates reports whether individual a dominates individual b under
// constraint domination: a feasible solution dominates an infeasible
// one, the less-violating of two infeasible solutions dominates, and
// two feasible solutions fall through to Pareto dominance on the
// objectives.
func (pop *Population) dominates(a, b int) bool {
	ca := pop.Individuals[a].ConstraintViolation
	cb := pop.Individuals[b].ConstraintViolation
	fa, fb := ca <= 0, cb <= 0
	switch {
	case fa && !fb:
		return true
	case !fa && fb:
		return false
	case !fa && !fb:
		return ca < cb
	}

	xs := pop.Individuals[a].Objectives
	ys := pop.Individuals[b].Objectives
	strict := false
	for k := range xs {
		x, y := xs[k], ys[k]
		if pop.Minimize[k] {
			x, y = y, x
		}
		if x < y {
			return false
		}
		if x > y {
			strict = true
		}
	}
	return strict
}

// AssignFronts partitions the population into fronts and sets each
// individual's Rank: front 0 holds everyone dominated by no one, front
// 1 everyone dominated only by front 0, and so on until the population
// is exhausted.  Returns the fronts as index lists.
func (pop *Population) AssignFronts() [][]int {
	n := len(pop.Individuals)

	// count dominators and remember dominated sets once, then peel
	// fronts off without re-scanning all pairs
	domCount := make([]int, n)
	dominated := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			switch {
			case pop.dominates(i, j):
				dominated[i] = append(dominated[i], j)
				domCount[j]++
			case pop.dominates(j, i):
				dominated[j] = append(dominated[j], i)
				domCount[i]++
			}
		}
	}

	var fronts [][]int
	var current []int
	for i := 0; i < n; i++ {
		if domCount[i] == 0 {
			pop.Individuals[i].Rank = 0
			current = append(current, i)
		}
	}
	rank := int32(0)
	for len(current) > 0 {
		fronts = append(fronts, current)
		var next []int
		for _, i := range current {
			for _, j := range dominated[i] {
				domCount[j]--
				if domCount[j] == 0 {
					pop.Individuals[j].Rank = rank + 1
					next = append(next, j)
				}
			}
		}
		current = next
		rank++
	}
	return fronts
}

// ComputeCrowding accumulates the crowding distance of every
// individual of one front: per objective, the two extremes get +Inf
// and interior individuals gain the normalized gap between their
// neighbors.
func (pop *Population) ComputeCrowding(front []int) {
	for _, i := range front {
		pop.Individuals[i].CrowdDistance = 0
	}
	if len(front) < 2 {
		for _, i := range front {
			pop.Individuals[i].CrowdDistance = math.Inf(1)
		}
		return
	}
	idx := make([]int, len(front))
	for k := range pop.Minimize {
		copy(idx, front)
		sort.Slice(idx, func(a, b int) bool {
			return pop.Individuals[idx[a]].Objectives[k] < pop.Individuals[idx[b]].Objectives[k]
		})
		lo := pop.Individuals[idx[0]].Objectives[k]
		hi := pop.Individuals[idx[len(idx)-1]].Objectives[k]
		pop.Individuals[idx[0]].CrowdDistance = math.Inf(1)
		pop.Individuals[idx[len(idx)-1]].CrowdDistance = math.Inf(1)
		if hi == lo {
			continue
		}
		for m := 1; m < len(idx)-1; m++ {
			gap := pop.Individuals[idx[m+1]].Objectives[k] - pop.Individuals[idx[m-1]].Objectives[k]
			pop.Individuals[idx[m]].CrowdDistance += gap / (hi - lo)
		}
	}
}

// Rank runs front assignment and crowding for the whole population.
func (pop *Population) Rank() [][]int {
	fronts := pop.AssignFronts()
	for _, front := range fronts {
		pop.ComputeCrowding(front)
	}
	return fronts
}

// Order returns the externally visible permutation: ascending rank,
// then descending crowding distance within a rank.
func (pop *Population) Order() []int64 {
	order := make([]int64, len(pop.Individuals))
	for i := range order {
		order[i] = int64(i)
	}
	sort.SliceStable(order, func(a, b int) bool {
		x, y := &pop.Individuals[order[a]], &pop.Individuals[order[b]]
		if x.Rank != y.Rank {
			return x.Rank < y.Rank
		}
		return x.CrowdDistance > y.CrowdDistance
	})
	return order
}
