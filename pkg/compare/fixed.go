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
	"github.com/matrixorigin/sortkit/pkg/container/vector"
)

type signedT interface {
	~int16 | ~int32 | ~int64
}

type unsignedT interface {
	~uint16 | ~uint32 | ~uint64 | ~byte
}

type floatT interface {
	~float32 | ~float64
}

// magnitude returns |x| as uint64 without overflowing on the minimum
// value of the signed type.
func magnitude[T signedT](x T) uint64 {
	if x >= 0 {
		return uint64(x)
	}
	return uint64(-(x + 1)) + 1
}

type signedCompare[T signedT] struct {
	sign int
	abs  bool
	xs   [2][]T
}

func newSigned[T signedT](sign int, abs bool) *signedCompare[T] {
	return &signedCompare[T]{sign: sign, abs: abs}
}

func (c *signedCompare[T]) Set(idx int, vec *vector.Vector) {
	c.xs[idx] = vec.Col.([]T)
}

func (c *signedCompare[T]) Compare(veci, vecj int, vi, vj int64) int {
	x, y := c.xs[veci][vi], c.xs[vecj][vj]
	if c.abs {
		mx, my := magnitude(x), magnitude(y)
		switch {
		case mx < my:
			return -c.sign
		case mx > my:
			return c.sign
		}
		return 0
	}
	switch {
	case x < y:
		return -c.sign
	case x > y:
		return c.sign
	}
	return 0
}

type unsignedCompare[T unsignedT] struct {
	sign int
	xs   [2][]T
}

func newUnsigned[T unsignedT](sign int) *unsignedCompare[T] {
	return &unsignedCompare[T]{sign: sign}
}

func (c *unsignedCompare[T]) Set(idx int, vec *vector.Vector) {
	c.xs[idx] = vec.Col.([]T)
}

func (c *unsignedCompare[T]) Compare(veci, vecj int, vi, vj int64) int {
	x, y := c.xs[veci][vi], c.xs[vecj][vj]
	switch {
	case x < y:
		return -c.sign
	case x > y:
		return c.sign
	}
	return 0
}

// floatCompare uses Go < and > semantics, so NaN compares equal to
// everything; a page with NaN keys sorts in an arbitrary but memory
// safe order.
type floatCompare[T floatT] struct {
	sign int
	abs  bool
	xs   [2][]T
}

func newFloat[T floatT](sign int, abs bool) *floatCompare[T] {
	return &floatCompare[T]{sign: sign, abs: abs}
}

func (c *floatCompare[T]) Set(idx int, vec *vector.Vector) {
	c.xs[idx] = vec.Col.([]T)
}

func (c *floatCompare[T]) Compare(veci, vecj int, vi, vj int64) int {
	x, y := c.xs[veci][vi], c.xs[vecj][vj]
	if c.abs {
		if x < 0 {
			x = -x
		}
		if y < 0 {
			y = -y
		}
	}
	switch {
	case x < y:
		return -c.sign
	case x > y:
		return c.sign
	}
	return 0
}
