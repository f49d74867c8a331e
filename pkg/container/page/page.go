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

// Package page holds one self-contained table snapshot: named parallel
// column vectors plus page-level parameters.  The sort engine mutates a
// page's vectors in place; a page is owned by exactly one caller for
// the duration of its processing.
package page

import (
	"bytes"
	"fmt"

	"github.com/matrixorigin/sortkit/pkg/container/vector"
)

// Parameter is a page-level named scalar, held as a one-row vector so
// parameter values flow through the same comparator as column values.
type Parameter struct {
	Name string
	Vec  *vector.Vector
}

type Page struct {
	Attrs  []string
	Vecs   []*vector.Vector
	Params []Parameter
}

func New(attrs []string) *Page {
	return &Page{
		Attrs: attrs,
		Vecs:  make([]*vector.Vector, len(attrs)),
	}
}

func (p *Page) RowCount() int {
	if len(p.Vecs) == 0 || p.Vecs[0] == nil {
		return 0
	}
	return p.Vecs[0].Length()
}

// ColumnIndex returns the position of the named column, or -1.
func (p *Page) ColumnIndex(name string) int {
	for i, attr := range p.Attrs {
		if attr == name {
			return i
		}
	}
	return -1
}

// Vector returns the named column vector, or nil when absent.
func (p *Page) Vector(name string) *vector.Vector {
	i := p.ColumnIndex(name)
	if i < 0 {
		return nil
	}
	return p.Vecs[i]
}

// SetVector replaces the named column, appending a new column when the
// name is not yet part of the schema.  Used for the synthesized Rank,
// CrowdingDistance, ConstraintsViolation and IdenticalCount columns.
func (p *Page) SetVector(name string, vec *vector.Vector) {
	if i := p.ColumnIndex(name); i >= 0 {
		p.Vecs[i] = vec
		return
	}
	p.Attrs = append(p.Attrs, name)
	p.Vecs = append(p.Vecs, vec)
}

// Parameter returns the named page parameter, or nil.
func (p *Page) Parameter(name string) *Parameter {
	for i := range p.Params {
		if p.Params[i].Name == name {
			return &p.Params[i]
		}
	}
	return nil
}

func (p *Page) SetParameter(name string, vec *vector.Vector) {
	if prm := p.Parameter(name); prm != nil {
		prm.Vec = vec
		return
	}
	p.Params = append(p.Params, Parameter{Name: name, Vec: vec})
}

// Shrink projects the page down to the rows named by sels, in sels
// order.  sels must be sorted ascending when row order is to survive.
func (p *Page) Shrink(sels []int64) {
	for _, vec := range p.Vecs {
		vec.Shuffle(sels)
	}
}

func (p *Page) String() string {
	var buf bytes.Buffer
	for i, attr := range p.Attrs {
		fmt.Fprintf(&buf, "%s\n%s\n", attr, p.Vecs[i])
	}
	return buf.String()
}
