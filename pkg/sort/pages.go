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

	"github.com/matrixorigin/sortkit/pkg/common/moerr"
	"github.com/matrixorigin/sortkit/pkg/container/page"
	"github.com/matrixorigin/sortkit/pkg/container/vector"
	"github.com/matrixorigin/sortkit/pkg/logutil"
)

// PageSource yields the pages of one dataset.  A random-access source
// may be read twice: once for the sort-key parameters and once for the
// pages in final order.  A streaming source is read exactly once and
// its pages are spilled to temp storage until the order is known.
type PageSource interface {
	NumPages() int
	RandomAccess() bool
	ReadPage(ctx context.Context, i int) (*page.Page, error)
	// Parameter reads one page-level parameter without materializing
	// the page; only called on random-access sources.
	Parameter(ctx context.Context, i int, name string) (*vector.Vector, error)
}

type PageSink interface {
	WritePage(ctx context.Context, pg *page.Page) error
}

// OrderPages reorders whole pages by parameter-level keys, a pure
// page-granularity reordering independent of row sorting.  Parameter
// values run through the same comparator as row values.  The streaming
// fallback materializes every page, an O(total rows) memory/throughput
// trade documented on the spill.
func OrderPages(ctx context.Context, src PageSource, sink PageSink, opts Options) error {
	if len(opts.PageKeys) == 0 {
		return moerr.NewBadSortConfig(ctx, "no page-level sort keys supplied")
	}
	n := src.NumPages()
	if n == 0 {
		return nil
	}
	if src.RandomAccess() {
		return orderPagesTwoPass(ctx, src, sink, opts, n)
	}
	return orderPagesSpill(ctx, src, sink, opts, n)
}

// keyPage assembles a synthetic one-row-per-page table of parameter
// values so ComputeOrder can run on pages exactly as it runs on rows.
func keyPage(ctx context.Context, specs []KeySpec, param func(i int, name string) (*vector.Vector, error), n int) (*page.Page, error) {
	kp := page.New(nil)
	for _, spec := range specs {
		var vec *vector.Vector
		for i := 0; i < n; i++ {
			pv, err := param(i, spec.Name)
			if err != nil {
				return nil, err
			}
			if pv == nil {
				return nil, moerr.NewUnknownSortKey(ctx, spec.Name)
			}
			if vec == nil {
				vec = vector.New(pv.Typ)
			} else if pv.Typ.Oid != vec.Typ.Oid {
				// parameter type drift across pages
				return nil, moerr.NewUnsupportedType(ctx, pv.Typ.String())
			}
			vec.UnionOne(pv, 0)
		}
		kp.SetVector(spec.Name, vec)
	}
	return kp, nil
}

func pageOrder(ctx context.Context, kp *page.Page, opts Options, n int) ([]int64, error) {
	keys, err := Resolve(ctx, kp, opts.PageKeys, opts.NaturalStringOrder)
	if err != nil {
		return nil, err
	}
	return ComputeOrder(n, keys, opts.Stable), nil
}

func orderPagesTwoPass(ctx context.Context, src PageSource, sink PageSink, opts Options, n int) error {
	kp, err := keyPage(ctx, opts.PageKeys, func(i int, name string) (*vector.Vector, error) {
		return src.Parameter(ctx, i, name)
	}, n)
	if err != nil {
		return err
	}
	order, err := pageOrder(ctx, kp, opts, n)
	if err != nil {
		return err
	}
	for _, idx := range order {
		pg, err := src.ReadPage(ctx, int(idx))
		if err != nil {
			return err
		}
		if err := sink.WritePage(ctx, pg); err != nil {
			return err
		}
	}
	logutil.Debug("pages reordered", zap.Int("pages", n), zap.Bool("spilled", false))
	return nil
}

func orderPagesSpill(ctx context.Context, src PageSource, sink PageSink, opts Options, n int) error {
	spill, err := newPageSpill()
	if err != nil {
		return err
	}
	defer spill.close()

	params := make([]*page.Page, n)
	for i := 0; i < n; i++ {
		pg, err := src.ReadPage(ctx, i)
		if err != nil {
			return err
		}
		params[i] = pg
		if err := spill.add(pg); err != nil {
			return err
		}
	}
	kp, err := keyPage(ctx, opts.PageKeys, func(i int, name string) (*vector.Vector, error) {
		prm := params[i].Parameter(name)
		if prm == nil {
			return nil, nil
		}
		return prm.Vec, nil
	}, n)
	if err != nil {
		return err
	}
	// page contents live in the spill from here on
	params = nil

	order, err := pageOrder(ctx, kp, opts, n)
	if err != nil {
		return err
	}
	for _, idx := range order {
		pg := new(page.Page)
		if err := spill.readInto(int(idx), pg); err != nil {
			return err
		}
		if err := sink.WritePage(ctx, pg); err != nil {
			return err
		}
	}
	logutil.Debug("pages reordered", zap.Int("pages", n), zap.Bool("spilled", true))
	return nil
}

// MemorySource serves pages already materialized in memory.  Streaming
// toggles the random-access contract for hosts (and tests) that need
// the spill path.
type MemorySource struct {
	Pages     []*page.Page
	Streaming bool
}

func (s *MemorySource) NumPages() int      { return len(s.Pages) }
func (s *MemorySource) RandomAccess() bool { return !s.Streaming }

func (s *MemorySource) ReadPage(ctx context.Context, i int) (*page.Page, error) {
	return s.Pages[i], nil
}

func (s *MemorySource) Parameter(ctx context.Context, i int, name string) (*vector.Vector, error) {
	prm := s.Pages[i].Parameter(name)
	if prm == nil {
		return nil, nil
	}
	return prm.Vec, nil
}

// SliceSink collects written pages in order.
type SliceSink struct {
	Pages []*page.Page
}

func (s *SliceSink) WritePage(ctx context.Context, pg *page.Page) error {
	s.Pages = append(s.Pages, pg)
	return nil
}

var (
	_ PageSource = (*MemorySource)(nil)
	_ PageSink   = (*SliceSink)(nil)
)
