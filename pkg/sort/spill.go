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
	"os"

	"github.com/pierrec/lz4"
)

type spillRec struct {
	off   int64
	csize int32 // compressed size; 0 means stored raw
	usize int32
}

// pageSpill materializes pages into one temp file, each page encoded
// and lz4 block-compressed individually so records can be read back in
// arbitrary order with ReadAt.
type pageSpill struct {
	f    *os.File
	off  int64
	recs []spillRec
}

func newPageSpill() (*pageSpill, error) {
	f, err := os.CreateTemp("", "sortkit-spill-*")
	if err != nil {
		return nil, err
	}
	return &pageSpill{f: f}, nil
}

type binaryMarshaler interface {
	MarshalBinary() ([]byte, error)
}

type binaryUnmarshaler interface {
	UnmarshalBinary([]byte) error
}

func (s *pageSpill) add(pg binaryMarshaler) error {
	data, err := pg.MarshalBinary()
	if err != nil {
		return err
	}
	rec := spillRec{off: s.off, usize: int32(len(data))}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := lz4.CompressBlock(data, dst, nil)
	if err != nil {
		return err
	}
	if n > 0 && n < len(data) {
		rec.csize = int32(n)
		data = dst[:n]
	}
	if _, err := s.f.WriteAt(data, s.off); err != nil {
		return err
	}
	s.off += int64(len(data))
	s.recs = append(s.recs, rec)
	return nil
}

func (s *pageSpill) readInto(i int, pg binaryUnmarshaler) error {
	rec := s.recs[i]
	stored := rec.usize
	if rec.csize > 0 {
		stored = rec.csize
	}
	buf := make([]byte, stored)
	if _, err := s.f.ReadAt(buf, rec.off); err != nil {
		return err
	}
	if rec.csize > 0 {
		raw := make([]byte, rec.usize)
		if _, err := lz4.UncompressBlock(buf, raw); err != nil {
			return err
		}
		buf = raw
	}
	return pg.UnmarshalBinary(buf)
}

func (s *pageSpill) close() {
	name := s.f.Name()
	s.f.Close()
	os.Remove(name)
}
