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

package types

// Bytes holds a var-length string column: one shared data arena plus
// per-row offset/length entries.  Reordering rows touches only the
// offset and length slices; the arena never moves.
type Bytes struct {
	Data    []byte
	Offsets []uint32
	Lengths []uint32
}

func (a *Bytes) Get(n int64) []byte {
	offset := a.Offsets[n]
	return a.Data[offset : offset+a.Lengths[n]]
}

func (a *Bytes) Count() int {
	return len(a.Offsets)
}

// Append copies the given values into the arena.
func (a *Bytes) Append(vs [][]byte) {
	for _, v := range vs {
		a.Offsets = append(a.Offsets, uint32(len(a.Data)))
		a.Lengths = append(a.Lengths, uint32(len(v)))
		a.Data = append(a.Data, v...)
	}
}

// Swap exchanges rows i and j by their offset/length entries.
func (a *Bytes) Swap(i, j int64) {
	a.Offsets[i], a.Offsets[j] = a.Offsets[j], a.Offsets[i]
	a.Lengths[i], a.Lengths[j] = a.Lengths[j], a.Lengths[i]
}

// Window returns a view over rows [start, end).  The arena is shared.
func (a *Bytes) Window(start, end int) *Bytes {
	return &Bytes{
		Data:    a.Data,
		Offsets: a.Offsets[start:end],
		Lengths: a.Lengths[start:end],
	}
}

func (a *Bytes) String() string {
	var buf []byte
	for i := range a.Offsets {
		buf = append(buf, a.Get(int64(i))...)
		buf = append(buf, '\n')
	}
	return string(buf)
}
