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

package page

import (
	"encoding/binary"

	"github.com/matrixorigin/sortkit/pkg/container/vector"
)

// Spill codec: length-prefixed attribute names, framed vectors, then
// parameters.  Written to temp storage by the page orderer when the
// source cannot be re-read; never a durable format.

func appendString(buf []byte, s string) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(s)))
	return append(buf, s...)
}

func readString(data []byte) (string, []byte) {
	n := int(binary.LittleEndian.Uint32(data))
	return string(data[4 : 4+n]), data[4+n:]
}

func appendVector(buf []byte, vec *vector.Vector) ([]byte, error) {
	data, err := vec.MarshalBinary()
	if err != nil {
		return nil, err
	}
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(data)))
	return append(buf, data...), nil
}

func readVector(data []byte) (*vector.Vector, []byte, error) {
	n := int(binary.LittleEndian.Uint32(data))
	data = data[4:]
	vec := new(vector.Vector)
	if err := vec.UnmarshalBinary(data[:n]); err != nil {
		return nil, nil, err
	}
	return vec, data[n:], nil
}

func (p *Page) MarshalBinary() ([]byte, error) {
	var err error
	buf := binary.LittleEndian.AppendUint32(nil, uint32(len(p.Attrs)))
	for i, attr := range p.Attrs {
		buf = appendString(buf, attr)
		if buf, err = appendVector(buf, p.Vecs[i]); err != nil {
			return nil, err
		}
	}
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(p.Params)))
	for _, prm := range p.Params {
		buf = appendString(buf, prm.Name)
		if buf, err = appendVector(buf, prm.Vec); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

func (p *Page) UnmarshalBinary(data []byte) error {
	n := int(binary.LittleEndian.Uint32(data))
	data = data[4:]
	p.Attrs = make([]string, n)
	p.Vecs = make([]*vector.Vector, n)
	var err error
	for i := 0; i < n; i++ {
		p.Attrs[i], data = readString(data)
		if p.Vecs[i], data, err = readVector(data); err != nil {
			return err
		}
	}
	n = int(binary.LittleEndian.Uint32(data))
	data = data[4:]
	p.Params = make([]Parameter, n)
	for i := 0; i < n; i++ {
		p.Params[i].Name, data = readString(data)
		if p.Params[i].Vec, data, err = readVector(data); err != nil {
			return err
		}
	}
	return nil
}
