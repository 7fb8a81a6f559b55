/*
Copyright 2024 The goanvil Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

     http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package nbt

import "math"

const defaultMaxSeqLen = math.MaxInt32

// Decoder drives the tag stream and produces a dynamic Compound tree
// (DecodeValue). Statically-typed records come from Unmarshal, which
// reflects that tree into the caller's Go type (§4.3).
type Decoder struct {
	r         *Reader
	maxSeqLen int32
}

// NewDecoder wraps src. The zero-value Decoder is not usable; always
// construct through NewDecoder.
func NewDecoder(src Source) *Decoder {
	return &Decoder{r: NewReader(src), maxSeqLen: defaultMaxSeqLen}
}

// SetMaxSeqLen bounds the element count accepted for any List or
// array, guarding against malicious 2^31-sized declarations (§4.3
// Option). A List's declared length is checked before any element is
// read; an array's length is checked after the array has been read.
// String lengths are not checked against this bound. A value of 0
// restores the default (no extra bound beyond the signed-32-bit wire
// limit).
func (d *Decoder) SetMaxSeqLen(n int32) {
	if n <= 0 {
		n = defaultMaxSeqLen
	}
	d.maxSeqLen = n
}

// Decode parses data as a root Compound dynamic tree.
func Decode(data []byte) (Compound, error) {
	return NewDecoder(NewSliceSource(data)).DecodeValue()
}

// DecodeValue reads one complete document (root name + root Compound)
// and returns the root as a Compound. Per §4.3, the root must be a
// Compound; anything else is ErrNoRootCompound.
func (d *Decoder) DecodeValue() (Compound, error) {
	tag, err := d.r.ReadTag()
	if err != nil {
		return nil, err
	}
	if tag != TagCompound {
		return nil, ErrNoRootCompound
	}
	if _, err := d.r.ReadString(); err != nil { // root name, discarded
		return nil, err
	}
	return d.readCompoundBody()
}

// readCompoundBody reads {tag, name, value} triples until TagEnd,
// assuming the Compound's own tag+name have already been consumed.
func (d *Decoder) readCompoundBody() (Compound, error) {
	out := make(Compound)
	for {
		tag, err := d.r.ReadTag()
		if err != nil {
			return nil, err
		}
		if tag == TagEnd {
			return out, nil
		}
		name, err := d.r.ReadString()
		if err != nil {
			return nil, err
		}
		v, err := d.readValue(tag)
		if err != nil {
			return nil, err
		}
		out[name] = v
	}
}

// readValue reads the value payload for a field already known to have
// tag t (the tag byte itself has already been consumed).
func (d *Decoder) readValue(t Tag) (Value, error) {
	switch t {
	case TagByte:
		v, err := d.r.ReadInt8()
		return Byte(v), err
	case TagShort:
		v, err := d.r.ReadInt16()
		return Short(v), err
	case TagInt:
		v, err := d.r.ReadInt32()
		return Int(v), err
	case TagLong:
		v, err := d.r.ReadInt64()
		return Long(v), err
	case TagFloat:
		v, err := d.r.ReadFloat32()
		return Float(v), err
	case TagDouble:
		v, err := d.r.ReadFloat64()
		return Double(v), err
	case TagByteArray:
		v, err := d.r.ReadByteArray()
		if err != nil {
			return nil, err
		}
		if int32(len(v)) > d.maxSeqLen {
			return nil, &TooLargeError{Declared: int32(len(v)), Max: d.maxSeqLen}
		}
		return ByteArray(v), nil
	case TagString:
		v, err := d.r.ReadString()
		return String(v), err
	case TagList:
		return d.readListValue()
	case TagCompound:
		return d.readCompoundBody()
	case TagIntArray:
		v, err := d.r.ReadIntArray()
		if err != nil {
			return nil, err
		}
		if int32(len(v)) > d.maxSeqLen {
			return nil, &TooLargeError{Declared: int32(len(v)), Max: d.maxSeqLen}
		}
		return IntArray(v), nil
	case TagLongArray:
		v, err := d.r.ReadLongArray()
		if err != nil {
			return nil, err
		}
		if int32(len(v)) > d.maxSeqLen {
			return nil, &TooLargeError{Declared: int32(len(v)), Max: d.maxSeqLen}
		}
		return LongArray(v), nil
	default:
		return nil, &InvalidTagError{Tag: byte(t)}
	}
}

// readListValue reads an element tag, a signed 32-bit length, and then
// that many values of the element tag. Per §4.3, an empty list may
// carry tag End and must be accepted regardless of what element type
// the destination expects (§8 scenario 2: a *non-empty* End-tagged
// list is still a hard error, since there is no value representation
// for TagEnd elements).
func (d *Decoder) readListValue() (Value, error) {
	elemTag, err := d.r.ReadTag()
	if err != nil {
		return nil, err
	}
	n, err := d.r.ReadInt32()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, &InvalidSizeError{Size: n}
	}
	if n > 0 && elemTag == TagEnd {
		return nil, &InvalidTagError{Tag: byte(elemTag)}
	}
	if n > d.maxSeqLen {
		return nil, &TooLargeError{Declared: n, Max: d.maxSeqLen}
	}
	items := make([]Value, n)
	for i := range items {
		v, err := d.readValue(elemTag)
		if err != nil {
			return nil, err
		}
		items[i] = v
	}
	return List{ElemTag: elemTag, Items: items}, nil
}
