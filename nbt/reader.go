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

import "encoding/binary"

// Reader consumes typed NBT primitives from a Source. It has no notion
// of tag structure; Decoder drives it according to the tag grammar.
type Reader struct {
	src Source
}

// NewReader wraps src.
func NewReader(src Source) *Reader {
	return &Reader{src: src}
}

func (r *Reader) ReadTag() (Tag, error) {
	b, err := r.src.readByte()
	if err != nil {
		return 0, err
	}
	return ParseTag(b)
}

func (r *Reader) ReadByte() (byte, error) {
	return r.src.readByte()
}

func (r *Reader) ReadInt8() (int8, error) {
	b, err := r.src.readByte()
	return int8(b), err
}

func (r *Reader) ReadInt16() (int16, error) {
	var buf [2]byte
	if err := r.src.readFull(buf[:]); err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(buf[:])), nil
}

func (r *Reader) ReadInt32() (int32, error) {
	var buf [4]byte
	if err := r.src.readFull(buf[:]); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(buf[:])), nil
}

func (r *Reader) ReadInt64() (int64, error) {
	var buf [8]byte
	if err := r.src.readFull(buf[:]); err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(buf[:])), nil
}

func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadInt32()
	return int32BitsToFloat32(v), err
}

func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.ReadInt64()
	return int64BitsToFloat64(v), err
}

// ReadBytes reads exactly n raw bytes. When the underlying Source is a
// SliceSource this borrows directly into the input buffer without a
// copy.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	return r.src.bytes(n)
}

// ReadString reads a two-byte big-endian length prefix followed by
// that many bytes of modified-UTF-8, decoding to native UTF-8 (§3.1).
func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadInt16()
	if err != nil {
		return "", err
	}
	raw, err := r.src.bytes(int(uint16(n)))
	if err != nil {
		return "", err
	}
	return decodeMUTF8(raw)
}

// ReadByteArray reads a signed 32-bit length followed by that many
// bytes.
func (r *Reader) ReadByteArray() ([]int8, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, &InvalidSizeError{Size: n}
	}
	raw, err := r.src.bytes(int(n))
	if err != nil {
		return nil, err
	}
	out := make([]int8, len(raw))
	for i, b := range raw {
		out[i] = int8(b)
	}
	return out, nil
}

// ReadIntArray reads a signed 32-bit length followed by that many
// big-endian int32 values.
func (r *Reader) ReadIntArray() ([]int32, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, &InvalidSizeError{Size: n}
	}
	out := make([]int32, n)
	for i := range out {
		v, err := r.ReadInt32()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ReadLongArray reads a signed 32-bit length followed by that many
// big-endian int64 values.
func (r *Reader) ReadLongArray() ([]int64, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, &InvalidSizeError{Size: n}
	}
	out := make([]int64, n)
	for i := range out {
		v, err := r.ReadInt64()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
