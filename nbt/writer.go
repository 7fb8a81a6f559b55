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

import (
	"bytes"
	"encoding/binary"
)

// Writer accumulates a complete NBT byte buffer. The serializer is not
// streaming (§1 Non-goals): it builds the whole document in memory and
// returns it at the end.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the accumulated buffer.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

func (w *Writer) WriteTag(t Tag) {
	w.buf.WriteByte(byte(t))
}

func (w *Writer) WriteByte(b byte) {
	w.buf.WriteByte(b)
}

func (w *Writer) WriteInt8(v int8) {
	w.buf.WriteByte(byte(v))
}

func (w *Writer) WriteInt16(v int16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], uint16(v))
	w.buf.Write(b[:])
}

func (w *Writer) WriteInt32(v int32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	w.buf.Write(b[:])
}

func (w *Writer) WriteInt64(v int64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	w.buf.Write(b[:])
}

func (w *Writer) WriteFloat32(f float32) {
	w.WriteInt32(float32ToInt32Bits(f))
}

func (w *Writer) WriteFloat64(f float64) {
	w.WriteInt64(float64ToInt64Bits(f))
}

func (w *Writer) WriteRaw(b []byte) {
	w.buf.Write(b)
}

// WriteString writes a two-byte big-endian length prefix followed by
// s re-encoded as modified-UTF-8.
func (w *Writer) WriteString(s string) {
	enc := encodeMUTF8(s)
	w.WriteInt16(int16(uint16(len(enc))))
	w.buf.Write(enc)
}

func (w *Writer) WriteByteArray(v []int8) {
	w.WriteInt32(int32(len(v)))
	for _, b := range v {
		w.WriteInt8(b)
	}
}

func (w *Writer) WriteIntArray(v []int32) {
	w.WriteInt32(int32(len(v)))
	for _, x := range v {
		w.WriteInt32(x)
	}
}

func (w *Writer) WriteLongArray(v []int64) {
	w.WriteInt32(int32(len(v)))
	for _, x := range v {
		w.WriteInt64(x)
	}
}
