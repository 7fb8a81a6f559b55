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

// RawArray is how a ByteArray/IntArray/LongArray presents itself to an
// opaque destination (an interface{}, or a map[string]any field): the
// Go form of the single-key sentinel shape, with Token holding one of
// the three sentinel keys, Data the array's raw big-endian element
// bytes, and Count its declared element count (§3.2, §9). Marshal
// accepts a RawArray directly or as the value of a single-key map
// keyed by its token. A destination that instead declares a
// concrete slice type ([]int8, []int32, []int64) receives the decoded
// element sequence directly and never sees a RawArray.
type RawArray struct {
	Token string
	Count int
	Data  []byte
}

func rawArrayFromByteArray(v ByteArray) RawArray {
	data := make([]byte, len(v))
	for i, b := range v {
		data[i] = byte(b)
	}
	return RawArray{Token: ByteArrayToken, Count: len(v), Data: data}
}

func rawArrayFromIntArray(v IntArray) RawArray {
	data := make([]byte, len(v)*4)
	for i, n := range v {
		putInt32(data[i*4:], n)
	}
	return RawArray{Token: IntArrayToken, Count: len(v), Data: data}
}

func rawArrayFromLongArray(v LongArray) RawArray {
	data := make([]byte, len(v)*8)
	for i, n := range v {
		putInt64(data[i*8:], n)
	}
	return RawArray{Token: LongArrayToken, Count: len(v), Data: data}
}

func putInt32(b []byte, v int32) {
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}

func putInt64(b []byte, v int64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (56 - 8*i))
	}
}
