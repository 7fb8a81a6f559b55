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
	"fmt"
	"reflect"
)

// Marshal converts v, a struct, map, or Value, to a complete NBT
// document: a single root Compound with an empty name, preceded by
// its tag byte (§3.2). Serialization is not streaming (§1 Non-goals):
// the whole buffer is built in memory before being returned.
func Marshal(v any) ([]byte, error) {
	val, err := goToValue(reflect.ValueOf(v))
	if err != nil {
		return nil, err
	}
	comp, ok := val.(Compound)
	if !ok {
		return nil, &MessageError{Msg: fmt.Sprintf("root value must encode to a Compound, got %s", val.Tag())}
	}
	return EncodeValue(comp)
}

// EncodeValue serializes root as a complete document: TagCompound,
// the empty root name, root's fields, and the terminating TagEnd.
func EncodeValue(root Compound) ([]byte, error) {
	w := NewWriter()
	w.WriteTag(TagCompound)
	w.WriteString("")
	if err := writeCompoundBody(w, root); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func writeCompoundBody(w *Writer, c Compound) error {
	for name, v := range c {
		if v == nil {
			continue
		}
		w.WriteTag(v.Tag())
		w.WriteString(name)
		if err := writeValuePayload(w, v); err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
	}
	w.WriteTag(TagEnd)
	return nil
}

func writeValuePayload(w *Writer, v Value) error {
	switch x := v.(type) {
	case Byte:
		w.WriteInt8(int8(x))
	case Short:
		w.WriteInt16(int16(x))
	case Int:
		w.WriteInt32(int32(x))
	case Long:
		w.WriteInt64(int64(x))
	case Float:
		w.WriteFloat32(float32(x))
	case Double:
		w.WriteFloat64(float64(x))
	case String:
		w.WriteString(string(x))
	case ByteArray:
		w.WriteByteArray([]int8(x))
	case IntArray:
		w.WriteIntArray([]int32(x))
	case LongArray:
		w.WriteLongArray([]int64(x))
	case Compound:
		return writeCompoundBody(w, x)
	case List:
		return writeList(w, x)
	default:
		return &MessageError{Msg: fmt.Sprintf("unsupported value type for tag %s", v.Tag())}
	}
	return nil
}

func writeList(w *Writer, l List) error {
	elemTag := l.ElemTag
	if len(l.Items) == 0 {
		elemTag = TagEnd
	}
	w.WriteTag(elemTag)
	w.WriteInt32(int32(len(l.Items)))
	for i, item := range l.Items {
		if item.Tag() != elemTag {
			return ErrListTypeMismatch
		}
		if err := writeValuePayload(w, item); err != nil {
			return fmt.Errorf("index %d: %w", i, err)
		}
	}
	return nil
}

// goToValue converts an arbitrary Go value to its Value representation,
// choosing a tag from the source type as described in §4.4: integer
// widths map to Byte/Short/Int/Long, float widths to Float/Double,
// strings to String, sequences to List (tag from the first element,
// or TagEnd if empty), maps/structs to Compound, and the three
// RawArray sentinel shapes to the corresponding typed Array.
func goToValue(rv reflect.Value) (Value, error) {
	if !rv.IsValid() {
		return nil, nil
	}
	if v, ok := rv.Interface().(Value); ok {
		return v, nil
	}
	if ra, ok := rv.Interface().(RawArray); ok {
		return rawArrayToValue(ra)
	}
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
		return goToValue(rv.Elem())
	case reflect.Bool:
		if rv.Bool() {
			return Byte(1), nil
		}
		return Byte(0), nil
	case reflect.Int8:
		return Byte(rv.Int()), nil
	case reflect.Int16:
		return Short(rv.Int()), nil
	case reflect.Int32, reflect.Int:
		return Int(rv.Int()), nil
	case reflect.Int64:
		return Long(rv.Int()), nil
	case reflect.Uint8:
		return Byte(rv.Uint()), nil
	case reflect.Uint16:
		return Short(rv.Uint()), nil
	case reflect.Uint32:
		return Int(rv.Uint()), nil
	case reflect.Uint64, reflect.Uint:
		return Long(rv.Uint()), nil
	case reflect.Float32:
		return Float(rv.Float()), nil
	case reflect.Float64:
		return Double(rv.Float()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Map:
		return mapToValue(rv)
	case reflect.Struct:
		return structToValue(rv)
	case reflect.Slice, reflect.Array:
		return sliceToValue(rv)
	default:
		return nil, &MessageError{Msg: fmt.Sprintf("cannot encode Go kind %s", rv.Kind())}
	}
}

func rawArrayToValue(ra RawArray) (Value, error) {
	switch ra.Token {
	case ByteArrayToken:
		out := make(ByteArray, ra.Count)
		for i := range out {
			out[i] = int8(ra.Data[i])
		}
		return out, nil
	case IntArrayToken:
		out := make(IntArray, ra.Count)
		for i := range out {
			out[i] = int32(uint32(ra.Data[i*4])<<24 | uint32(ra.Data[i*4+1])<<16 | uint32(ra.Data[i*4+2])<<8 | uint32(ra.Data[i*4+3]))
		}
		return out, nil
	case LongArrayToken:
		out := make(LongArray, ra.Count)
		for i := range out {
			var v int64
			for b := 0; b < 8; b++ {
				v = v<<8 | int64(ra.Data[i*8+b])
			}
			out[i] = v
		}
		return out, nil
	default:
		return nil, &MessageError{Msg: fmt.Sprintf("unknown RawArray token %q", ra.Token)}
	}
}

// mapToValue recognizes the single-key sentinel-array shape described
// in §3.2/§9 in addition to the general Compound case.
func mapToValue(rv reflect.Value) (Value, error) {
	if rv.Len() == 1 && rv.Type().Key().Kind() == reflect.String {
		iter := rv.MapRange()
		iter.Next()
		key := iter.Key().String()
		if key == ByteArrayToken || key == IntArrayToken || key == LongArrayToken {
			ra, ok := iter.Value().Interface().(RawArray)
			if ok {
				return rawArrayToValue(ra)
			}
		}
	}
	out := make(Compound, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		v, err := goToValue(iter.Value())
		if err != nil {
			return nil, err
		}
		if v == nil {
			continue
		}
		out[iter.Key().String()] = v
	}
	return out, nil
}

func structToValue(rv reflect.Value) (Value, error) {
	t := rv.Type()
	out := make(Compound, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue
		}
		ft := parseFieldTag(f)
		if ft.skip {
			continue
		}
		if ft.remain {
			rem := rv.Field(i)
			if rem.Kind() == reflect.Map {
				iter := rem.MapRange()
				for iter.Next() {
					if v, ok := iter.Value().Interface().(Value); ok {
						out[iter.Key().String()] = v
					}
				}
			}
			continue
		}
		v, err := goToValue(rv.Field(i))
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", ft.name, err)
		}
		if v == nil {
			continue
		}
		out[ft.name] = v
	}
	return out, nil
}

func sliceToValue(rv reflect.Value) (Value, error) {
	// Only []byte/[]int8 map to a typed array here: fastnbt's serde (and
	// §4.4) treats a plain Go slice as a List, tag derived from its first
	// element. IntArray/LongArray come only from the RawArray sentinel
	// shapes and the nbt.IntArray/nbt.LongArray wrapper types themselves,
	// both already handled above via the Value/RawArray type switches.
	switch rv.Type().Elem().Kind() {
	case reflect.Int8:
		out := make(ByteArray, rv.Len())
		for i := range out {
			out[i] = int8(rv.Index(i).Int())
		}
		return out, nil
	case reflect.Uint8:
		out := make(ByteArray, rv.Len())
		for i := range out {
			out[i] = int8(rv.Index(i).Uint())
		}
		return out, nil
	}
	items := make([]Value, rv.Len())
	var elemTag Tag
	for i := range items {
		v, err := goToValue(rv.Index(i))
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		items[i] = v
		if i == 0 && v != nil {
			elemTag = v.Tag()
		}
	}
	return List{ElemTag: elemTag, Items: items}, nil
}
