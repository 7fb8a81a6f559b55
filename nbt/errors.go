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
	"errors"
	"fmt"
)

// ErrNoRootCompound is returned when a document does not begin with a
// Compound tag.
var ErrNoRootCompound = errors.New("nbt: no root compound")

// ErrNonunicodeString is returned when a string's modified-UTF-8 bytes
// cannot be decoded.
var ErrNonunicodeString = errors.New("nbt: string was not valid modified-UTF-8")

// ErrListTypeMismatch is returned by the serializer when a sequence
// presents mixed element tags mid-stream.
var ErrListTypeMismatch = errors.New("nbt: list elements do not share a single tag")

// InvalidTagError is returned when a tag byte on the wire is not one of
// the thirteen defined tags (§3.1, §8).
type InvalidTagError struct {
	Tag byte
}

func (e *InvalidTagError) Error() string {
	return fmt.Sprintf("nbt: invalid tag byte: %d", e.Tag)
}

// InvalidSizeError is returned when a length prefix (list length, array
// length) is negative or otherwise cannot be a valid size.
type InvalidSizeError struct {
	Size int32
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("nbt: invalid size: %d", e.Size)
}

// IntegralOutOfRangeError is returned when a numeric narrowing
// conversion (e.g. narrowing a Short into a Go int8 field) would lose
// information.
type IntegralOutOfRangeError struct {
	Value   int64
	DestTag Tag
}

func (e *IntegralOutOfRangeError) Error() string {
	return fmt.Sprintf("nbt: value %d does not fit in destination for tag %s", e.Value, e.DestTag)
}

// TooLargeError is returned when a declared sequence length exceeds a
// configured maximum, guarding against malicious 2^31-sized
// declarations (§4.3 Option).
type TooLargeError struct {
	Declared int32
	Max      int32
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("nbt: declared length %d exceeds maximum %d", e.Declared, e.Max)
}

// MessageError wraps a bespoke message reported by a visitor or target
// type, e.g. "required field missing".
type MessageError struct {
	Msg string
}

func (e *MessageError) Error() string { return "nbt: " + e.Msg }
