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

func int32BitsToFloat32(v int32) float32 {
	return math.Float32frombits(uint32(v))
}

func int64BitsToFloat64(v int64) float64 {
	return math.Float64frombits(uint64(v))
}

func float32ToInt32Bits(f float32) int32 {
	return int32(math.Float32bits(f))
}

func float64ToInt64Bits(f float64) int64 {
	return int64(math.Float64bits(f))
}
