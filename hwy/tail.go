// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

// FullBlocks returns the number of leading elements of an n element array
// that fill whole registers of T, i.e. n rounded down to a multiple of
// MaxLanes[T]. The remaining n-FullBlocks elements form the tail.
func FullBlocks[T Lanes](n int) int {
	lanes := MaxLanes[T]()
	if lanes <= 1 {
		return n
	}
	return n - n%lanes
}
