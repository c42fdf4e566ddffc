/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package internal

import "golang.org/x/exp/constraints"

// Number is the set of element types accepted by the selection routines.
type Number interface {
	constraints.Integer | constraints.Float
}

// IsNaN reports whether v is a NaN. It is always false for integer types.
func IsNaN[T Number](v T) bool {
	return v != v
}

// CompareTotal compares a and b under the total order used by selection:
// NaN is greater than every other value (all NaNs are equal to each other)
// and -0.0 is equal to 0.0.
func CompareTotal[T Number](a, b T) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	aNaN, bNaN := IsNaN(a), IsNaN(b)
	if aNaN == bNaN {
		return 0
	}
	if aNaN {
		return 1
	}
	return -1
}

// MoveNaNsToEnd moves every NaN in [from, to) to the end of that range and
// returns the index of the first NaN (to when there are none). The relative
// order of the other values is not preserved.
func MoveNaNsToEnd[T Number](a []T, from, to int) int {
	end := to
	for i := from; i < end; {
		if IsNaN(a[i]) {
			end--
			a[i], a[end] = a[end], a[i]
		} else {
			i++
		}
	}
	return end
}
