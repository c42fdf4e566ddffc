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

package arrays

import (
	"math"
	"math/bits"
	"slices"

	"github.com/apache/commons-numbers-sub011/internal"
)

const (
	// indicesInsertionSortSize is the largest count SortIndices hands to
	// InsertionSortIndices.
	indicesInsertionSortSize = 20
	// indicesBitSetSpan bounds the span of index values, per index, for which
	// SortIndices marks indices in a bit set instead of hashing them.
	indicesBitSetSpan = 64
)

// Sort sorts a[left..right] (inclusive) in ascending order using insertion sort.
// It is intended for small ranges; NaN values must not be present.
func Sort[T internal.Number](a []T, left, right int) {
	for i := left + 1; i <= right; i++ {
		v := a[i]
		if v < a[i-1] {
			j := i - 1
			for j >= left && v < a[j] {
				a[j+1] = a[j]
				j--
			}
			a[j+1] = v
		}
	}
}

// compareExchange orders a[i] <= a[j], swapping only when out of order.
func compareExchange[T internal.Number](a []T, i, j int) {
	if a[j] < a[i] {
		a[i], a[j] = a[j], a[i]
	}
}

// Sort3 sorts the values at the given indices.
func Sort3[T internal.Number](a []T, i, j, k int) {
	compareExchange(a, i, k)
	compareExchange(a, i, j)
	compareExchange(a, j, k)
}

// Sort4 sorts the values at the given indices.
func Sort4[T internal.Number](a []T, i, j, k, l int) {
	compareExchange(a, i, j)
	compareExchange(a, k, l)
	compareExchange(a, i, k)
	compareExchange(a, j, l)
	compareExchange(a, j, k)
}

// Sort5 sorts the values at the given indices using an optimal sorting
// network of 9 compare-exchanges.
func Sort5[T internal.Number](a []T, i, j, k, l, m int) {
	compareExchange(a, i, l)
	compareExchange(a, j, m)
	compareExchange(a, i, k)
	compareExchange(a, j, l)
	compareExchange(a, i, j)
	compareExchange(a, k, m)
	compareExchange(a, j, k)
	compareExchange(a, l, m)
	compareExchange(a, k, l)
}

// LowerMedian4 places the lower median of the four values in a[j] and the
// minimum in a[i]; a[k] and a[l] receive the two largest values in any order.
// A second call on the same indices performs no swaps.
func LowerMedian4[T internal.Number](a []T, i, j, k, l int) {
	compareExchange(a, i, k)
	compareExchange(a, j, l)
	if a[j] < a[i] {
		a[i], a[j] = a[j], a[i]
		a[k], a[l] = a[l], a[k]
	}
	compareExchange(a, j, k)
}

// UpperMedian4 places the upper median of the four values in a[k] and the
// maximum in a[l]; a[i] and a[j] receive the two smallest values in any order.
// A second call on the same indices performs no swaps.
func UpperMedian4[T internal.Number](a []T, i, j, k, l int) {
	compareExchange(a, i, k)
	compareExchange(a, j, l)
	if a[l] < a[k] {
		a[k], a[l] = a[l], a[k]
		a[i], a[j] = a[j], a[i]
	}
	compareExchange(a, j, k)
}

// InsertionSortIndices sorts the first n indices of x in ascending order and
// removes duplicates. It returns the number of unique indices, which occupy
// x[:unique]. Entries in x[unique:n] are left in an unspecified state.
func InsertionSortIndices(x []int, n int) int {
	if n <= 1 {
		return max(n, 0)
	}
	unique := 1
	for i := 1; i < n; i++ {
		v := x[i]
		j := unique - 1
		if v > x[j] {
			x[unique] = v
			unique++
			continue
		}
		for j >= 0 && v < x[j] {
			j--
		}
		if j >= 0 && x[j] == v {
			continue
		}
		// insert at j+1
		copy(x[j+2:unique+1], x[j+1:unique])
		x[j+1] = v
		unique++
	}
	return unique
}

// SortIndices sorts the first n indices of x in ascending order and removes
// duplicates, returning the number of unique indices in x[:unique].
//
// Small inputs use insertion sort. Larger inputs are deduplicated first:
// with a bit set when the index values are dense, otherwise with a
// HashIndexSet, which stays compact when indices are sparse over a huge
// domain. The unique prefix is then sorted.
func SortIndices(x []int, n int) int {
	if n <= indicesInsertionSortSize {
		return InsertionSortIndices(x, n)
	}
	lo, hi := x[0], x[0]
	for _, v := range x[1:n] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	span := hi - lo + 1
	if span > 0 && span/indicesBitSetSpan <= n {
		return sortIndicesWithBitSet(x, n, lo, span)
	}
	if lo < 0 || hi > math.MaxInt32 || n > MaxHashIndexSetCapacity {
		slices.Sort(x[:n])
		return len(slices.Compact(x[:n]))
	}
	return sortIndicesWithHashSet(x, n)
}

// sortIndicesWithBitSet marks each index in a bit set over [lo, lo+span) and
// writes the set bits back in ascending order.
func sortIndicesWithBitSet(x []int, n, lo, span int) int {
	words := make([]uint64, (span+63)>>6)
	for _, v := range x[:n] {
		d := v - lo
		words[d>>6] |= 1 << (d & 63)
	}
	unique := 0
	for w, word := range words {
		for word != 0 {
			x[unique] = lo + (w << 6) + bits.TrailingZeros64(word)
			unique++
			word &= word - 1
		}
	}
	return unique
}

// sortIndicesWithHashSet compacts the first occurrence of each index to the
// front of x and sorts the unique prefix. Indices must lie in [0, MaxInt32].
func sortIndicesWithHashSet(x []int, n int) int {
	set := newHashIndexSet(n)
	unique := 0
	for i := 0; i < n; i++ {
		v := x[i]
		if set.add(v) {
			x[unique] = v
			unique++
		}
	}
	slices.Sort(x[:unique])
	return unique
}
