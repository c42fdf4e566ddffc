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

// Package testutils provides data generators and order-statistic checks
// shared by the selection tests.
package testutils

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"
	"slices"

	"github.com/cespare/xxhash/v2"

	"github.com/apache/commons-numbers-sub011/internal"
)

// nanAsInteger replaces NaN when data is converted to an integer type. It
// is larger than every other generated value.
const nanAsInteger = 1 << 24

// Distribution names a family of generated test data.
type Distribution int

const (
	Random Distribution = iota
	Sorted
	Reverse
	FewDistinct
	Sawtooth
	OrganPipe
	SpecialValues
	Constant
	MedianOf3Killer
)

// Distributions lists every Distribution.
var Distributions = []Distribution{
	Random, Sorted, Reverse, FewDistinct, Sawtooth, OrganPipe, SpecialValues, Constant, MedianOf3Killer,
}

func (d Distribution) String() string {
	switch d {
	case Random:
		return "random"
	case Sorted:
		return "sorted"
	case Reverse:
		return "reverse"
	case FewDistinct:
		return "few-distinct"
	case Sawtooth:
		return "sawtooth"
	case OrganPipe:
		return "organ-pipe"
	case SpecialValues:
		return "special-values"
	case Constant:
		return "constant"
	case MedianOf3Killer:
		return "median-of-3-killer"
	}
	return fmt.Sprintf("Distribution(%d)", int(d))
}

// Generate returns n values drawn from d. Values are non-negative and below
// 2^20 except for SpecialValues, which mixes NaN, -0.0, 0.0, -1 and 1.
func Generate(d Distribution, n int, rng *rand.Rand) []float64 {
	data := make([]float64, n)
	switch d {
	case Random:
		for i := range data {
			data[i] = rng.Float64() * (1 << 20)
		}
	case Sorted:
		for i := range data {
			data[i] = float64(i)
		}
	case Reverse:
		for i := range data {
			data[i] = float64(n - i)
		}
	case FewDistinct:
		for i := range data {
			data[i] = float64(rng.Intn(5))
		}
	case Sawtooth:
		for i := range data {
			data[i] = float64(i % 17)
		}
	case OrganPipe:
		for i := range data {
			data[i] = float64(min(i, n-i))
		}
	case SpecialValues:
		special := []float64{math.NaN(), math.Copysign(0, -1), 0, 1, -1}
		for i := range data {
			if j := rng.Intn(len(special) + 1); j < len(special) {
				data[i] = special[j]
			} else {
				data[i] = rng.Float64()
			}
		}
	case Constant:
		for i := range data {
			data[i] = 1
		}
	case MedianOf3Killer:
		// Musser's sequence defeats median-of-3 pivot selection
		k := n / 2
		for i := 1; i <= k; i++ {
			if i%2 == 1 {
				data[i-1] = float64(i)
				data[i] = float64(k + i)
			}
			data[k+i-1] = float64(2 * i)
		}
		if n%2 == 1 {
			data[n-1] = float64(n)
		}
	}
	return data
}

// IsFloat reports whether T is a floating point type.
func IsFloat[T internal.Number]() bool {
	var one T = 1
	return one/2 != 0
}

// Convert returns data as a slice of T. For integer types NaN becomes a
// value above all generated data and fractions are truncated.
func Convert[T internal.Number](data []float64) []T {
	out := make([]T, len(data))
	float := IsFloat[T]()
	for i, v := range data {
		if math.IsNaN(v) && !float {
			v = nanAsInteger
		}
		out[i] = T(v)
	}
	return out
}

// SortedCopy returns a copy of a sorted by internal.CompareTotal.
func SortedCopy[T internal.Number](a []T) []T {
	b := slices.Clone(a)
	slices.SortFunc(b, internal.CompareTotal[T])
	return b
}

// Fingerprint returns a hash of the multiset of value bit patterns in a.
// It distinguishes -0.0 from 0.0 and ignores element order.
func Fingerprint[T internal.Number](a []T) uint64 {
	words := make([]uint64, len(a))
	for i, v := range a {
		words[i] = math.Float64bits(float64(v))
	}
	slices.Sort(words)
	d := xxhash.New()
	var buf [8]byte
	for _, w := range words {
		binary.LittleEndian.PutUint64(buf[:], w)
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

// CheckSelected verifies that after is a valid result of selecting ranks ks
// of before[from:to]. Values outside the range must be untouched and the
// range must be a permutation of the input. Each rank must hold its order
// statistic with no larger value before it and no smaller value after it.
func CheckSelected[T internal.Number](before, after []T, from, to int, ks []int) error {
	if len(before) != len(after) {
		return fmt.Errorf("length changed from %d to %d", len(before), len(after))
	}
	for i := range before {
		if i >= from && i < to {
			continue
		}
		if math.Float64bits(float64(before[i])) != math.Float64bits(float64(after[i])) {
			return fmt.Errorf("index %d outside [%d, %d) changed from %v to %v", i, from, to, before[i], after[i])
		}
	}
	if Fingerprint(before[from:to]) != Fingerprint(after[from:to]) {
		return fmt.Errorf("values in [%d, %d) are not a permutation of the input", from, to)
	}
	n := to - from
	sorted := SortedCopy(before[from:to])
	// running maximum from the left and minimum from the right
	hi := make([]T, n)
	lo := make([]T, n)
	for i := 0; i < n; i++ {
		hi[i] = after[from+i]
		if i > 0 && internal.CompareTotal(hi[i-1], hi[i]) > 0 {
			hi[i] = hi[i-1]
		}
	}
	for i := n - 1; i >= 0; i-- {
		lo[i] = after[from+i]
		if i < n-1 && internal.CompareTotal(lo[i+1], lo[i]) < 0 {
			lo[i] = lo[i+1]
		}
	}
	for _, k := range ks {
		i := k - from
		v := after[k]
		if internal.CompareTotal(v, sorted[i]) != 0 {
			return fmt.Errorf("rank %d holds %v, want %v", k, v, sorted[i])
		}
		if i > 0 && internal.CompareTotal(hi[i-1], v) > 0 {
			return fmt.Errorf("value %v before rank %d is above %v", hi[i-1], k, v)
		}
		if i < n-1 && internal.CompareTotal(lo[i+1], v) < 0 {
			return fmt.Errorf("value %v after rank %d is below %v", lo[i+1], k, v)
		}
	}
	return nil
}
