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

// expandPartition extends a 3-way partition of a[start..end] to a[left..right].
//
// On entry a[start..pivot0-1] < P, a[pivot0..pivot1] == P and
// a[pivot1+1..end] > P where P is the value at pivot0. On return the same
// holds over [left, right] for the returned bounds of the block equal to P.
// Each element outside [start, end] is visited once.
func expandPartition[T Number](a []T, left, right, start, end, pivot0, pivot1 int) (int, int) {
	p0, p1 := pivot0, pivot1
	pv := a[p0]
	for i := start - 1; i >= left; i-- {
		v := a[i]
		if v < pv {
			continue
		}
		// open a slot at the bottom of the pivot block
		p0--
		a[i] = a[p0]
		if v == pv {
			a[p0] = v
		} else {
			// shift the pivot block down to make room above it
			a[p0] = a[p1]
			a[p1] = v
			p1--
		}
	}
	for j := end + 1; j <= right; j++ {
		v := a[j]
		if v > pv {
			continue
		}
		p1++
		a[j] = a[p1]
		if v == pv {
			a[p1] = v
		} else {
			a[p1] = a[p0]
			a[p0] = v
			p0++
		}
	}
	return p0, p1
}

// sampledPartition moves five strided samples to the centre of the range,
// sorts them and partitions a[left..right] around their median.
// Requires at least 17 elements.
func sampledPartition[T Number](a []T, left, right int) (int, int) {
	n := right - left + 1
	c := left + n>>1
	q := (n - 1) >> 2
	for i, e := range [5]int{left, left + q, c, right - q, right} {
		a[c-2+i], a[e] = a[e], a[c-2+i]
	}
	Sort5(a, c-2, c-1, c, c+1, c+2)
	pv := a[c]
	p0, p1 := c, c
	for p0 > c-2 && a[p0-1] == pv {
		p0--
	}
	for p1 < c+2 && a[p1+1] == pv {
		p1++
	}
	return expandPartition(a, left, right, c-2, c+2, p0, p1)
}

// repeatedStep computes medians of 3 over the range into its middle third,
// then medians of 3 of those into the middle ninth, and returns the bounds
// of that ninth. The median of the ninth is greater than or equal to, and
// less than or equal to, at least 2/9 of the range each.
func repeatedStep[T Number](a []T, left, right int) (int, int) {
	n := right - left + 1
	f := n / 3
	for i := left + f; i < left+2*f; i++ {
		Sort3(a, i-f, i, i+f)
	}
	f2 := f / 3
	s := left + f + f2
	for j := s; j < s+f2; j++ {
		Sort3(a, j-f2, j, j+f2)
	}
	return s, s + f2 - 1
}

// dualPivotPartition chooses two pivots P1 <= P2 and partitions
// a[left..right] into five blocks:
//
//	[left, p0) < P1, [p0, p1] == P1, (p1, p2) in (P1, P2), [p2, p3] == P2, (p3, right] > P2
//
// When the pivots are equal a single-pivot partition is returned with
// p2 = p1+1 and p3 = p1, leaving the middle and right-pivot blocks empty.
func (s *Selector[T]) dualPivotPartition(a []T, left, right int, mode Mode) (int, int, int, int) {
	n := right - left + 1
	var i1, i2 int
	if sz := min(s.FRSampleSize, n/8); mode == ModeFRSampling && n > s.FRSamplingThreshold && sz >= 3 {
		// gather a strided sub-sample at the left end and take its tertiles
		stride := n / sz
		for i := 1; i < sz; i++ {
			a[left+i], a[left+i*stride] = a[left+i*stride], a[left+i]
		}
		i1, i2 = left+sz/3, left+2*sz/3
		s.quickSelectAdaptive(a, left, left+sz-1, i2, i2, mode)
		s.quickSelectAdaptive(a, left, i2-1, i1, i1, mode)
	} else {
		sixth := n / 6
		c := left + n>>1
		Sort5(a, c-2*sixth, c-sixth, c, c+sixth, c+2*sixth)
		i1, i2 = c-sixth, c+sixth
	}
	p1v, p2v := a[i1], a[i2]
	if p1v == p2v {
		p0, p1 := expandPartition(a, left, right, i1, i1, i1, i1)
		return p0, p1, p1 + 1, p1
	}

	// [left, lt) < P1, (gt, right] > P2
	lt, gt := left, right
	for i := left; i <= gt; {
		v := a[i]
		if v < p1v {
			a[i] = a[lt]
			a[lt] = v
			lt++
			i++
		} else if v > p2v {
			a[i] = a[gt]
			a[gt] = v
			gt--
		} else {
			i++
		}
	}
	// group the pivot values at the ends of [lt, gt]
	lo, hi := lt, gt
	for i := lt; i <= hi; {
		v := a[i]
		if v == p1v {
			a[i] = a[lo]
			a[lo] = v
			lo++
			i++
		} else if v == p2v {
			a[i] = a[hi]
			a[hi] = v
			hi--
		} else {
			i++
		}
	}
	return lt, lo - 1, hi + 1, gt
}
