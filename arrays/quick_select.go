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

	"github.com/apache/commons-numbers-sub011/internal"
)

// dualPivotMaxDepth returns the recursion budget of the dual-pivot driver for
// a range of n elements. Each dual-pivot step splits a range into up to three
// parts, so a balanced recursion has floor(log3(n)) levels.
func (s *Selector[T]) dualPivotMaxDepth(n int) int {
	return s.DepthFactor * internal.FloorLog3(n)
}

// dualPivotQuickSelect partitions a[left..right] so that every target of k
// holds its order statistic. Partitions without targets are not visited.
// The left-most sides are handled by recursion and the right-most side by
// iteration, so the stack depth is bounded by the depth in flags.
func (s *Selector[T]) dualPivotQuickSelect(a []T, left, right int, k UpdatingInterval, flags selectFlags) {
	l, r := left, right
	ka, kb := k.Left(), k.Right()
	for {
		if r-l+1 <= s.MinQuickSelectSize || min(kb-l, r-ka) < s.SortSelectSize {
			s.sortSelect(a, l, r, ka, kb)
			return
		}
		if kb-ka < s.SortSelectSize {
			s.quickSelectAdaptive(a, l, r, ka, kb, flags.mode())
			return
		}
		if flags.depth() <= 0 || flags.mode() == ModeStrict {
			s.selectStrict(a, l, r, k)
			return
		}

		//   p0  p1        p2  p3
		// |<P1|==P1|P1<x<P2|==P2|>P2|
		p0, p1, p2, p3 := s.dualPivotPartition(a, l, r, flags.mode())
		flags = flags.descend()

		if ka < p0 {
			if kb <= p1 {
				r = p0 - 1
				if r < kb {
					kb = k.UpdateRight(r)
				}
				continue
			}
			s.dualPivotQuickSelect(a, l, p0-1, k.SplitLeft(p0, p1), flags)
			ka = k.Left()
		} else if kb <= p1 {
			return
		} else if ka <= p1 {
			ka = k.UpdateLeft(p1 + 1)
		}

		if ka < p2 {
			l = p1 + 1
			if kb <= p3 {
				r = p2 - 1
				if r < kb {
					kb = k.UpdateRight(r)
				}
				continue
			}
			s.dualPivotQuickSelect(a, l, p2-1, k.SplitLeft(p2, p3), flags)
			ka = k.Left()
		} else if kb <= p3 {
			return
		} else if ka <= p3 {
			ka = k.UpdateLeft(p3 + 1)
		}
		l = p3 + 1
	}
}

// selectStrict resolves the targets of k in a[left..right] without pivot
// sampling. Targets near an edge use heap-select; otherwise the midpoint of
// the targets is selected in linear time and both halves are processed,
// for O(n log m) total work over m target positions.
func (s *Selector[T]) selectStrict(a []T, left, right int, k UpdatingInterval) {
	l, r := left, right
	for {
		ka, kb := k.Left(), k.Right()
		edge := min(kb-l, r-ka)
		if r-l+1 <= s.MinQuickSelectSize || edge < s.SortSelectSize {
			s.sortSelect(a, l, r, ka, kb)
			return
		}
		if edge < s.HeapSelectSize {
			heapSelect(a, l, r, ka, kb)
			return
		}
		if kb-ka < s.SortSelectSize {
			s.quickSelectAdaptive(a, l, r, ka, kb, ModeStrict)
			return
		}
		m := int(uint(ka+kb) >> 1)
		s.quickSelectAdaptive(a, l, r, m, m, ModeStrict)
		s.selectStrict(a, l, m-1, k.SplitLeft(m, m))
		l = m + 1
	}
}

// quickSelectAdaptive partitions a[left..right] so that every index in
// [ka, kb] holds its order statistic, using single-pivot 3-way partitioning.
// The mode is escalated towards ModeStrict when a step fails to discard at
// least 1/8 of the range.
func (s *Selector[T]) quickSelectAdaptive(a []T, left, right, ka, kb int, mode Mode) {
	l, r := left, right
	for {
		n := r - l + 1
		if n <= s.MinQuickSelectSize || min(kb-l, r-ka) < s.SortSelectSize {
			s.sortSelect(a, l, r, ka, kb)
			return
		}
		k := int(uint(ka+kb) >> 1)
		p0, p1 := s.pivotStep(a, l, r, k, mode)
		switch {
		case kb < p0:
			r = p0 - 1
		case ka > p1:
			l = p1 + 1
		default:
			// the targets overlap the pivot block
			if ka < p0 {
				s.quickSelectAdaptive(a, l, p0-1, ka, p0-1, mode)
			}
			if kb <= p1 {
				return
			}
			l = p1 + 1
			ka = l
		}
		if mode < ModeStrict && (r-l+1)*8 > n*7 {
			mode = max(mode+1, ModeAdaption)
		}
	}
}

// pivotStep chooses a pivot for target k and 3-way partitions a[left..right]
// around it, returning the inclusive bounds of the block equal to the pivot.
func (s *Selector[T]) pivotStep(a []T, left, right, k int, mode Mode) (int, int) {
	n := right - left + 1
	switch {
	case mode == ModeFRSampling && n > s.FRSamplingThreshold:
		ll, rr := floydRivestWindow(left, right, k)
		s.quickSelectAdaptive(a, ll, rr, k, k, mode)
		return expandPartition(a, left, right, k, k, k, k)
	case mode <= ModeSampling:
		return sampledPartition(a, left, right)
	}
	s9, e9 := repeatedStep(a, left, right)
	f2 := e9 - s9 + 1
	m := s9 + f2>>1
	if mode == ModeAdaption {
		// pivot rank within the sample follows the target, away from its edges
		m = s9 + (k-left)*f2/n
		m = min(max(m, s9+f2>>2), e9-f2>>2)
	}
	s.quickSelectAdaptive(a, s9, e9, m, m, mode)
	return expandPartition(a, left, right, m, m, m, m)
}

// floydRivestWindow returns the sub-range of [left, right] whose order
// statistic at k estimates the order statistic of the whole range at k.
func floydRivestWindow(left, right, k int) (int, int) {
	n := float64(right - left + 1)
	m := float64(k - left + 1)
	z := math.Log(n)
	s := 0.5 * math.Exp(2*z/3)
	sd := 0.5 * math.Sqrt(z*s*(n-s)/n)
	if m < n/2 {
		sd = -sd
	}
	kf := float64(k)
	ll := max(left, int(math.Floor(kf-m*s/n+sd)))
	rr := min(right, int(math.Floor(kf+(n-m)*s/n+sd)))
	return min(ll, k), max(rr, k)
}

// sortSelect resolves [ka, kb] by sorting the shorter end of the range up to
// the targets. Small ranges are sorted entirely.
func (s *Selector[T]) sortSelect(a []T, left, right, ka, kb int) {
	if right-left <= s.SortSelectSize {
		Sort(a, left, right)
		return
	}
	if kb-left < right-ka {
		sortSelectLeft(a, left, right, kb)
	} else {
		sortSelectRight(a, left, right, ka)
	}
}

// sortSelectLeft sorts a[left..k] so that it holds the smallest values of
// a[left..right] in order.
func sortSelectLeft[T Number](a []T, left, right, k int) {
	Sort(a, left, k)
	for i := k + 1; i <= right; i++ {
		v := a[i]
		if v < a[k] {
			a[i] = a[k]
			j := k
			for j > left && v < a[j-1] {
				a[j] = a[j-1]
				j--
			}
			a[j] = v
		}
	}
}

// sortSelectRight sorts a[k..right] so that it holds the largest values of
// a[left..right] in order.
func sortSelectRight[T Number](a []T, left, right, k int) {
	Sort(a, k, right)
	for i := k - 1; i >= left; i-- {
		v := a[i]
		if a[k] < v {
			a[i] = a[k]
			j := k
			for j < right && a[j+1] < v {
				a[j] = a[j+1]
				j++
			}
			a[j] = v
		}
	}
}

// heapSelect resolves [ka, kb] in a[left..right] with a bounded heap built on
// the shorter end of the range. The cost is independent of the data order.
// If the targets already hold their order statistics nothing is written.
func heapSelect[T Number](a []T, left, right, ka, kb int) {
	if right <= left || isSelected(a, left, right, ka, kb) {
		return
	}
	if kb-left < right-ka {
		heapSelectLeft(a, left, right, kb, kb-ka)
	} else {
		heapSelectRight(a, left, right, ka, kb-ka)
	}
}

// isSelected reports whether a[ka..kb] is sorted, no value in a[left..ka-1]
// exceeds a[ka] and no value in a[kb+1..right] is below a[kb].
func isSelected[T Number](a []T, left, right, ka, kb int) bool {
	for i := ka; i < kb; i++ {
		if a[i+1] < a[i] {
			return false
		}
	}
	lo := a[ka]
	for i := left; i < ka; i++ {
		if lo < a[i] {
			return false
		}
	}
	hi := a[kb]
	for i := kb + 1; i <= right; i++ {
		if a[i] < hi {
			return false
		}
	}
	return true
}

// heapSelectLeft places the order statistics [k-count, k] of a[left..right].
// A max-heap rooted at left holds the smallest k-left+1 values; the largest
// count+1 of them are then extracted into place.
func heapSelectLeft[T Number](a []T, left, right, k, count int) {
	end := k + 1
	for p := left + (k-left-1)>>1; p >= left; p-- {
		maxHeapSiftDown(a, a[p], p, left, end)
	}
	// backward sweep limits the work on descending data
	top := a[left]
	for i := right; i > k; i-- {
		v := a[i]
		if v < top {
			a[i] = top
			maxHeapSiftDown(a, v, left, left, end)
			top = a[left]
		}
	}
	last := max(left, k-count-1)
	for end--; end > last; end-- {
		maxHeapSiftDown(a, a[end], left, left, end)
		a[end] = top
		top = a[left]
	}
}

// heapSelectRight places the order statistics [k, k+count] of a[left..right]
// using a min-heap rooted at right.
func heapSelectRight[T Number](a []T, left, right, k, count int) {
	end := k - 1
	for p := right - (right-k-1)>>1; p <= right; p++ {
		minHeapSiftDown(a, a[p], p, right, end)
	}
	bottom := a[right]
	for i := left; i < k; i++ {
		v := a[i]
		if bottom < v {
			a[i] = bottom
			minHeapSiftDown(a, v, right, right, end)
			bottom = a[right]
		}
	}
	last := min(right, k+count+1)
	for end++; end < last; end++ {
		minHeapSiftDown(a, a[end], right, right, end)
		a[end] = bottom
		bottom = a[right]
	}
}

// maxHeapSiftDown places v at p in the max-heap a[root..end) and sifts it
// down. Children of p are at 2p-root+1 and 2p-root+2.
func maxHeapSiftDown[T Number](a []T, v T, p, root, end int) {
	for {
		c := 2*p - root + 1
		if c >= end {
			break
		}
		if c+1 < end && a[c] < a[c+1] {
			c++
		}
		if !(v < a[c]) {
			break
		}
		a[p] = a[c]
		p = c
	}
	a[p] = v
}

// minHeapSiftDown places v at p in the min-heap a(end..root] and sifts it
// down. Children of p are at 2p-root-1 and 2p-root-2.
func minHeapSiftDown[T Number](a []T, v T, p, root, end int) {
	for {
		c := 2*p - root - 1
		if c <= end {
			break
		}
		if c-1 > end && a[c-1] < a[c] {
			c--
		}
		if !(a[c] < v) {
			break
		}
		a[p] = a[c]
		p = c
	}
	a[p] = v
}
