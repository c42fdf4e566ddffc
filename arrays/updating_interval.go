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

import "sort"

// UpdatingInterval tracks the target indices that remain unresolved while a
// range is partitioned. Left and Right are the smallest and largest remaining
// targets.
type UpdatingInterval interface {
	Left() int
	Right() int
	// UpdateLeft moves the left bound to the smallest target >= k and
	// returns it. Requires Left() < k <= Right().
	UpdateLeft(k int) int
	// UpdateRight moves the right bound to the largest target <= k and
	// returns it. Requires Left() <= k < Right().
	UpdateRight(k int) int
	// SplitLeft removes the targets in [ka, kb] and splits the remainder.
	// The targets below ka are returned as a new interval; this interval
	// keeps the targets above kb. Requires Left() < ka <= kb < Right().
	SplitLeft(ka, kb int) UpdatingInterval
}

// newUpdatingInterval returns an interval over sorted, unique keys.
// A single key, a contiguous run, or keys spanning fewer than closeKeys
// positions are tracked as a range in which every index is a target.
func newUpdatingInterval(keys []int, closeKeys int) UpdatingInterval {
	n := len(keys)
	lo, hi := keys[0], keys[n-1]
	if n == 1 || hi-lo+1 == n || hi-lo < closeKeys {
		return &rangeInterval{left: lo, right: hi}
	}
	return &keyInterval{keys: keys, l: 0, r: n - 1}
}

// rangeInterval treats every index in [left, right] as a target.
type rangeInterval struct {
	left  int
	right int
}

func (r *rangeInterval) Left() int {
	return r.left
}

func (r *rangeInterval) Right() int {
	return r.right
}

func (r *rangeInterval) UpdateLeft(k int) int {
	r.left = k
	return k
}

func (r *rangeInterval) UpdateRight(k int) int {
	r.right = k
	return k
}

func (r *rangeInterval) SplitLeft(ka, kb int) UpdatingInterval {
	lower := &rangeInterval{left: r.left, right: ka - 1}
	r.left = kb + 1
	return lower
}

// keyInterval holds the targets keys[l..r] of a sorted, unique key slice.
// Intervals produced by SplitLeft share the backing slice.
type keyInterval struct {
	keys []int
	l    int
	r    int
}

func (k *keyInterval) Left() int {
	return k.keys[k.l]
}

func (k *keyInterval) Right() int {
	return k.keys[k.r]
}

func (k *keyInterval) UpdateLeft(ka int) int {
	l := k.l
	for k.keys[l] < ka {
		l++
	}
	k.l = l
	return k.keys[l]
}

func (k *keyInterval) UpdateRight(kb int) int {
	r := k.r
	for k.keys[r] > kb {
		r--
	}
	k.r = r
	return k.keys[r]
}

func (k *keyInterval) SplitLeft(ka, kb int) UpdatingInterval {
	live := k.keys[k.l : k.r+1]
	i := k.l + sort.SearchInts(live, ka)
	j := k.l + sort.SearchInts(live, kb+1)
	lower := &keyInterval{keys: k.keys, l: k.l, r: i - 1}
	k.l = j
	return lower
}
