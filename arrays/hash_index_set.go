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
	"encoding/binary"
	"fmt"
	"math"

	"github.com/twmb/murmur3"

	"github.com/apache/commons-numbers-sub011/internal"
)

// MaxHashIndexSetCapacity is the largest capacity accepted by NewHashIndexSet.
const MaxHashIndexSetCapacity = 1 << 29

const (
	hashIndexSetMinSize = 16
	hashIndexSetSeed    = uint64(9001)
)

// HashIndexSet is an open-addressing set of non-negative int32 indices.
//
// The table length is the smallest power of 2 holding twice the requested
// capacity, so the load factor is at most 0.5 at capacity. Entries beyond
// capacity are accepted until three quarters of the table is used, after
// which Add reports ErrCapacityExhausted. There is no removal.
type HashIndexSet struct {
	// set holds ^index so that the zero value marks a free slot
	set     []int32
	mask    int
	size    int
	limit   int
	scratch [4]byte
}

// NewHashIndexSet returns an empty set sized for capacity indices.
func NewHashIndexSet(capacity int) (*HashIndexSet, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: negative capacity %d", ErrInvalidRange, capacity)
	}
	if capacity > MaxHashIndexSetCapacity {
		return nil, fmt.Errorf("%w: %d exceeds %d", ErrUnsupportedCapacity, capacity, MaxHashIndexSetCapacity)
	}
	return newHashIndexSet(capacity), nil
}

func newHashIndexSet(capacity int) *HashIndexSet {
	size := max(hashIndexSetMinSize, internal.CeilPowerOf2(2*capacity))
	return &HashIndexSet{
		set:   make([]int32, size),
		mask:  size - 1,
		limit: size - size>>2,
	}
}

// Add inserts index i and reports whether it was absent.
func (s *HashIndexSet) Add(i int) (bool, error) {
	if i < 0 || i > math.MaxInt32 {
		return false, fmt.Errorf("%w: index %d", ErrIndexOutOfBounds, i)
	}
	key := ^int32(i)
	p := s.probe(key)
	if s.set[p] == key {
		return false, nil
	}
	if s.size == s.limit {
		return false, fmt.Errorf("%w: %d entries in a table of %d", ErrCapacityExhausted, s.size, len(s.set))
	}
	s.set[p] = key
	s.size++
	return true, nil
}

// add is Add for a validated index in a set that cannot fill up.
func (s *HashIndexSet) add(i int) bool {
	key := ^int32(i)
	p := s.probe(key)
	if s.set[p] == key {
		return false
	}
	s.set[p] = key
	s.size++
	return true
}

// Contains reports whether index i is in the set.
func (s *HashIndexSet) Contains(i int) bool {
	if i < 0 || i > math.MaxInt32 {
		return false
	}
	key := ^int32(i)
	return s.set[s.probe(key)] == key
}

// Len returns the number of indices in the set.
func (s *HashIndexSet) Len() int {
	return s.size
}

// probe returns the slot holding key, or the free slot where it belongs.
func (s *HashIndexSet) probe(key int32) int {
	binary.LittleEndian.PutUint32(s.scratch[:], uint32(^key))
	p := int(murmur3.SeedSum64(hashIndexSetSeed, s.scratch[:])) & s.mask
	for {
		v := s.set[p]
		if v == key || v == 0 {
			return p
		}
		p = (p + 1) & s.mask
	}
}
