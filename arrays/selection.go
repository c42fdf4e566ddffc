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
	"fmt"
	"sort"

	"github.com/apache/commons-numbers-sub011/internal"
)

// Select partially sorts a so that a[k] holds the value it would hold if a
// were fully sorted, every value before it is <= a[k] and every value after
// it is >= a[k]. NaN sorts above all other values and -0.0 equals 0.0.
func (s *Selector[T]) Select(a []T, k int) error {
	return s.SelectRange(a, 0, len(a), k)
}

// SelectRange is Select restricted to a[from:to]. The rank k is an index of
// a and must lie in [from, to). Values outside the range are not touched.
func (s *Selector[T]) SelectRange(a []T, from, to, k int) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := checkFromToIndex(from, to, len(a)); err != nil {
		return err
	}
	if err := checkIndex(k, from, to); err != nil {
		return err
	}
	end, ok := s.prepare(a, from, to, k)
	if ok {
		s.quickSelectAdaptive(a, from, end-1, k, k, s.Mode)
	}
	return nil
}

// SelectIndices partially sorts a so that every rank in k holds its order
// statistic. On success k[:unique] holds the sorted, distinct ranks, where
// unique is the number of distinct ranks. On error neither a nor k is
// modified.
func (s *Selector[T]) SelectIndices(a []T, k []int) error {
	return s.SelectRangeIndices(a, 0, len(a), k)
}

// SelectRangeIndices is SelectIndices restricted to a[from:to]. Every rank
// must lie in [from, to).
func (s *Selector[T]) SelectRangeIndices(a []T, from, to int, k []int) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := checkFromToIndex(from, to, len(a)); err != nil {
		return err
	}
	for _, i := range k {
		if err := checkIndex(i, from, to); err != nil {
			return err
		}
	}
	if len(k) == 0 {
		return nil
	}
	unique := SortIndices(k, len(k))
	keys := k[:unique]

	end, ok := s.prepare(a, from, to, keys[0])
	if !ok {
		return nil
	}
	// ranks inside the NaN block are already in place
	keys = keys[:sort.SearchInts(keys, end)]
	if len(keys) == 1 {
		s.quickSelectAdaptive(a, from, end-1, keys[0], keys[0], s.Mode)
		return nil
	}
	right := end - 1
	s.dualPivotQuickSelect(a, from, right, newUpdatingInterval(keys, s.SortSelectSize),
		newSelectFlags(s.Mode, s.dualPivotMaxDepth(right-from+1)))
	return nil
}

// prepare moves NaNs to the end of a[from:to] and returns the end of the
// remaining values. It reports false when no partitioning is needed, either
// because fewer than two values remain or the lowest rank is at or past the
// first NaN.
func (s *Selector[T]) prepare(a []T, from, to, lowest int) (int, bool) {
	if to-from < 2 {
		return to, false
	}
	end := internal.MoveNaNsToEnd(a, from, to)
	return end, end-from >= 2 && lowest < end
}

func checkFromToIndex(from, to, length int) error {
	if from < 0 || from > to || to > length {
		return fmt.Errorf("%w: [%d, %d) of length %d", ErrInvalidRange, from, to, length)
	}
	return nil
}

func checkIndex(k, from, to int) error {
	if k < from || k >= to {
		return fmt.Errorf("%w: %d not in [%d, %d)", ErrIndexOutOfBounds, k, from, to)
	}
	return nil
}

// Select partially sorts a around rank k using the default configuration.
func Select[T Number](a []T, k int) error {
	s := Selector[T]{Config: DefaultConfig()}
	return s.Select(a, k)
}

// SelectRange partially sorts a[from:to] around rank k using the default
// configuration.
func SelectRange[T Number](a []T, from, to, k int) error {
	s := Selector[T]{Config: DefaultConfig()}
	return s.SelectRange(a, from, to, k)
}

// SelectIndices partially sorts a around every rank in k using the default
// configuration.
func SelectIndices[T Number](a []T, k []int) error {
	s := Selector[T]{Config: DefaultConfig()}
	return s.SelectIndices(a, k)
}

// SelectRangeIndices partially sorts a[from:to] around every rank in k using
// the default configuration.
func SelectRangeIndices[T Number](a []T, from, to int, k []int) error {
	s := Selector[T]{Config: DefaultConfig()}
	return s.SelectRangeIndices(a, from, to, k)
}
