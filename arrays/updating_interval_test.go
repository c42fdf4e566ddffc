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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUpdatingInterval(t *testing.T) {
	testCases := []struct {
		name      string
		keys      []int
		closeKeys int
		isRange   bool
	}{
		{name: "single key", keys: []int{5}, closeKeys: 20, isRange: true},
		{name: "contiguous", keys: []int{3, 4, 5, 6}, closeKeys: 0, isRange: true},
		{name: "close keys", keys: []int{10, 15, 29}, closeKeys: 20, isRange: true},
		{name: "sparse keys", keys: []int{10, 15, 30}, closeKeys: 20, isRange: false},
		{name: "sparse with no threshold", keys: []int{1, 3}, closeKeys: 0, isRange: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			k := newUpdatingInterval(tc.keys, tc.closeKeys)
			_, isRange := k.(*rangeInterval)
			assert.Equal(t, tc.isRange, isRange)
			assert.Equal(t, tc.keys[0], k.Left())
			assert.Equal(t, tc.keys[len(tc.keys)-1], k.Right())
		})
	}
}

func TestRangeInterval(t *testing.T) {
	k := newUpdatingInterval([]int{10, 20}, 100)
	assert.Equal(t, 10, k.Left())
	assert.Equal(t, 20, k.Right())

	assert.Equal(t, 12, k.UpdateLeft(12))
	assert.Equal(t, 18, k.UpdateRight(18))

	lower := k.SplitLeft(14, 15)
	assert.Equal(t, 12, lower.Left())
	assert.Equal(t, 13, lower.Right())
	assert.Equal(t, 16, k.Left())
	assert.Equal(t, 18, k.Right())
}

func TestKeyInterval(t *testing.T) {
	keys := []int{2, 8, 9, 15, 40, 41, 70, 99}
	k := newUpdatingInterval(keys, 0)
	assert.Equal(t, 2, k.Left())
	assert.Equal(t, 99, k.Right())

	// moves to the smallest key >= 3
	assert.Equal(t, 8, k.UpdateLeft(3))
	// an exact key is kept
	assert.Equal(t, 9, k.UpdateLeft(9))
	// moves to the largest key <= 98
	assert.Equal(t, 70, k.UpdateRight(98))
	assert.Equal(t, 9, k.Left())
	assert.Equal(t, 70, k.Right())

	// keys in [15, 40] are resolved by a pivot block
	lower := k.SplitLeft(12, 40)
	assert.Equal(t, 9, lower.Left())
	assert.Equal(t, 9, lower.Right())
	assert.Equal(t, 41, k.Left())
	assert.Equal(t, 70, k.Right())

	// a split between keys removes none of them
	lower = k.SplitLeft(50, 60)
	assert.Equal(t, 41, lower.Left())
	assert.Equal(t, 41, lower.Right())
	assert.Equal(t, 70, k.Left())
	assert.Equal(t, 70, k.Right())
}

func TestKeyIntervalSplitShareKeys(t *testing.T) {
	keys := []int{1, 5, 10, 20, 30, 50}
	k := newUpdatingInterval(keys, 0)
	lower := k.SplitLeft(10, 10)
	upper := k

	assert.Equal(t, 1, lower.Left())
	assert.Equal(t, 5, lower.Right())
	assert.Equal(t, 20, upper.Left())
	assert.Equal(t, 50, upper.Right())

	// updates on one side do not move the other
	assert.Equal(t, 5, lower.UpdateLeft(2))
	assert.Equal(t, 30, upper.UpdateRight(49))
	assert.Equal(t, 5, lower.Right())
	assert.Equal(t, 20, upper.Left())
}
