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
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/apache/commons-numbers-sub011/internal/testutils"
)

// numericData returns generated values of d with NaN replaced, as the
// partitioning routines require NaN-free input.
func numericData(d testutils.Distribution, n int, rng *rand.Rand) []float64 {
	data := testutils.Generate(d, n, rng)
	for i, v := range data {
		if math.IsNaN(v) {
			data[i] = 2
		}
	}
	return data
}

func band(ka, kb int) []int {
	ks := make([]int, 0, kb-ka+1)
	for k := ka; k <= kb; k++ {
		ks = append(ks, k)
	}
	return ks
}

func TestSelectFlags(t *testing.T) {
	f := newSelectFlags(ModeAdaption, 5)
	assert.Equal(t, ModeAdaption, f.mode())
	assert.Equal(t, 5, f.depth())

	f = f.descend()
	assert.Equal(t, ModeAdaption, f.mode())
	assert.Equal(t, 4, f.depth())

	f = newSelectFlags(ModeStrict, 0).descend()
	assert.Equal(t, ModeStrict, f.mode())
	assert.Equal(t, -1, f.depth())
}

func TestDualPivotMaxDepth(t *testing.T) {
	s, err := NewSelector[float64]()
	assert.NoError(t, err)
	assert.Equal(t, 0, s.dualPivotMaxDepth(2))
	assert.Equal(t, 2, s.dualPivotMaxDepth(3))
	assert.Equal(t, 12, s.dualPivotMaxDepth(1000))

	s, err = NewSelector[float64](WithDepthFactor(0))
	assert.NoError(t, err)
	assert.Equal(t, 0, s.dualPivotMaxDepth(1000))
}

func TestFloydRivestWindow(t *testing.T) {
	for _, n := range []int{50, 1201, 10000, 1 << 20} {
		for _, k := range []int{0, 1, n / 10, n / 2, n - 2, n - 1} {
			left := 100
			right := left + n - 1
			ll, rr := floydRivestWindow(left, right, left+k)
			assert.LessOrEqual(t, left, ll)
			assert.LessOrEqual(t, ll, left+k)
			assert.LessOrEqual(t, left+k, rr)
			assert.LessOrEqual(t, rr, right)
			if n >= 10000 {
				assert.Less(t, rr-ll+1, n/2, "n=%d k=%d", n, k)
			}
		}
	}
}

func TestSortSelectLeftRight(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, d := range testutils.Distributions {
		for _, k := range []int{0, 3, 25, 49} {
			a := numericData(d, 50, rng)
			before := slices.Clone(a)
			sortSelectLeft(a, 0, 49, k)
			assert.NoError(t, testutils.CheckSelected(before, a, 0, 50, band(0, k)), "%v left k=%d", d, k)

			a = slices.Clone(before)
			sortSelectRight(a, 0, 49, k)
			assert.NoError(t, testutils.CheckSelected(before, a, 0, 50, band(k, 49)), "%v right k=%d", d, k)
		}
	}
}

func TestHeapSelect(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	const n = 300
	bands := [][2]int{{0, 0}, {0, 5}, {3, 40}, {n - 1, n - 1}, {n - 30, n - 2}, {140, 160}, {0, n - 1}}
	for _, d := range testutils.Distributions {
		for _, b := range bands {
			a := numericData(d, n+10, rng)
			before := slices.Clone(a)
			heapSelect(a, 5, n+4, b[0]+5, b[1]+5)
			assert.NoError(t, testutils.CheckSelected(before, a, 5, n+5, band(b[0]+5, b[1]+5)), "%v band %v", d, b)

			// selecting again writes nothing
			selected := slices.Clone(a)
			heapSelect(a, 5, n+4, b[0]+5, b[1]+5)
			assert.Equal(t, selected, a)
		}
	}
}

func TestHeapSelectSingleSided(t *testing.T) {
	a := []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	heapSelectLeft(a, 0, 9, 2, 2)
	assert.Equal(t, []int{0, 1, 2}, a[:3])

	a = []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	heapSelectRight(a, 0, 9, 7, 2)
	assert.Equal(t, []int{7, 8, 9}, a[7:])
}

func TestExpandPartition(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	negZero := math.Copysign(0, -1)
	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.Intn(60)
		a := make([]float64, n)
		for i := range a {
			a[i] = float64(rng.Intn(6))
			if a[i] == 0 && rng.Intn(2) == 0 {
				a[i] = negZero
			}
		}
		p := rng.Intn(n)
		before := slices.Clone(a)
		p0, p1 := expandPartition(a, 0, n-1, p, p, p, p)
		pv := before[p]
		for i := 0; i < p0; i++ {
			assert.Less(t, a[i], pv)
		}
		for i := p0; i <= p1; i++ {
			assert.True(t, a[i] == pv)
		}
		for i := p1 + 1; i < n; i++ {
			assert.Greater(t, a[i], pv)
		}
		assert.Equal(t, testutils.Fingerprint(before), testutils.Fingerprint(a))
	}
}

func TestSampledPartition(t *testing.T) {
	rng := rand.New(rand.NewSource(14))
	for _, d := range testutils.Distributions {
		for _, n := range []int{17, 18, 100, 1001} {
			a := numericData(d, n, rng)
			before := slices.Clone(a)
			p0, p1 := sampledPartition(a, 0, n-1)
			assert.LessOrEqual(t, p0, p1)
			pv := a[p0]
			for i := 0; i < n; i++ {
				switch {
				case i < p0:
					assert.Less(t, a[i], pv)
				case i <= p1:
					assert.True(t, a[i] == pv)
				default:
					assert.Greater(t, a[i], pv)
				}
			}
			assert.Equal(t, testutils.Fingerprint(before), testutils.Fingerprint(a))
		}
	}
}

func TestRepeatedStep(t *testing.T) {
	rng := rand.New(rand.NewSource(15))
	const n = 900
	for _, d := range testutils.Distributions {
		a := numericData(d, n, rng)
		before := slices.Clone(a)
		s9, e9 := repeatedStep(a, 0, n-1)
		assert.Equal(t, 400, s9)
		assert.Equal(t, 499, e9)
		assert.Equal(t, testutils.Fingerprint(before), testutils.Fingerprint(a))

		ninth := slices.Clone(a[s9 : e9+1])
		slices.Sort(ninth)
		m := ninth[len(ninth)>>1]
		below, above := 0, 0
		for _, v := range a {
			if v <= m {
				below++
			}
			if v >= m {
				above++
			}
		}
		// the median of medians is bounded away from both ends
		assert.GreaterOrEqual(t, below, 2*n/9, "%v", d)
		assert.GreaterOrEqual(t, above, 2*n/9, "%v", d)
	}
}

func TestDualPivotPartition(t *testing.T) {
	rng := rand.New(rand.NewSource(16))
	s, err := NewSelector[float64]()
	assert.NoError(t, err)
	for _, mode := range []Mode{ModeFRSampling, ModeSampling} {
		for _, d := range testutils.Distributions {
			for _, n := range []int{40, 500, 5000} {
				a := numericData(d, n, rng)
				before := slices.Clone(a)
				p0, p1, p2, p3 := s.dualPivotPartition(a, 0, n-1, mode)
				assert.LessOrEqual(t, p0, p1)
				assert.LessOrEqual(t, p1, p2-1)
				assert.Equal(t, testutils.Fingerprint(before), testutils.Fingerprint(a))

				p1v := a[p0]
				for i := 0; i < p0; i++ {
					assert.Less(t, a[i], p1v)
				}
				for i := p0; i <= p1; i++ {
					assert.True(t, a[i] == p1v)
				}
				if p2 > p3 {
					// equal pivots: a single pivot block
					assert.Equal(t, p1+1, p2)
					assert.Equal(t, p1, p3)
					for i := p1 + 1; i < n; i++ {
						assert.Greater(t, a[i], p1v)
					}
					continue
				}
				p2v := a[p2]
				assert.Less(t, p1v, p2v)
				for i := p1 + 1; i < p2; i++ {
					assert.Greater(t, a[i], p1v)
					assert.Less(t, a[i], p2v)
				}
				for i := p2; i <= p3; i++ {
					assert.True(t, a[i] == p2v)
				}
				for i := p3 + 1; i < n; i++ {
					assert.Greater(t, a[i], p2v)
				}
			}
		}
	}
}

func TestQuickSelectAdaptive(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	const n = 3000
	bands := [][2]int{{0, 0}, {n / 2, n / 2}, {n - 1, n - 1}, {100, 110}, {1000, 1500}, {0, n - 1}}
	for _, mode := range []Mode{ModeFRSampling, ModeSampling, ModeAdaption, ModeStrict} {
		s, err := NewSelector[float64](WithMode(mode))
		assert.NoError(t, err)
		for _, d := range testutils.Distributions {
			for _, b := range bands {
				a := numericData(d, n, rng)
				before := slices.Clone(a)
				s.quickSelectAdaptive(a, 0, n-1, b[0], b[1], mode)
				assert.NoError(t, testutils.CheckSelected(before, a, 0, n, band(b[0], b[1])), "%v %v band %v", mode, d, b)
			}
		}
	}
}

func TestSelectStrict(t *testing.T) {
	rng := rand.New(rand.NewSource(18))
	const n = 5000
	s, err := NewSelector[float64]()
	assert.NoError(t, err)
	keySets := [][]int{
		{10, 20, 4990},
		{30, 2500, 4000},
		{100, 101, 102, 900, 1800, 2700, 3600, 4500},
		{2400, 2450, 2500, 2550, 2600},
	}
	for _, d := range testutils.Distributions {
		for _, keys := range keySets {
			a := numericData(d, n, rng)
			before := slices.Clone(a)
			s.selectStrict(a, 0, n-1, newUpdatingInterval(slices.Clone(keys), s.SortSelectSize))
			assert.NoError(t, testutils.CheckSelected(before, a, 0, n, keys), "%v keys %v", d, keys)
		}
	}
}
