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

	"github.com/apache/commons-numbers-sub011/internal"
)

// Number is the set of element types accepted by the selection routines.
type Number = internal.Number

// Mode controls how pivots are estimated during partitioning.
type Mode int

const (
	// ModeFRSampling estimates pivots from a Floyd-Rivest style sub-sample
	// when a range is larger than FRSamplingThreshold, and behaves as
	// ModeSampling otherwise.
	ModeFRSampling Mode = iota
	// ModeSampling estimates pivots from five strided positions.
	ModeSampling
	// ModeAdaption uses a median-of-medians sample with a pivot rank
	// proportional to the target.
	ModeAdaption
	// ModeStrict uses the median of a median-of-medians sample, which
	// guarantees linear time.
	ModeStrict
)

func (m Mode) String() string {
	switch m {
	case ModeFRSampling:
		return "FRSampling"
	case ModeSampling:
		return "Sampling"
	case ModeAdaption:
		return "Adaption"
	case ModeStrict:
		return "Strict"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

const (
	DefaultSortSelectSize      = 20
	DefaultMinQuickSelectSize  = 32
	DefaultHeapSelectSize      = 64
	DefaultFRSamplingThreshold = 1200
	DefaultFRSampleSize        = 1200
	DefaultDepthFactor         = 2
	DefaultMode                = ModeFRSampling

	// minQuickSelectSize is the smallest range the pivot sampling supports.
	minQuickSelectSize = 16
)

// Config holds the tuning constants of the selection engine.
type Config struct {
	// SortSelectSize is the distance from a range edge, or the width of a
	// target band, below which the targets are resolved by sort-select.
	SortSelectSize int
	// MinQuickSelectSize is the range size at or below which the range is
	// insertion sorted.
	MinQuickSelectSize int
	// HeapSelectSize is the distance from a range edge below which the
	// depth-exhausted fallback uses heap-select.
	HeapSelectSize int
	// FRSamplingThreshold is the range size above which ModeFRSampling
	// sub-samples the range.
	FRSamplingThreshold int
	// FRSampleSize bounds the sub-sample used to choose dual pivots.
	FRSampleSize int
	// DepthFactor scales the dual-pivot recursion budget of floor(log3(n)).
	// Zero sends every multi-target request to the strict fallback.
	DepthFactor int
	// Mode is the initial pivot estimation mode.
	Mode Mode
}

// DefaultConfig returns the default tuning constants.
func DefaultConfig() Config {
	return Config{
		SortSelectSize:      DefaultSortSelectSize,
		MinQuickSelectSize:  DefaultMinQuickSelectSize,
		HeapSelectSize:      DefaultHeapSelectSize,
		FRSamplingThreshold: DefaultFRSamplingThreshold,
		FRSampleSize:        DefaultFRSampleSize,
		DepthFactor:         DefaultDepthFactor,
		Mode:                DefaultMode,
	}
}

// Validate checks the constants against the limits the engine relies on.
func (c Config) Validate() error {
	if c.SortSelectSize < 2 {
		return fmt.Errorf("%w: SortSelectSize %d < 2", ErrInvalidOption, c.SortSelectSize)
	}
	if c.MinQuickSelectSize < minQuickSelectSize {
		return fmt.Errorf("%w: MinQuickSelectSize %d < %d", ErrInvalidOption, c.MinQuickSelectSize, minQuickSelectSize)
	}
	if c.HeapSelectSize < 0 {
		return fmt.Errorf("%w: HeapSelectSize %d < 0", ErrInvalidOption, c.HeapSelectSize)
	}
	if c.FRSamplingThreshold < 0 {
		return fmt.Errorf("%w: FRSamplingThreshold %d < 0", ErrInvalidOption, c.FRSamplingThreshold)
	}
	if c.FRSampleSize < 0 {
		return fmt.Errorf("%w: FRSampleSize %d < 0", ErrInvalidOption, c.FRSampleSize)
	}
	if c.DepthFactor < 0 {
		return fmt.Errorf("%w: DepthFactor %d < 0", ErrInvalidOption, c.DepthFactor)
	}
	if c.Mode < ModeFRSampling || c.Mode > ModeStrict {
		return fmt.Errorf("%w: unknown mode %v", ErrInvalidOption, c.Mode)
	}
	return nil
}

// SelectorOption is a functional option for configuring a Selector.
type SelectorOption func(*Config)

// WithMode sets the initial pivot estimation mode.
func WithMode(mode Mode) SelectorOption {
	return func(c *Config) {
		c.Mode = mode
	}
}

// WithSortSelectSize sets Config.SortSelectSize.
func WithSortSelectSize(size int) SelectorOption {
	return func(c *Config) {
		c.SortSelectSize = size
	}
}

// WithMinQuickSelectSize sets Config.MinQuickSelectSize.
func WithMinQuickSelectSize(size int) SelectorOption {
	return func(c *Config) {
		c.MinQuickSelectSize = size
	}
}

// WithHeapSelectSize sets Config.HeapSelectSize.
func WithHeapSelectSize(size int) SelectorOption {
	return func(c *Config) {
		c.HeapSelectSize = size
	}
}

// WithFRSamplingThreshold sets Config.FRSamplingThreshold.
func WithFRSamplingThreshold(size int) SelectorOption {
	return func(c *Config) {
		c.FRSamplingThreshold = size
	}
}

// WithFRSampleSize sets Config.FRSampleSize.
func WithFRSampleSize(size int) SelectorOption {
	return func(c *Config) {
		c.FRSampleSize = size
	}
}

// WithDepthFactor sets Config.DepthFactor.
func WithDepthFactor(factor int) SelectorOption {
	return func(c *Config) {
		c.DepthFactor = factor
	}
}

// Selector partially sorts slices of T so that requested ranks hold their
// order statistics. A Selector holds no per-call state and may be shared,
// but a slice must not be passed to concurrent calls. The zero Selector is
// not valid; use NewSelector.
type Selector[T Number] struct {
	Config
}

// NewSelector returns a Selector using the default configuration modified
// by opts.
func NewSelector[T Number](opts ...SelectorOption) (*Selector[T], error) {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &Selector[T]{Config: c}, nil
}

// selectFlags packs the pivot estimation mode in the low bits and the
// remaining dual-pivot recursion depth in the high bits.
type selectFlags int

const (
	flagsModeBits = 2
	flagsModeMask = 1<<flagsModeBits - 1
)

func newSelectFlags(mode Mode, depth int) selectFlags {
	return selectFlags(depth<<flagsModeBits | int(mode))
}

func (f selectFlags) mode() Mode {
	return Mode(f & flagsModeMask)
}

func (f selectFlags) depth() int {
	return int(f >> flagsModeBits)
}

// descend returns the flags for one level deeper in the recursion.
func (f selectFlags) descend() selectFlags {
	return f - 1<<flagsModeBits
}
