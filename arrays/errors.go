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

import "errors"

var (
	// ErrInvalidRange is returned when a [from, to) range is not within the
	// bounds of the array, or a size argument is negative.
	ErrInvalidRange = errors.New("invalid range")
	// ErrIndexOutOfBounds is returned when a requested rank or index lies
	// outside of its valid domain.
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	// ErrUnsupportedCapacity is returned when a HashIndexSet is requested with
	// a capacity above MaxHashIndexSetCapacity.
	ErrUnsupportedCapacity = errors.New("unsupported capacity")
	// ErrCapacityExhausted is returned when a HashIndexSet table is full.
	ErrCapacityExhausted = errors.New("capacity exhausted")
	// ErrInvalidOption is returned when a Selector option is out of range.
	ErrInvalidOption = errors.New("invalid selector option")
)
