// This file is part of go-base.
//
// Copyright (C) 2024-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package sliceiterator - builds a cursor over cli args that allows peeking at and consuming the next value.
package sliceiterator

// Iterator - iterator data
type Iterator struct {
	data []string
	idx  int
}

// New - builds a string Iterator.
// The Iterator doesn't modify the given slice.
func New(s []string) *Iterator {
	return &Iterator{data: s, idx: -1}
}

// Size - returns Iterator size
func (a *Iterator) Size() int {
	return len(a.data)
}

// Index - return current index.
func (a *Iterator) Index() int {
	return a.idx
}

// Next - moves the index forward and returns a bool to indicate if there is another value.
func (a *Iterator) Next() bool {
	if a.idx < len(a.data) {
		a.idx++
	}
	return a.idx < len(a.data)
}

// ExistsNext - tells if there is more data to be read.
func (a *Iterator) ExistsNext() bool {
	return a.idx+1 < len(a.data)
}

// Value - returns value at current index or an empty string if the list has been fully read or Next hasn't been called.
func (a *Iterator) Value() string {
	if a.idx < 0 || a.idx >= len(a.data) {
		return ""
	}
	return a.data[a.idx]
}

// PeekNextValue - Returns the next value and indicates whether or not it is valid.
func (a *Iterator) PeekNextValue() (string, bool) {
	if a.idx+1 >= len(a.data) {
		return "", false
	}
	return a.data[a.idx+1], true
}

// TakeNext - Moves to the next value and returns it.
// Returns false without moving if there is no next value.
func (a *Iterator) TakeNext() (string, bool) {
	if !a.ExistsNext() {
		return "", false
	}
	a.idx++
	return a.data[a.idx], true
}

// IsLast - Tells if the current element is the last.
func (a *Iterator) IsLast() bool {
	return a.idx == len(a.data)-1
}

// Remaining - Get all remaining values index inclusive.
// The returned slice is a copy.
func (a *Iterator) Remaining() []string {
	start := a.idx
	if start < 0 {
		start = 0
	}
	if start >= len(a.data) {
		return []string{}
	}
	out := make([]string, len(a.data)-start)
	copy(out, a.data[start:])
	return out
}

// Reset - resets the index of the Iterator.
func (a *Iterator) Reset() {
	a.idx = -1
}
