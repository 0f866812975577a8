// This file is part of go-base.
//
// Copyright (C) 2024-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package sliceiterator

import (
	"reflect"
	"testing"
)

func TestIterator(t *testing.T) {
	data := []string{"-f", "2", "101", "11"}
	i := New(data)
	if i.Size() != len(data) {
		t.Errorf("wrong size: %d\n", i.Size())
	}
	if i.Index() != -1 {
		t.Errorf("wrong initial index: %d\n", i.Index())
	}
	if i.Value() != "" {
		t.Errorf("wrong value before Next: %s\n", i.Value())
	}
	if !reflect.DeepEqual(i.Remaining(), data) {
		t.Errorf("wrong remaining value before Next: %v\n", i.Remaining())
	}
	for i.Next() {
		if i.Index() < len(data)-1 {
			if !i.ExistsNext() {
				t.Errorf("wrong ExistsNext: idx %d, size %d", i.Index(), i.Size())
			}
		}
		if i.Index() == 0 {
			if i.Value() != "-f" {
				t.Errorf("wrong value: %s\n", i.Value())
			}
			val, ok := i.TakeNext()
			if !ok || val != "2" {
				t.Errorf("wrong TakeNext value: %v, %v\n", val, ok)
			}
			if i.Index() != 1 {
				t.Errorf("TakeNext didn't move the index: %d\n", i.Index())
			}
		}
		if i.Index() == 2 {
			if i.Value() != "101" {
				t.Errorf("wrong value: %s\n", i.Value())
			}
			val, ok := i.PeekNextValue()
			if !ok || val != "11" {
				t.Errorf("wrong next value: %v\n", val)
			}
			if !reflect.DeepEqual(i.Remaining(), []string{"101", "11"}) {
				t.Errorf("wrong remaining value: %v\n", i.Remaining())
			}
			if i.IsLast() {
				t.Errorf("not last\n")
			}
		}
		if i.Index() == 3 {
			if !i.IsLast() {
				t.Errorf("last not marked properly\n")
			}
			val, ok := i.TakeNext()
			if ok || val != "" {
				t.Errorf("wrong TakeNext at the end: %v, %v\n", val, ok)
			}
			if i.Index() != 3 {
				t.Errorf("TakeNext moved the index at the end: %d\n", i.Index())
			}
		}
	}
	if i.ExistsNext() {
		t.Errorf("wrong ExistsNext: idx %d, size %d", i.Index(), i.Size())
	}
	if i.Next() != false {
		t.Errorf("wrong next return\n")
	}
	if i.Value() != "" {
		t.Errorf("wrong value: %s\n", i.Value())
	}
	if i.Index() != len(data) {
		t.Errorf("wrong final index: %d\n", i.Index())
	}
	val, ok := i.PeekNextValue()
	if ok || val != "" {
		t.Errorf("wrong next value: %v\n", val)
	}
	if !reflect.DeepEqual(i.Remaining(), []string{}) {
		t.Errorf("wrong remaining value: %v\n", i.Remaining())
	}
	i.Reset()
	if i.Index() != -1 {
		t.Errorf("wrong index after reset: %d\n", i.Index())
	}
}

func TestRemainingIsACopy(t *testing.T) {
	data := []string{"a", "b"}
	i := New(data)
	i.Next()
	r := i.Remaining()
	r[0] = "x"
	if data[0] != "a" {
		t.Errorf("Remaining modified the source slice: %v\n", data)
	}
}

func TestEmpty(t *testing.T) {
	i := New(nil)
	if i.Next() {
		t.Errorf("wrong next return on empty iterator\n")
	}
	if !reflect.DeepEqual(i.Remaining(), []string{}) {
		t.Errorf("wrong remaining value: %v\n", i.Remaining())
	}
}
