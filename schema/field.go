// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schema

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"sort"
)

// Field - one of the field kinds declared in this package
type Field interface {
	// check returns the path below this field and the failure reason,
	// an empty reason means the value is acceptable
	check(value interface{}) (string, string)
}

// String - a string, matching Pattern and passing Check when present
type String struct {
	Pattern *regexp.Regexp
	Check   func(string) bool
}

// Integer - a whole number of any Go integer type
type Integer struct {
	NonNegative bool
}

// Number - integer or floating point
type Number struct{}

// Boolean - true or false
type Boolean struct{}

// Nullable - Field or null
type Nullable struct {
	Field Field
}

// Array - list of Items of any length
type Array struct {
	Items Field
}

// Object - a nested record
type Object struct {
	Schema *Schema
}

// History - block number (decimal string) to a list of Items
type History struct {
	Items *Schema
}

// AnyOf - accept if any option accepts
type AnyOf struct {
	Options []Field
}

var blockNumberKey = regexp.MustCompile(`^([0-9]+)$`)

func (f String) check(value interface{}) (string, string) {
	s, ok := value.(string)
	if !ok {
		return "", "not a string"
	}
	if nil != f.Pattern && !f.Pattern.MatchString(s) {
		return "", fmt.Sprintf("does not match pattern %s", f.Pattern)
	}
	if nil != f.Check && !f.Check(s) {
		return "", "invalid characters"
	}
	return "", ""
}

func (f Integer) check(value interface{}) (string, string) {
	i, ok := toInteger(value)
	if !ok {
		return "", "not an integer"
	}
	if f.NonNegative && i < 0 {
		return "", "negative integer"
	}
	return "", ""
}

func (Number) check(value interface{}) (string, string) {
	if _, ok := toInteger(value); ok {
		return "", ""
	}
	switch n := value.(type) {
	case float32:
		return "", ""
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return "", "not a finite number"
		}
		return "", ""
	}
	return "", "not a number"
}

func (Boolean) check(value interface{}) (string, string) {
	if _, ok := value.(bool); !ok {
		return "", "not a boolean"
	}
	return "", ""
}

func (f Nullable) check(value interface{}) (string, string) {
	if nil == value {
		return "", ""
	}
	return f.Field.check(value)
}

func (f Array) check(value interface{}) (string, string) {
	items, ok := toList(value)
	if !ok {
		return "", "not an array"
	}
	for i, item := range items {
		if path, reason := f.Items.check(item); "" != reason {
			return fmt.Sprintf("[%d]%s", i, path), reason
		}
	}
	return "", ""
}

func (f Object) check(value interface{}) (string, string) {
	r, ok := toRecord(value)
	if !ok {
		return "", "not an object"
	}
	if err := f.Schema.Validate(r); nil != err {
		ve := err.(*ValidationError)
		return "." + ve.Field, ve.Reason
	}
	return "", ""
}

func (f History) check(value interface{}) (string, string) {
	r, ok := toRecord(value)
	if !ok {
		return "", "not an object"
	}

	// sorted for a deterministic first failure
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := Array{Items: Object{Schema: f.Items}}
	for _, k := range keys {
		if !blockNumberKey.MatchString(k) {
			return "." + k, "block number key is not decimal"
		}
		if path, reason := entries.check(r[k]); "" != reason {
			return "." + k + path, reason
		}
	}
	return "", ""
}

func (f AnyOf) check(value interface{}) (string, string) {
	for _, option := range f.Options {
		if _, reason := option.check(value); "" == reason {
			return "", ""
		}
	}
	return "", "matches none of the alternatives"
}

func toInteger(value interface{}) (int64, bool) {
	if nil == value {
		return 0, false
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := v.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	default:
		return 0, false
	}
}

func toList(value interface{}) ([]interface{}, bool) {
	if list, ok := value.([]interface{}); ok {
		return list, true
	}
	if nil == value {
		return nil, false
	}
	v := reflect.ValueOf(value)
	if reflect.Slice != v.Kind() || reflect.Uint8 == v.Type().Elem().Kind() {
		return nil, false
	}
	list := make([]interface{}, v.Len())
	for i := 0; i < v.Len(); i += 1 {
		list[i] = v.Index(i).Interface()
	}
	return list, true
}

func toRecord(value interface{}) (Record, bool) {
	switch r := value.(type) {
	case Record:
		return r, true
	case map[string]interface{}:
		return Record(r), true
	default:
		return nil, false
	}
}
