// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schema

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/bitmark-inc/nameops/fault"
)

// Record - field name to value
//
// values are: nil, bool, string, int64 (or any Go integer), float64,
// []interface{} and nested Record or map[string]interface{}
type Record map[string]interface{}

// FromJSON - decode a JSON object keeping integers distinct from
// floating point numbers
func FromJSON(b []byte) (Record, error) {
	if !gjson.ValidBytes(b) {
		return nil, fault.ErrRecordFailedValidation
	}
	result := gjson.ParseBytes(b)
	if !result.IsObject() {
		return nil, fault.ErrRecordFailedValidation
	}
	return fromObject(result), nil
}

func fromObject(result gjson.Result) Record {
	r := make(Record)
	result.ForEach(func(key gjson.Result, value gjson.Result) bool {
		r[key.String()] = fromValue(value)
		return true
	})
	return r
}

func fromValue(value gjson.Result) interface{} {
	switch value.Type {
	case gjson.Null:
		return nil
	case gjson.False:
		return false
	case gjson.True:
		return true
	case gjson.String:
		return value.Str
	case gjson.Number:
		if !strings.ContainsAny(value.Raw, ".eE") {
			if i, err := strconv.ParseInt(value.Raw, 10, 64); nil == err {
				return i
			}
		}
		return value.Num
	default:
		if value.IsArray() {
			items := value.Array()
			list := make([]interface{}, len(items))
			for i, item := range items {
				list[i] = fromValue(item)
			}
			return list
		}
		return map[string]interface{}(fromObject(value))
	}
}

// Copy - shallow copy for adding fields without mutating the source
func (r Record) Copy() Record {
	c := make(Record, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}

// GetString - a string field or false
func (r Record) GetString(name string) (string, bool) {
	s, ok := r[name].(string)
	return s, ok
}

// GetInteger - an integer field or false
func (r Record) GetInteger(name string) (int64, bool) {
	return toInteger(r[name])
}
