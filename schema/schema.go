// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schema

import (
	"fmt"
	"sort"
)

// Schema - a declared record shape
//
// fields not listed in Properties are ignored
type Schema struct {
	Name       string
	Properties map[string]Field
	Required   []string
}

// ValidationError - the first field of a record that failed
type ValidationError struct {
	Schema string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if "" == e.Field {
		return fmt.Sprintf("schema: %s: %s", e.Schema, e.Reason)
	}
	return fmt.Sprintf("schema: %s field=%s: %s", e.Schema, e.Field, e.Reason)
}

// Validate - check required fields are present then check every
// declared field that is present
//
// returns nil or a *ValidationError; the record is not modified
func (s *Schema) Validate(record Record) error {
	if nil == record {
		return &ValidationError{Schema: s.Name, Reason: "missing record"}
	}

	for _, name := range s.Required {
		if _, ok := record[name]; !ok {
			return &ValidationError{Schema: s.Name, Field: name, Reason: "missing required field"}
		}
	}

	for _, name := range s.fieldNames() {
		value, ok := record[name]
		if !ok {
			continue
		}
		if path, reason := s.Properties[name].check(value); "" != reason {
			return &ValidationError{Schema: s.Name, Field: name + path, Reason: reason}
		}
	}
	return nil
}

// IsValid - true if the record is accepted
func (s *Schema) IsValid(record Record) bool {
	return nil == s.Validate(record)
}

func (s *Schema) fieldNames() []string {
	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// extend - a copy of properties with additions, for schemas that
// reuse the history entry fields
func extend(base map[string]Field, names []string, extra map[string]Field) map[string]Field {
	p := make(map[string]Field, len(names)+len(extra))
	for _, name := range names {
		f, ok := base[name]
		if !ok {
			panic("schema: no base field: " + name)
		}
		p[name] = f
	}
	for name, f := range extra {
		p[name] = f
	}
	return p
}
