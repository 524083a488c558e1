// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/nameops/fault"
	"github.com/bitmark-inc/nameops/schema"
)

func runValidate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name := c.String("schema")
	if "" == name {
		return fault.ErrMissingArgument
	}
	s, err := schema.Lookup(name)
	if nil != err {
		return err
	}

	var data []byte
	if file := c.String("file"); "-" == file || "" == file {
		data, err = ioutil.ReadAll(os.Stdin)
	} else {
		data, err = ioutil.ReadFile(file)
	}
	if nil != err {
		return err
	}

	record, err := schema.FromJSON(data)
	if nil != err {
		return err
	}

	result := struct {
		Schema string `json:"schema"`
		Valid  bool   `json:"valid"`
		Field  string `json:"field,omitempty"`
		Reason string `json:"reason,omitempty"`
	}{
		Schema: name,
		Valid:  true,
	}

	if err := s.Validate(record); nil != err {
		result.Valid = false
		if v, ok := err.(*schema.ValidationError); ok {
			result.Field = v.Field
			result.Reason = v.Reason
		} else {
			result.Reason = err.Error()
		}
		m.log.Warnf("schema: %s  rejected: %s", name, err)
	}

	return printJson(m.w, result)
}
