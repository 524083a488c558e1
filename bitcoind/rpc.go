// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bitcoind

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/nameops/fault"
)

// for encoding the RPC arguments
type bitcoinArguments struct {
	Id      uint64        `json:"id"`
	JSONRPC string        `json:"jsonrpc"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

// the RPC error response
type bitcoinRpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// for decoding the RPC reply
type bitcoinReply struct {
	Id     uint64           `json:"id"`
	Result interface{}      `json:"result"`
	Error  *bitcoinRpcError `json:"error"`
}

// high level call, waits for the rate limiter
func (c *Client) call(ctx context.Context, method string, params []interface{}, reply interface{}) error {
	if err := c.limiter.Wait(ctx); nil != err {
		return errors.Wrapf(err, "rpc: %s", method)
	}

	c.Lock()
	c.id += 1
	id := c.id
	c.Unlock()

	arguments := bitcoinArguments{
		Id:      id,
		JSONRPC: "1.0",
		Method:  method,
		Params:  params,
	}
	response := bitcoinReply{
		Result: reply,
	}
	c.log.Debugf("rpc call with: %v", arguments)
	err := c.rpc(ctx, &arguments, &response)
	if nil != err {
		c.log.Tracef("rpc returned error: %v", err)
		return errors.Wrapf(err, "rpc: %s", method)
	}

	if nil != response.Error {
		return fault.ProcessError("bitcoin rpc error: " + response.Error.Message)
	}
	return nil
}

// basic RPC
func (c *Client) rpc(ctx context.Context, arguments *bitcoinArguments, reply *bitcoinReply) error {

	s, err := json.Marshal(arguments)
	if nil != err {
		return err
	}

	c.log.Tracef("rpc send: %s", s)

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBuffer(s))
	if nil != err {
		return err
	}
	request.Header.Set("Content-Type", "application/json")
	if "" != c.username {
		request.SetBasicAuth(c.username, c.password)
	}

	response, err := c.client.Do(request)
	if nil != err {
		return err
	}
	defer response.Body.Close()

	body, err := ioutil.ReadAll(response.Body)
	if nil != err {
		return err
	}

	c.log.Tracef("rpc response body: %s", body)

	// bitcoind reports RPC errors with a 500 status and a JSON body
	err = json.Unmarshal(body, reply)
	if nil != err {
		if http.StatusOK != response.StatusCode {
			return errors.Errorf("http status: %s", response.Status)
		}
		return err
	}

	c.log.Debugf("rpc receive: %d bytes", len(body))
	return nil
}
