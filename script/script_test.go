// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nameops/fault"
	"github.com/bitmark-inc/nameops/script"
)

// public key of private key 1 and its address
const (
	publicKey     = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	address       = "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH"
	addressScript = "76a914751e76e8199196d454941c45d1b3a323f1433bd688ac"
)

func mainnet(t *testing.T) script.Codec {
	c, err := script.New(script.Bitcoin)
	assert.Nil(t, err, "wrong error")
	return c
}

func TestNew(t *testing.T) {
	for _, network := range []string{"bitcoin", "Livenet", "testnet", "regtest"} {
		c, err := script.New(network)
		assert.Nil(t, err, "network: %s", network)
		assert.NotNil(t, c, "network: %s", network)
	}

	_, err := script.New("dogecoin")
	assert.Equal(t, fault.ErrInvalidNetwork, err, "wrong error")
}

func TestNullDataScript(t *testing.T) {
	c := mainnet(t)

	s, err := c.NullDataScript("69642300")
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, "6a0469642300", s, "wrong script")

	data, ok := c.NullData(s)
	assert.True(t, ok, "not null data")
	assert.Equal(t, []byte{0x69, 0x64, 0x23, 0x00}, data, "wrong data")
	assert.True(t, c.IsNullData(s), "not null data")

	_, err = c.NullDataScript("zz")
	assert.Equal(t, fault.ErrInvalidPayload, err, "wrong error")

	_, err = c.NullDataScript(strings.Repeat("00", 81))
	assert.Equal(t, fault.ErrPayloadTooLong, err, "wrong error")
}

func TestNullDataRejects(t *testing.T) {
	c := mainnet(t)

	scripts := []string{
		"",
		"zz",
		addressScript,
		"6a04696423",   // truncated push
		"6a0169ac",     // non-push after data
		"76a96a026964", // OP_RETURN not first
	}
	for i, s := range scripts {
		assert.False(t, c.IsNullData(s), "%d: %q", i, s)
	}

	// bare OP_RETURN carries no data but is still null data
	data, ok := c.NullData("6a")
	assert.True(t, ok, "bare OP_RETURN")
	assert.Equal(t, 0, len(data), "unexpected data")
}

func TestPayToAddress(t *testing.T) {
	c := mainnet(t)

	s, err := c.PayToAddressScript(address)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, addressScript, s, "wrong script")

	a, ok := c.ScriptToAddress(s)
	assert.True(t, ok, "address not decoded")
	assert.Equal(t, address, a, "wrong address")

	_, err = c.PayToAddressScript("1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMh")
	assert.Equal(t, fault.ErrInvalidAddress, err, "bad checksum accepted")

	testnet, err := script.New(script.Testnet)
	assert.Nil(t, err, "wrong error")
	_, err = testnet.PayToAddressScript(address)
	assert.Equal(t, fault.ErrInvalidAddress, err, "mainnet address accepted on testnet")
}

func TestScriptToAddressRejects(t *testing.T) {
	c := mainnet(t)

	for i, s := range []string{"", "xyz", "6a0469642300", "51"} {
		_, ok := c.ScriptToAddress(s)
		assert.False(t, ok, "%d: %q", i, s)
	}
}

func TestAddressFromPublicKey(t *testing.T) {
	c := mainnet(t)

	a, err := c.AddressFromPublicKey(publicKey)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, address, a, "wrong address")

	_, err = c.AddressFromPublicKey("02abcd")
	assert.Equal(t, fault.ErrInvalidPublicKey, err, "short key accepted")

	_, err = c.AddressFromPublicKey("not hex")
	assert.Equal(t, fault.ErrInvalidPublicKey, err, "non hex accepted")
}
