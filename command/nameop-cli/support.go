// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/nameops/bitcoind"
	"github.com/bitmark-inc/nameops/configuration"
	"github.com/bitmark-inc/nameops/operation"
	"github.com/bitmark-inc/nameops/operation/announce"
	"github.com/bitmark-inc/nameops/script"
	"github.com/bitmark-inc/nameops/storage"
)

const (
	logCategory = "cli"
	logFile     = "nameop-cli.log"
)

func setup(c *cli.Context) (*metadata, error) {

	var config *configuration.Configuration
	network := script.Bitcoin

	if file := c.GlobalString("config"); "" != file {
		var err error
		config, err = configuration.Get(file)
		if nil != err {
			return nil, err
		}
		network = config.Network
	}

	if n := c.GlobalString("network"); "" != n {
		network = strings.ToLower(n)
	}

	if err := initialiseLogger(config); nil != err {
		return nil, err
	}
	log := logger.New(logCategory)

	codec, err := script.New(network)
	if nil != err {
		return nil, err
	}

	handler, err := announce.New(logger.New("announce"), codec)
	if nil != err {
		return nil, err
	}
	registry, err := operation.New(logger.New("registry"), handler)
	if nil != err {
		return nil, err
	}

	log.Debugf("network: %s  opcodes: %v", network, registry.Opcodes())

	return &metadata{
		config:   config,
		network:  network,
		log:      log,
		codec:    codec,
		registry: registry,
		announce: handler,
		verbose:  c.GlobalBool("verbose"),
		e:        c.App.ErrWriter,
		w:        c.App.Writer,
	}, nil
}

// without a configuration only critical messages are logged to a
// file in the temporary directory
func initialiseLogger(config *configuration.Configuration) error {
	if nil != config {
		return logger.Initialise(config.Logging)
	}

	directory := filepath.Join(os.TempDir(), "nameop-cli")
	if err := os.MkdirAll(directory, 0700); nil != err {
		return err
	}
	return logger.Initialise(logger.Configuration{
		Directory: directory,
		File:      logFile,
		Size:      1048576,
		Count:     5,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
}

func (m *metadata) requireConfiguration() error {
	if nil == m.config {
		return ErrConfigurationRequired
	}
	return nil
}

func (m *metadata) bitcoinClient() (*bitcoind.Client, error) {
	if err := m.requireConfiguration(); nil != err {
		return nil, err
	}
	return bitcoind.New(logger.New("bitcoind"), &m.config.Bitcoin)
}

func (m *metadata) openStore(readOnly bool) (*storage.Store, error) {
	if err := m.requireConfiguration(); nil != err {
		return nil, err
	}
	return storage.Open(logger.New("storage"), m.config.DatabasePath(), readOnly)
}

// base transaction fee from the flag, then the configuration, then
// the default
func (m *metadata) baseTxFee(flag string) (uint64, error) {
	if "" != flag {
		return bitcoind.ParseAmount(flag)
	}
	if nil != m.config {
		return m.config.BaseTxFee(), nil
	}
	return bitcoind.ParseAmount(defaultTxFee)
}

const defaultTxFee = "0.0001"
