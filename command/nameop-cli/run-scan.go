// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/nameops/scanner"
	"github.com/bitmark-inc/nameops/storage"
)

func runScan(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := m.bitcoinClient()
	if nil != err {
		return err
	}

	store, err := m.openStore(storage.ReadWrite)
	if nil != err {
		return err
	}
	defer store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// stop cleanly on interrupt, blocks already stored are kept
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			m.log.Infof("received signal: %v", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	start := c.Uint64("start")
	if !c.IsSet("start") {
		last, found, err := store.LastBlock()
		if nil != err {
			return err
		}
		if found {
			start = last + 1
		}
	}

	stop := c.Uint64("stop")
	if !c.IsSet("stop") {
		stop, err = client.BlockCount(ctx)
		if nil != err {
			return err
		}
	}

	if start > stop {
		return ErrInvalidBlockRange
	}

	s, err := scanner.New(logger.New("scanner"), m.codec, m.registry, m.config.Workers)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "scan: %d to %d\n", start, stop)
	}

	count, err := s.ScanRange(ctx, client, start, stop, store)
	if nil != err {
		return err
	}

	result := struct {
		Start      uint64             `json:"start"`
		Stop       uint64             `json:"stop"`
		Stored     int                `json:"stored"`
		Statistics scanner.Statistics `json:"statistics"`
	}{
		Start:      start,
		Stop:       stop,
		Stored:     count,
		Statistics: s.Statistics(),
	}

	return printJson(m.w, result)
}

func runHistory(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	store, err := m.openStore(storage.ReadOnly)
	if nil != err {
		return err
	}
	defer store.Close()

	if txId := c.String("txid"); "" != txId {
		entry, err := store.Entry(txId)
		if nil != err {
			return err
		}
		return printJson(m.w, entry)
	}

	history, err := store.History()
	if nil != err {
		return err
	}

	return printJson(m.w, history.Records())
}
