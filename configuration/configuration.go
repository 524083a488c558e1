// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nameops/bitcoind"
	"github.com/bitmark-inc/nameops/fault"
	"github.com/bitmark-inc/nameops/scanner"
	"github.com/bitmark-inc/nameops/script"
	"github.com/bitmark-inc/nameops/util"
)

// basic defaults (directories are relative to the data directory)
const (
	defaultNetwork = "bitcoin"
	defaultTxFee   = "0.0001"

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "history.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "nameops.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// DatabaseType - location of the history store
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// Configuration - everything read from the configuration file
type Configuration struct {
	DataDirectory string                 `gluamapper:"data_directory" json:"data_directory"`
	Network       string                 `gluamapper:"network" json:"network"`
	PayFee        bool                   `gluamapper:"pay_fee" json:"pay_fee"`
	TxFee         string                 `gluamapper:"tx_fee" json:"tx_fee"` // BTC
	Workers       int                    `gluamapper:"workers" json:"workers"`
	Bitcoin       bitcoind.Configuration `gluamapper:"bitcoin" json:"bitcoin"`
	Database      DatabaseType           `gluamapper:"database" json:"database"`
	Logging       logger.Configuration   `gluamapper:"logging" json:"logging"`

	baseTxFee uint64
}

// BaseTxFee - the transaction fee in satoshi
func (c *Configuration) BaseTxFee() uint64 {
	return c.baseTxFee
}

// Get - read decode and verify the configuration
func Get(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: ".",
		Network:       defaultNetwork,
		PayFee:        true,
		TxFee:         defaultTxFee,
		Workers:       scanner.DefaultWorkers,

		Bitcoin: bitcoind.Configuration{
			RateLimit: bitcoind.DefaultRateLimit,
			Burst:     bitcoind.DefaultBurst,
		},

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: LoglevelMap{
				logger.DefaultTag: "critical",
			},
		},
	}

	variables := map[string]string{
		"data_directory": dataDirectory,
	}
	if err := ParseConfigurationFile(configurationFileName, options, variables); err != nil {
		return nil, err
	}

	options.Network = strings.ToLower(options.Network)
	if _, err := script.New(options.Network); nil != err {
		return nil, fmt.Errorf("network: %q is not supported", options.Network)
	}

	options.baseTxFee, err = bitcoind.ParseAmount(options.TxFee)
	if nil != err {
		return nil, fmt.Errorf("tx_fee: %q is not a valid BTC amount", options.TxFee)
	}

	if "" == options.Bitcoin.URL {
		return nil, fault.ErrMissingBitcoinURL
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = util.EnsureAbsolute(dataDirectory, options.DataDirectory)
	}

	// fail if any of these are not simple file names
	for _, f := range []string{options.Database.Name, options.Logging.File} {
		switch filepath.Dir(f) {
		case "", ".":
		default:
			return nil, fmt.Errorf("file: %q is not plain name", f)
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d, err = util.EnsureDirectory(options.DataDirectory, *d)
		if nil != err {
			return nil, err
		}
	}

	return options, nil
}

// DatabasePath - full path of the history store
func (c *Configuration) DatabasePath() string {
	return filepath.Join(c.Database.Directory, c.Database.Name)
}
