// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bitcoind

import (
	"net/http"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/nameops/fault"
)

// defaults for unset configuration values
const (
	DefaultRateLimit = 10 // calls per second
	DefaultBurst     = 5
	DefaultTimeout   = 30 * time.Second

	blockCacheExpiry  = 10 * time.Minute
	blockCacheCleanup = 15 * time.Minute
)

// Configuration - connection to bitcoind
type Configuration struct {
	URL       string  `gluamapper:"url" json:"url"`
	Username  string  `gluamapper:"username" json:"username"`
	Password  string  `gluamapper:"password" json:"password"`
	RateLimit float64 `gluamapper:"rate_limit" json:"rate_limit"`
	Burst     int     `gluamapper:"burst" json:"burst"`
}

// Client - a bitcoind JSON-RPC connection
type Client struct {
	sync.Mutex // protects id

	log      *logger.L
	client   *http.Client
	url      string
	username string
	password string
	id       uint64
	limiter  *rate.Limiter
	blocks   *cache.Cache
}

// New - create a client, no connection is made until the first call
func New(log *logger.L, configuration *Configuration) (*Client, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if nil == configuration || "" == configuration.URL {
		return nil, fault.ErrMissingBitcoinURL
	}

	limit := rate.Limit(configuration.RateLimit)
	if configuration.RateLimit <= 0 {
		limit = DefaultRateLimit
	}
	burst := configuration.Burst
	if burst <= 0 {
		burst = DefaultBurst
	}

	log.Infof("bitcoind: %s  rate: %v  burst: %d", configuration.URL, limit, burst)

	return &Client{
		log: log,
		client: &http.Client{
			Timeout: DefaultTimeout,
		},
		url:      configuration.URL,
		username: configuration.Username,
		password: configuration.Password,
		limiter:  rate.NewLimiter(limit, burst),
		blocks:   cache.New(blockCacheExpiry, blockCacheCleanup),
	}, nil
}
