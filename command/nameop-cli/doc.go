// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// nameop-cli - build, decode and scan name operation records
//
// commands that only encode or decode work without a configuration
// file, those that talk to bitcoind or the history store need one
//
//	nameop-cli build-announce --hash <40 hex>
//	nameop-cli decode --script <null-data script hex>
//	nameop-cli validate --schema name_operation --file record.json
//	nameop-cli fees --inputs 3 --tx-fee 0.0001
//	nameop-cli -c nameops.conf make-announce --hash <hex> --public-key <hex>
//	nameop-cli -c nameops.conf broadcast --tx <signed hex>
//	nameop-cli -c nameops.conf scan --start 600000
//	nameop-cli -c nameops.conf history
package main
