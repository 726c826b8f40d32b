// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the store-client command line.
//
// Each subcommand maps onto one call of adapter.StoreAPI and prints the
// result as indented JSON.
package client
