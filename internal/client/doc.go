// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the document vault client application runtime.
//
// It wires configuration, the local profile store, the unlock keeper, the
// remote record store adapter, client services, and background workers into a
// single process lifecycle.
package client
