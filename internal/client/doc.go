// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the ipass command line.
//
// Commands are declared once in a static table and registered into a
// subcommands.Commander. Each invocation reads the master password at most
// once, passes it into the services explicitly, and is wrapped by the sync
// workers when sync is enabled.
package client
