// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client defines the minimal lifecycle contract for the assembled client.
type Client interface {
	// Close releases the resources opened by the client, such as the
	// session database.
	Close() error
}
