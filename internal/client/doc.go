// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the client application: durable session storage,
// the session, the server adapter and the services on top of them.
package client
