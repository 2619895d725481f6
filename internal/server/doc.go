// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs an HTTP handler until the context is cancelled or a
// termination signal arrives, then shuts it down gracefully.
package server
