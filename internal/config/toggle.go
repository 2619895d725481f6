// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strconv"
)

// Toggle is an on/off setting that also records whether any source set it.
// Its zero value is "unset", so mergo skips it, while an explicit off in a
// later layer still overrides an earlier on.
type Toggle uint8

const (
	ToggleUnset Toggle = iota
	ToggleOff
	ToggleOn
)

// ToggleOf returns the explicit Toggle for b.
func ToggleOf(b bool) Toggle {
	if b {
		return ToggleOn
	}
	return ToggleOff
}

// Enabled reports whether the toggle is on. Unset counts as off.
func (t Toggle) Enabled() bool {
	return t == ToggleOn
}

// UnmarshalText implements [encoding.TextUnmarshaler] for env parsing. It
// accepts the values of [strconv.ParseBool].
func (t *Toggle) UnmarshalText(text []byte) error {
	b, err := strconv.ParseBool(string(text))
	if err != nil {
		return fmt.Errorf("invalid toggle value %q: %w", text, err)
	}
	*t = ToggleOf(b)
	return nil
}
