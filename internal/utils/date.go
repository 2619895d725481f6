// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "strings"

// Date layouts exchanged between the client and the backend, expressed as
// the separators used by each form.
const (
	// canonicalDateSeparator joins yyyy-MM-dd, the form kept inside the client.
	canonicalDateSeparator = "-"
	// wireDateSeparator joins dd/MM/yyyy, the form the backend serialises.
	wireDateSeparator = "/"
)

// ToCanonicalDate converts a backend date (dd/MM/yyyy) to the canonical
// client form (yyyy-MM-dd) by splitting and reordering its parts.
//
// No calendar validation is performed. A value that does not split into
// exactly three parts on "/" (including one that is already canonical) is
// returned unchanged.
//
// Example:
//
//	utils.ToCanonicalDate("01/05/1990") // "1990-05-01"
func ToCanonicalDate(wire string) string {
	parts := strings.Split(wire, wireDateSeparator)
	if len(parts) != 3 {
		return wire
	}

	day, month, year := parts[0], parts[1], parts[2]
	return strings.Join([]string{year, month, day}, canonicalDateSeparator)
}

// ToWireDate converts a canonical client date (yyyy-MM-dd) to the backend
// form (dd/MM/yyyy). It is the exact inverse of [ToCanonicalDate] for
// well-formed input; values of any other shape are returned unchanged.
//
// Example:
//
//	utils.ToWireDate("1990-05-01") // "01/05/1990"
func ToWireDate(canonical string) string {
	parts := strings.Split(canonical, canonicalDateSeparator)
	if len(parts) != 3 {
		return canonical
	}

	year, month, day := parts[0], parts[1], parts[2]
	return strings.Join([]string{day, month, year}, wireDateSeparator)
}
