// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command patientctl is a command-line client for the clinic patient API.
//
// It keeps the session in a local SQLite file, so a login survives between
// invocations:
//
//	patientctl login --email ana@clinic.com --password secret
//	patientctl patients list
//	patientctl patients create --file ana.json
//
// Every command prints JSON on stdout. Errors go to stderr and the process
// exits with status 1. Logs are written to a file (see --log-file) so they
// never mix with the output.
package main

import (
	"os"

	"github.com/MKhiriev/go-patient-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cli := newCLI(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	if err := cli.rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
