// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"github.com/MKhiriev/go-patient-keeper/internal/config"
	"github.com/MKhiriev/go-patient-keeper/internal/logger"
	"github.com/MKhiriev/go-patient-keeper/internal/server"
	"github.com/MKhiriev/go-patient-keeper/internal/stubserver"
	"github.com/spf13/cobra"
)

const stubRole = "patient-keeper-stub"

func (c *cli) stubServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stub-server",
		Short: "Run an in-memory backend for local development",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.NewLogger(stubRole)

			cfg, err := config.GetStubConfig(c.flags.Config())
			if err != nil {
				log.Err(err).Msg("error getting configs")
				return err
			}

			srv, err := server.NewServer(stubserver.NewHandler(*cfg, log).Init(), *cfg, log)
			if err != nil {
				return err
			}

			return srv.Run(cmd.Context())
		},
	}

	c.flags.RegisterStub(cmd.Flags())
	return cmd
}
