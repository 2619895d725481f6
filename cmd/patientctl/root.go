// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-patient-keeper/internal/client"
	"github.com/MKhiriev/go-patient-keeper/internal/config"
	"github.com/MKhiriev/go-patient-keeper/internal/logger"
	"github.com/MKhiriev/go-patient-keeper/internal/service"
	"github.com/MKhiriev/go-patient-keeper/models"
	"github.com/spf13/cobra"
)

const clientRole = "patientctl"

// cli holds what the commands share. openServices is replaced in tests.
type cli struct {
	flags *config.Flags
	build models.AppBuildInfo

	stdin io.Reader

	openServices func(ctx context.Context) (*service.ClientServices, io.Closer, error)
}

func newCLI(build models.AppBuildInfo) *cli {
	c := &cli{
		flags: config.NewFlags(),
		build: build,
		stdin: os.Stdin,
	}
	c.openServices = c.openApp
	return c
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "patientctl",
		Short:        "Command-line client for the clinic patient API",
		SilenceUsage: true,
	}
	c.flags.RegisterClient(root.PersistentFlags())

	root.AddCommand(
		c.loginCmd(),
		c.registerCmd(),
		c.logoutCmd(),
		c.whoamiCmd(),
		c.patientsCmd(),
		c.stubServerCmd(),
		c.versionCmd(),
	)

	return root
}

// openApp loads the client configuration and builds the client app.
func (c *cli) openApp(ctx context.Context) (*service.ClientServices, io.Closer, error) {
	cfg, err := config.GetClientConfig(c.flags.Config())
	if err != nil {
		return nil, nil, fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewClientLogger(clientRole, cfg.Log.File)

	app, err := client.NewApp(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	return app.Services, app, nil
}

// withServices opens the client, runs fn and prints its result as JSON. When
// authenticated is set the stored session is restored first and a missing
// session is an error.
func (c *cli) withServices(cmd *cobra.Command, authenticated bool, fn func(ctx context.Context, s *service.ClientServices) (any, error)) error {
	ctx := cmd.Context()

	services, closer, err := c.openServices(ctx)
	if err != nil {
		return err
	}
	defer closer.Close()

	if authenticated {
		current, err := services.AuthService.RestoreSession(ctx)
		if err != nil {
			return err
		}
		if !current.IsAuthenticated() {
			return service.ErrNotAuthenticated
		}
	}

	result, err := fn(ctx, services)
	if err != nil {
		return err
	}

	return printJSON(cmd.OutOrStdout(), result)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
