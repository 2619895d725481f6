// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"

	"github.com/MKhiriev/go-patient-keeper/internal/service"
	"github.com/MKhiriev/go-patient-keeper/models"
	"github.com/spf13/cobra"
)

type statusOutput struct {
	Message string `json:"message"`
}

func (c *cli) loginCmd() *cobra.Command {
	var creds models.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withServices(cmd, false, func(ctx context.Context, s *service.ClientServices) (any, error) {
				current, err := s.AuthService.Login(ctx, creds)
				if err != nil {
					return nil, err
				}
				return current.User, nil
			})
		},
	}

	cmd.Flags().StringVar(&creds.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&creds.Password, "password", "", "Account password")

	return cmd
}

func (c *cli) registerCmd() *cobra.Command {
	var details models.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a company with its first user and store the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withServices(cmd, false, func(ctx context.Context, s *service.ClientServices) (any, error) {
				current, err := s.AuthService.Register(ctx, details)
				if err != nil {
					return nil, err
				}
				return current.User, nil
			})
		},
	}

	cmd.Flags().StringVar(&details.CompanyName, "company", "", "Company name")
	cmd.Flags().StringVar(&details.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&details.Password, "password", "", "Account password")
	cmd.Flags().StringVar(&details.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&details.LastName, "last-name", "", "Last name")

	return cmd
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withServices(cmd, false, func(ctx context.Context, s *service.ClientServices) (any, error) {
				if err := s.AuthService.Logout(ctx); err != nil {
					return nil, err
				}
				return statusOutput{Message: "Logged out"}, nil
			})
		},
	}
}

func (c *cli) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withServices(cmd, true, func(ctx context.Context, s *service.ClientServices) (any, error) {
				current, err := s.AuthService.CurrentSession(ctx)
				if err != nil {
					return nil, err
				}
				return current.User, nil
			})
		},
	}
}
