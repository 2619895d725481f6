// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/MKhiriev/go-patient-keeper/internal/service"
	"github.com/MKhiriev/go-patient-keeper/internal/utils"
	"github.com/MKhiriev/go-patient-keeper/models"
	"github.com/spf13/cobra"
)

var errNoPatientFile = errors.New("--file is required (use - for stdin)")

type deletedOutput struct {
	Deleted int64 `json:"deleted"`
}

func (c *cli) patientsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "patients",
		Aliases: []string{"patient"},
		Short:   "Manage the patients of your company",
	}

	cmd.AddCommand(
		c.patientsListCmd(),
		c.patientsGetCmd(),
		c.patientsCreateCmd(),
		c.patientsUpdateCmd(),
		c.patientsDeleteCmd(),
	)

	return cmd
}

func (c *cli) patientsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List patients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withServices(cmd, true, func(ctx context.Context, s *service.ClientServices) (any, error) {
				return s.PatientService.List(ctx)
			})
		},
	}
}

func (c *cli) patientsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one patient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return c.withServices(cmd, true, func(ctx context.Context, s *service.ClientServices) (any, error) {
				return s.PatientService.Get(ctx, id)
			})
		},
	}
}

func (c *cli) patientsCreateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a patient from a JSON document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			patient, err := c.readPatient(file)
			if err != nil {
				return err
			}
			return c.withServices(cmd, true, func(ctx context.Context, s *service.ClientServices) (any, error) {
				return s.PatientService.Create(ctx, patient)
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Patient JSON file, - for stdin")
	return cmd
}

func (c *cli) patientsUpdateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a patient with a JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			patient, err := c.readPatient(file)
			if err != nil {
				return err
			}
			return c.withServices(cmd, true, func(ctx context.Context, s *service.ClientServices) (any, error) {
				return s.PatientService.Update(ctx, id, patient)
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Patient JSON file, - for stdin")
	return cmd
}

func (c *cli) patientsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a patient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return c.withServices(cmd, true, func(ctx context.Context, s *service.ClientServices) (any, error) {
				if err := s.PatientService.Delete(ctx, id); err != nil {
					return nil, err
				}
				return deletedOutput{Deleted: id}, nil
			})
		},
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", service.ErrInvalidPatientID, raw)
	}
	return id, nil
}

// readPatient decodes a patient from path, or from stdin when path is "-".
// A dd/MM/yyyy birth date is accepted and converted to yyyy-MM-dd.
func (c *cli) readPatient(path string) (models.Patient, error) {
	var r io.Reader
	switch path {
	case "":
		return models.Patient{}, errNoPatientFile
	case "-":
		r = c.stdin
	default:
		f, err := os.Open(path)
		if err != nil {
			return models.Patient{}, fmt.Errorf("error opening patient file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var patient models.Patient
	if err := json.NewDecoder(r).Decode(&patient); err != nil {
		return models.Patient{}, fmt.Errorf("error decoding patient JSON: %w", err)
	}
	patient.BirthDate = utils.ToCanonicalDate(patient.BirthDate)

	return patient, nil
}
