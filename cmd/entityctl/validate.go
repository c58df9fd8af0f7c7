package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/validate"
	"github.com/spf13/cobra"
)

var errInvalidRecords = errors.New("one or more records failed validation")

const (
	kindJob       = "job"
	kindAdmitCard = "admit-card"
)

type validateOptions struct {
	kind    string
	mode    string
	compact bool
}

func newValidateCmd() *cobra.Command {
	opts := &validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate FILE...",
		Short: "Validate records and print the normalized form",
		Long: `Validates each FILE as a single record. Files ending in .yaml or .yml are
read as YAML, anything else as JSON; "-" reads JSON from stdin.
Exits non-zero when any record fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, opts, args)
		},
	}
	cmd.Flags().StringVarP(&opts.kind, "kind", "k", kindJob, "record kind: job or admit-card")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "create", "validation mode: create or update")
	cmd.Flags().BoolVar(&opts.compact, "compact", false, "print normalized records on one line")
	return cmd
}

func runValidate(cmd *cobra.Command, opts *validateOptions, paths []string) error {
	validateFn, err := validatorFor(opts.kind)
	if err != nil {
		return err
	}
	mode, err := parseMode(opts.mode)
	if err != nil {
		return err
	}

	failed := 0
	for _, path := range paths {
		raw, err := readRecord(path, cmd.InOrStdin())
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
			failed++
			continue
		}

		record, err := validateFn(raw, mode)
		if err != nil {
			printIssues(cmd.ErrOrStderr(), path, err)
			failed++
			continue
		}
		if err := printRecord(cmd.OutOrStdout(), record, opts.compact); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errInvalidRecords, failed, len(paths))
	}
	return nil
}

type validateFunc func(raw any, mode validate.Mode) (any, error)

func validatorFor(kind string) (validateFunc, error) {
	switch kind {
	case kindJob:
		return func(raw any, mode validate.Mode) (any, error) {
			return validate.ValidateJob(raw, mode)
		}, nil
	case kindAdmitCard:
		return func(raw any, mode validate.Mode) (any, error) {
			return validate.ValidateAdmitCard(raw, mode)
		}, nil
	default:
		return nil, fmt.Errorf("unknown kind %q: want %s or %s", kind, kindJob, kindAdmitCard)
	}
}

func parseMode(s string) (validate.Mode, error) {
	switch s {
	case "create":
		return validate.ModeCreate, nil
	case "update":
		return validate.ModeUpdate, nil
	default:
		return 0, fmt.Errorf("unknown mode %q: want create or update", s)
	}
}

func printIssues(w io.Writer, path string, err error) {
	report, ok := validate.AsReport(err)
	if !ok {
		fmt.Fprintf(w, "%s: %v\n", path, err)
		return
	}
	fmt.Fprintf(w, "%s: %d issue(s)\n", path, len(report.Issues))
	for _, issue := range report.Issues {
		fmt.Fprintf(w, "  %s: %s: %s\n", displayPath(issue.Path), issue.Code, issue.Message)
	}
}

func displayPath(p string) string {
	if p == "" {
		return "(record)"
	}
	return p
}

func printRecord(w io.Writer, record any, compact bool) error {
	var (
		out []byte
		err error
	)
	if compact {
		out, err = json.Marshal(record)
	} else {
		out, err = json.MarshalIndent(record, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
