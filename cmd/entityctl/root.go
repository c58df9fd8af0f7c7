package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "entityctl",
		Short: "Validate and normalize exam posting records",
		Long: `entityctl checks Job and AdmitCard records written as JSON or YAML files
and prints either the normalized record or every validation issue found.`,
		SilenceUsage: true,
	}
	root.AddCommand(newValidateCmd())
	return root
}
