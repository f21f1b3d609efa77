package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fieldoverrides/internal/matcher"
	"fieldoverrides/internal/registry"
)

func newPropertiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "properties",
		Short: "List the standard field properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tPATH\tCUSTOM\tNAME")

			for _, p := range registry.Standard().List() {
				info := p.Info()
				fmt.Fprintf(w, "%s\t%s\t%t\t%s\n", info.ID, info.Path, info.IsCustom, info.Name)
			}

			return w.Flush()
		},
	}
}

func newMatchersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "matchers",
		Short: "List the standard field matchers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")

			for _, m := range matcher.Standard().List() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", m.ID, m.Name, m.Description)
			}

			return w.Flush()
		},
	}
}
