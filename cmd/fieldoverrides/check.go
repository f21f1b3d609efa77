package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"fieldoverrides/internal/document"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Report structural problems and unknown ids in a panel document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := document.LoadFile(args[0])
			if err != nil {
				return err
			}

			res := document.Validate(doc, nil, nil)
			for _, d := range res.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", d.Severity, d)
			}

			a.logger.Debug("document checked")

			if res.HasErrors() {
				return errors.New("document has errors")
			}

			fmt.Fprintln(cmd.OutOrStdout(), "ok")

			return nil
		},
	}
}
