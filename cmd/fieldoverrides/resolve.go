package main

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"fieldoverrides/internal/config"
	"fieldoverrides/internal/diagnostic"
	"fieldoverrides/internal/display"
	"fieldoverrides/internal/document"
	"fieldoverrides/internal/frame"
	"fieldoverrides/internal/overrides"
	"fieldoverrides/internal/urlutil"
)

type resolveFlags struct {
	dump bool
	row  int
}

func newResolveCmd(a *app) *cobra.Command {
	var flags resolveFlags

	cmd := &cobra.Command{
		Use:   "resolve FILE",
		Short: "Resolve the field configuration of a panel document",
		Long: `Resolve applies the document's defaults and override rules to every
field and prints the resolved frames.

Examples:
  fieldoverrides resolve panel.yaml
  fieldoverrides resolve panel.yaml --row 0
  fieldoverrides resolve panel.yaml -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runResolve(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], flags)
		},
	}

	cmd.Flags().BoolVar(&flags.dump, "dump", false, "dump the resolved Go structures")
	cmd.Flags().IntVar(&flags.row, "row", -1, "print display values and links of this row")

	return cmd
}

func (a *app) runResolve(out, errOut io.Writer, path string, flags resolveFlags) error {
	doc, err := document.LoadFile(path)
	if err != nil {
		return err
	}

	diags := &diagnostic.Diagnostics{}
	resolved := overrides.ApplyFieldOverrides(a.resolveOptions(doc, diags))

	for _, d := range diags.All() {
		fmt.Fprintf(errOut, "%s: %s\n", d.Severity, d)
	}

	if flags.dump {
		spew.Fdump(out, resolved)
		return nil
	}

	if flags.row >= 0 {
		printRow(out, resolved, flags.row)
		return nil
	}

	var data []byte
	if a.cfg.Output == config.OutputJSON {
		data, err = document.MarshalJSON(document.FromFrames(resolved))
	} else {
		data, err = document.Marshal(document.FromFrames(resolved))
	}

	if err != nil {
		return err
	}

	_, err = out.Write(data)

	return err
}

func (a *app) resolveOptions(doc *document.Document, diags *diagnostic.Diagnostics) overrides.Options {
	autoMinMax := a.cfg.AutoMinMax
	if doc.Options.AutoMinMax != nil {
		autoMinMax = *doc.Options.AutoMinMax
	}

	timeZone := a.cfg.TimeZone
	if doc.Options.TimeZone != "" {
		timeZone = doc.Options.TimeZone
	}

	theme := a.cfg.Theme
	if doc.Options.Theme != "" {
		theme = doc.Options.Theme
	}

	return overrides.Options{
		Data:        doc.DataFrames(),
		FieldConfig: doc.FieldConfig,
		Theme:       display.ThemeByName(theme),
		TimeZone:    timeZone,
		AutoMinMax:  autoMinMax,
		Locator:     urlutil.Static{BaseURL: a.cfg.BaseURL},
		Logger:      a.logger,
		Diagnostics: diags,
	}
}

// printRow prints every field's display value and links at row.
func printRow(out io.Writer, frames []*frame.Frame, row int) {
	for _, f := range frames {
		if row >= f.Length() {
			continue
		}

		for _, fld := range f.Fields {
			text := ""
			if fld.Display != nil {
				text = fld.Display(fld.ValueAt(row)).String()
			}

			fmt.Fprintf(out, "%s/%s: %s\n", f.Name, fld.Name, text)

			if fld.GetLinks == nil {
				continue
			}

			for _, l := range fld.GetLinks(frame.RowLink(row)) {
				fmt.Fprintf(out, "  %s -> %s (%s)\n", l.Title, l.Href, l.Target)
			}
		}
	}
}
