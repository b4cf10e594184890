package cli

import (
	"github.com/spf13/cobra"
)

func newShowCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "show <identifier>",
		Short:   "Show the details of one product",
		Example: "  chemaware show local:p-02",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			a, err := newApp(cmd.Context(), opts.cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			detail, err := a.browser.Details(args[0])
			if err != nil {
				return err
			}
			if format != formatTable {
				return renderData(cmd.OutOrStdout(), format, detail)
			}
			renderDetail(cmd.OutOrStdout(), detail)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "Output format: table, json, yaml")
	return cmd
}
