package cli

import (
	"github.com/spf13/cobra"
)

func newCompareCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "compare <identifier> <identifier>",
		Short:   "Compare two products side by side",
		Example: "  chemaware compare local:p-02 local:p-12",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			a, err := newApp(cmd.Context(), opts.cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			for _, id := range args {
				if err := a.browser.AddCompare(id); err != nil {
					return err
				}
			}
			left, right, err := a.browser.ComparePair()
			if err != nil {
				return err
			}

			if format != formatTable {
				return renderData(cmd.OutOrStdout(), format, map[string]any{"left": left, "right": right})
			}
			renderPair(cmd.OutOrStdout(), left, right)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "Output format: table, json, yaml")
	return cmd
}
