package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFavoritesCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "List favorite products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			a, err := newApp(cmd.Context(), opts.cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			favorites := a.browser.Favorites()
			if format != formatTable {
				return renderData(cmd.OutOrStdout(), format, favorites)
			}
			renderProducts(cmd.OutOrStdout(), favorites, a.browser.IsFavorite)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "Output format: table, json, yaml")

	cmd.AddCommand(&cobra.Command{
		Use:     "toggle <identifier>",
		Short:   "Add a product to the favorites, or remove it if already there",
		Example: "  chemaware favorites toggle local:p-07",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), opts.cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			on, err := a.browser.ToggleFavorite(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			verb := "removed from"
			if on {
				verb = "added to"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s favorites (%d total)\n", args[0], verb, a.browser.FavoriteCount())
			return nil
		},
	})
	return cmd
}
