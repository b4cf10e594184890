package cli

import (
	"github.com/chemaware/catalog/internal/domain"
	"github.com/spf13/cobra"
)

func newListCmd(opts *options) *cobra.Command {
	var (
		search  string
		ecoOnly bool
		sortBy  string
		page    int
		format  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List one page of the catalog",
		Example: `  chemaware list --search acid --sort name
  chemaware list --eco --page 2 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			sortKey, err := domain.ParseSortKey(sortBy)
			if err != nil {
				return err
			}

			a, err := newApp(cmd.Context(), opts.cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			result := a.browser.SetState(domain.ViewState{
				SearchText: search,
				EcoOnly:    ecoOnly,
				Sort:       sortKey,
				Page:       page,
			})

			if format != formatTable {
				return renderData(cmd.OutOrStdout(), format, result)
			}
			renderPage(cmd.OutOrStdout(), result, a.browser.IsFavorite)
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Case-insensitive text matched against name, description and usage")
	cmd.Flags().BoolVar(&ecoOnly, "eco", false, "Only show eco-friendly products")
	cmd.Flags().StringVar(&sortBy, "sort", "none", "Sort by: none, name, hazard, source")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page number (clamped to the available pages)")
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "Output format: table, json, yaml")
	return cmd
}
