package cli

import (
	"github.com/spf13/cobra"

	"github.com/tupyy/record-manager/internal/models"
)

func newListCommand(opts *rootOptions) *cobra.Command {
	var (
		query string
		sort  []string
		page  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show one page of records",
		Example: `  record-manager list --query kar
  record-manager list --sort role:asc,name:desc --page 2 --per-page 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := models.ParseSort(sort)
			if err != nil {
				return err
			}

			s, err := openSession(cmd.Context(), opts.cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			model, err := dispatchAll(cmd.Context(), s.mgr,
				models.Command{Kind: models.CmdSearch, Query: query},
				models.Command{Kind: models.CmdSort, Sort: keys},
				models.Command{Kind: models.CmdGoToPage, Page: page},
			)
			if err != nil {
				return err
			}

			return printModel(cmd.OutOrStdout(), model)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "only show records whose name or email contains this text")
	cmd.Flags().StringSliceVarP(&sort, "sort", "s", nil, "sort keys as field:direction (name, email, role, createdAt)")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "page to show, clamped to the last page")

	return cmd
}
