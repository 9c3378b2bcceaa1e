package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tupyy/record-manager/internal/export"
	"github.com/tupyy/record-manager/internal/models"
)

func newExportCommand(opts *rootOptions) *cobra.Command {
	var (
		format   string
		output   string
		query    string
		sort     []string
		filtered bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export records as CSV or XLSX",
		Example: `  record-manager export                       # users.csv, every record
  record-manager export --format xlsx --query kar --filtered
  record-manager export --output -             # CSV on stdout`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var write func(io.Writer, []models.Record) error
			switch format {
			case "csv":
				write = export.WriteCSV
				if output == "" {
					output = export.CSVFilename
				}
			case "xlsx":
				write = export.WriteXLSX
				if output == "" {
					output = export.XLSXFilename
				}
			default:
				return fmt.Errorf("unknown export format %q: must be csv or xlsx", format)
			}

			keys, err := models.ParseSort(sort)
			if err != nil {
				return err
			}

			s, err := openSession(cmd.Context(), opts.cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			if _, err := dispatchAll(cmd.Context(), s.mgr,
				models.Command{Kind: models.CmdSearch, Query: query},
				models.Command{Kind: models.CmdSort, Sort: keys},
			); err != nil {
				return err
			}

			records, err := s.mgr.Export(cmd.Context(), filtered)
			if err != nil {
				return err
			}

			if output == "-" {
				return write(cmd.OutOrStdout(), records)
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			if err := write(f, records); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			zap.S().Named("cli").Debugw("records exported", "format", format, "file", output, "count", len(records))
			successColor.Fprintf(cmd.OutOrStdout(), "exported %d record(s) to %s\n", len(records), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "csv", "csv or xlsx")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, - for stdout (default users.csv or users.xlsx)")
	cmd.Flags().StringVarP(&query, "query", "q", "", "search text used with --filtered")
	cmd.Flags().StringSliceVarP(&sort, "sort", "s", nil, "sort keys as field:direction")
	cmd.Flags().BoolVar(&filtered, "filtered", false, "export only the records matching --query")

	return cmd
}
