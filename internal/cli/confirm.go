package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tupyy/record-manager/internal/models"
	srvErrors "github.com/tupyy/record-manager/pkg/errors"
)

// ErrAborted is returned when the user declines a destructive operation.
var ErrAborted = errors.New("aborted")

// Confirmer asks the user a yes/no question.
type Confirmer func(title string) (bool, error)

func huhConfirm(title string) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	return ok, err
}

func (o *rootOptions) ask(yes bool, title string) error {
	if yes {
		return nil
	}
	ok, err := o.confirm(title)
	if err != nil {
		return fmt.Errorf("confirmation failed (use --yes when not running in a terminal): %w", err)
	}
	if !ok {
		return ErrAborted
	}
	return nil
}

func newBulkDeleteCommand(opts *rootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "bulk-delete ID...",
		Short: "Delete several records at once",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), opts.cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			cmds := make([]models.Command, 0, len(args))
			for _, id := range args {
				cmds = append(cmds, models.Command{Kind: models.CmdToggle, ID: id, Checked: true})
			}
			model, err := dispatchAll(cmd.Context(), s.mgr, cmds...)
			if err != nil {
				return err
			}
			if model.SelectedCount == 0 {
				faintColor.Fprintln(cmd.OutOrStdout(), "no matching records, nothing to do")
				return nil
			}

			if err := opts.ask(yes, fmt.Sprintf("Delete %d selected record(s)?", model.SelectedCount)); err != nil {
				return err
			}

			before := model.StoredTotal
			model, err = s.mgr.Dispatch(cmd.Context(), models.Command{Kind: models.CmdBulkDelete, Confirmed: true})
			if err != nil {
				return err
			}

			successColor.Fprintf(cmd.OutOrStdout(), "deleted %d record(s)\n", before-model.StoredTotal)
			printWarning(cmd, model)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")

	return cmd
}

func newClearCommand(opts *rootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), opts.cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			n := s.records.Len()
			if err := opts.ask(yes, fmt.Sprintf("Delete all %d record(s)? This cannot be undone.", n)); err != nil {
				return err
			}

			model, err := s.mgr.Dispatch(cmd.Context(), models.Command{Kind: models.CmdClearAll, Confirmed: true})
			if err != nil {
				return err
			}

			successColor.Fprintf(cmd.OutOrStdout(), "deleted %d record(s)\n", n)
			printWarning(cmd, model)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")

	return cmd
}

// newResetCommand drops the record slot. Unlike clear, the next start sees no
// slot at all and seeds the demo records again when seeding is enabled.
func newResetCommand(opts *rootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Remove the stored record set so the next start begins fresh",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd.Context(), opts.cfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := st.Close(); err != nil {
					zap.S().Named("cli").Warnw("failed to close store", "error", err)
				}
			}()

			key := opts.cfg.Storage.SlotKey
			if err := opts.ask(yes, fmt.Sprintf("Remove the stored record set %q?", key)); err != nil {
				return err
			}

			if err := st.Slots().Delete(cmd.Context(), key); err != nil {
				return srvErrors.NewStorageError("delete", err)
			}

			successColor.Fprintf(cmd.OutOrStdout(), "removed record set %s\n", key)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")

	return cmd
}
