package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tupyy/record-manager/internal/models"
	"github.com/tupyy/record-manager/internal/services"
)

// dispatchAll runs cmds in order and returns the last model. It stops at the
// first refused command.
func dispatchAll(ctx context.Context, mgr *services.Manager, cmds ...models.Command) (models.RenderModel, error) {
	var model models.RenderModel
	for _, c := range cmds {
		m, err := mgr.Dispatch(ctx, c)
		if err != nil {
			return m, err
		}
		model = m
	}
	return model, nil
}

func newAddCommand(opts *rootOptions) *cobra.Command {
	var name, email, role string

	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Add a record",
		Example: `  record-manager add --name "Rahim Uddin" --email rahim@example.com --role admin`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), opts.cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			model, err := s.mgr.Dispatch(cmd.Context(), models.Command{
				Kind:  models.CmdAdd,
				Name:  name,
				Email: email,
				Role:  models.Role(role),
			})
			if err != nil {
				return err
			}

			// new records are prepended
			printRecord(cmd.OutOrStdout(), "added", s.records.Records()[0])
			printWarning(cmd, model)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&role, "role", string(models.RoleUser), "role: admin, user or guest")

	return cmd
}

func newEditCommand(opts *rootOptions) *cobra.Command {
	var name, email, role string

	cmd := &cobra.Command{
		Use:     "edit ID",
		Short:   "Change the name, email or role of a record",
		Example: `  record-manager edit 3f2c... --role guest`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var fields models.RecordFields
			if cmd.Flags().Changed("name") {
				fields.Name = &name
			}
			if cmd.Flags().Changed("email") {
				fields.Email = &email
			}
			if cmd.Flags().Changed("role") {
				r := models.Role(role)
				fields.Role = &r
			}
			if fields.IsEmpty() {
				return fmt.Errorf("nothing to change: set at least one of --name, --email, --role")
			}

			s, err := openSession(cmd.Context(), opts.cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			id := args[0]
			if _, err := s.records.Get(id); err != nil {
				printMissing(cmd, id)
				return nil
			}

			model, err := s.mgr.Dispatch(cmd.Context(), models.Command{Kind: models.CmdEdit, ID: id, Fields: fields})
			if err != nil {
				return err
			}

			r, _ := s.records.Get(id)
			printRecord(cmd.OutOrStdout(), "updated", r)
			printWarning(cmd, model)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&email, "email", "", "new email")
	cmd.Flags().StringVar(&role, "role", "", "new role")

	return cmd
}

func newDeleteCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), opts.cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			id := args[0]
			r, err := s.records.Get(id)
			if err != nil {
				printMissing(cmd, id)
				return nil
			}

			model, err := s.mgr.Dispatch(cmd.Context(), models.Command{Kind: models.CmdDelete, ID: id})
			if err != nil {
				return err
			}

			printRecord(cmd.OutOrStdout(), "deleted", r)
			printWarning(cmd, model)
			return nil
		},
	}
}

func newCopyCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "copy ID",
		Short: "Duplicate a record under a new id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), opts.cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			id := args[0]
			if _, err := s.records.Get(id); err != nil {
				printMissing(cmd, id)
				return nil
			}

			model, err := s.mgr.Dispatch(cmd.Context(), models.Command{Kind: models.CmdCopy, ID: id})
			if err != nil {
				return err
			}

			printRecord(cmd.OutOrStdout(), "copied", s.records.Records()[0])
			printWarning(cmd, model)
			return nil
		},
	}
}

func printMissing(cmd *cobra.Command, id string) {
	faintColor.Fprintf(cmd.OutOrStdout(), "no record %s, nothing to do\n", id)
}

func printWarning(cmd *cobra.Command, model models.RenderModel) {
	if model.Warning != "" {
		warnColor.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", model.Warning)
	}
}
