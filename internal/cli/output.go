package cli

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/tupyy/record-manager/internal/models"
)

var (
	adminColor   = color.New(color.FgRed, color.Bold)
	userColor    = color.New(color.FgCyan)
	guestColor   = color.New(color.FgWhite)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	faintColor   = color.New(color.Faint)
)

func roleString(r models.Role) string {
	switch r {
	case models.RoleAdmin:
		return adminColor.Sprint(r)
	case models.RoleUser:
		return userColor.Sprint(r)
	default:
		return guestColor.Sprint(r)
	}
}

// printModel renders the visible page as a table followed by the footer.
func printModel(w io.Writer, model models.RenderModel) error {
	if model.Warning != "" {
		warnColor.Fprintf(w, "warning: %s\n", model.Warning)
	}

	if model.Empty {
		if model.StoredTotal == 0 {
			faintColor.Fprintln(w, "No records yet.")
		} else {
			faintColor.Fprintf(w, "No records match %q.\n", model.Query)
		}
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("", "ID", "Name", "Email", "Role", "Created")
	for _, row := range model.Rows {
		mark := ""
		if row.Selected {
			mark = "*"
		}
		if err := table.Append([]string{
			mark,
			row.ID,
			row.Name,
			row.Email,
			roleString(row.Role),
			humanize.Time(row.CreatedAt),
		}); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "Showing %d to %d of %d entries", model.From, model.To, model.Total)
	if model.Total != model.StoredTotal {
		fmt.Fprintf(w, " (filtered from %s total)", humanize.Comma(int64(model.StoredTotal)))
	}
	fmt.Fprintf(w, " | page %d/%d | sort %s\n", model.Page, model.PageCount, model.Sort)
	return nil
}

func printRecord(w io.Writer, verb string, r models.Record) {
	successColor.Fprintf(w, "%s %s ", verb, r.ID)
	fmt.Fprintf(w, "%s <%s> %s\n", r.Name, r.Email, roleString(r.Role))
}
