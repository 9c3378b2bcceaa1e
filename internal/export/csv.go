// Package export renders record sets as downloadable files.
package export

import (
	"io"
	"strings"
	"time"

	"github.com/tupyy/record-manager/internal/models"
)

const (
	CSVFilename  = "users.csv"
	XLSXFilename = "users.xlsx"

	// TimestampLayout is ISO-8601 with milliseconds.
	TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

var header = []string{"id", "name", "email", "role", "createdAt"}

// CSV encodes records with a header row. Every field is quoted, embedded
// quotes are doubled and rows are joined with "\n" without a trailing newline.
func CSV(records []models.Record) []byte {
	lines := make([]string, 0, len(records)+1)
	lines = append(lines, csvLine(header))
	for _, r := range records {
		lines = append(lines, csvLine(fields(r)))
	}
	return []byte(strings.Join(lines, "\n"))
}

// WriteCSV writes the CSV encoding of records to w.
func WriteCSV(w io.Writer, records []models.Record) error {
	_, err := w.Write(CSV(records))
	return err
}

func csvLine(values []string) string {
	quoted := make([]string, 0, len(values))
	for _, v := range values {
		quoted = append(quoted, `"`+strings.ReplaceAll(v, `"`, `""`)+`"`)
	}
	return strings.Join(quoted, ",")
}

func fields(r models.Record) []string {
	return []string{r.ID, r.Name, r.Email, string(r.Role), FormatTimestamp(r.CreatedAt)}
}

// FormatTimestamp renders t in UTC as ISO-8601 with milliseconds.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
