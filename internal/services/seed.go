package services

import (
	"time"

	"github.com/tupyy/record-manager/internal/models"
)

var demoEntries = []struct {
	name  string
	email string
	role  models.Role
}{
	{"Rahim Uddin", "rahim@example.com", models.RoleAdmin},
	{"Karim Ahmed", "karim@example.com", models.RoleUser},
	{"Nusrat Jahan", "nusrat@example.com", models.RoleUser},
	{"Tanvir Hasan", "tanvir@example.com", models.RoleGuest},
	{"Sadia Islam", "sadia@example.com", models.RoleAdmin},
}

// DemoRecords returns the records installed on first start. Entries are
// spaced one hour apart, newest first.
func DemoRecords(now time.Time, newID func() string) []models.Record {
	records := make([]models.Record, 0, len(demoEntries))
	for i, e := range demoEntries {
		records = append(records, models.Record{
			ID:        newID(),
			Name:      e.name,
			Email:     e.email,
			Role:      e.role,
			CreatedAt: now.Add(-time.Duration(i) * time.Hour),
		})
	}
	return records
}
