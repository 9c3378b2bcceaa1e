package models_test

import (
	"encoding/json"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tupyy/record-manager/internal/models"
)

var _ = Describe("Sort", func() {
	DescribeTable("ParseSortKey",
		func(in string, expected models.SortKey) {
			k, err := models.ParseSortKey(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(k).To(Equal(expected))
		},
		Entry("field only", "name", models.SortKey{Field: models.SortByName, Direction: models.Asc}),
		Entry("ascending", "email:asc", models.SortKey{Field: models.SortByEmail, Direction: models.Asc}),
		Entry("descending, any case", "createdAt:DESC", models.SortKey{Field: models.SortByCreatedAt, Direction: models.Desc}),
		Entry("surrounding blanks", " role:desc ", models.SortKey{Field: models.SortByRole, Direction: models.Desc}),
	)

	DescribeTable("ParseSortKey errors",
		func(in string) {
			_, err := models.ParseSortKey(in)
			Expect(err).To(HaveOccurred())
		},
		Entry("unknown field", "age:asc"),
		Entry("unknown direction", "name:up"),
		Entry("empty", ""),
	)

	It("should parse comma separated and repeated params in order", func() {
		sort, err := models.ParseSort([]string{"role:asc,name:desc", "createdAt"})

		Expect(err).NotTo(HaveOccurred())
		Expect(sort.String()).To(Equal("role:asc,name:desc,createdAt:asc"))
	})

	It("should return no keys for empty params", func() {
		sort, err := models.ParseSort([]string{"", " , "})

		Expect(err).NotTo(HaveOccurred())
		Expect(sort).To(BeEmpty())
	})
})

var _ = Describe("Record", func() {
	It("should apply only the set fields", func() {
		created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
		r := models.Record{ID: "a", Name: "Rahim", Email: "rahim@example.com", Role: models.RoleAdmin, CreatedAt: created}
		role := models.RoleGuest

		updated := models.RecordFields{Role: &role}.Apply(r)

		Expect(updated).To(Equal(models.Record{ID: "a", Name: "Rahim", Email: "rahim@example.com", Role: models.RoleGuest, CreatedAt: created}))
		Expect(r.Role).To(Equal(models.RoleAdmin))
	})

	It("should serialize with the slot field names", func() {
		r := models.Record{
			ID:        "a",
			Name:      "Rahim",
			Email:     "rahim@example.com",
			Role:      models.RoleAdmin,
			CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		}

		data, err := json.Marshal(r)

		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(MatchJSON(`{"id":"a","name":"Rahim","email":"rahim@example.com","role":"admin","createdAt":"2024-03-01T10:00:00Z"}`))
	})
})

var _ = Describe("ViewState", func() {
	It("should start on page 1 with the default sort", func() {
		v := models.NewViewState(0)

		Expect(v.Page).To(Equal(1))
		Expect(v.PerPage).To(Equal(1))
		Expect(v.Sort).To(Equal(models.DefaultSort))
		Expect(v.Selected.Len()).To(Equal(0))
	})

	It("should not share the default sort", func() {
		v := models.NewViewState(10)
		v.Sort[0].Direction = models.Asc

		Expect(models.DefaultSort[0].Direction).To(Equal(models.Desc))
	})
})

var _ = Describe("CommandKind", func() {
	It("should name known and unknown kinds", func() {
		Expect(models.CmdBulkDelete.String()).To(Equal("bulk-delete"))
		Expect(models.CommandKind(99).String()).To(Equal("command(99)"))
	})
})
