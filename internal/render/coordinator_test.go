package render_test

import (
	"fmt"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tupyy/record-manager/internal/models"
	"github.com/tupyy/record-manager/internal/render"
)

var _ = Describe("Coordinator", func() {
	var (
		records []models.Record
		view    *models.ViewState
	)

	BeforeEach(func() {
		t0 := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
		records = make([]models.Record, 0, 12)
		for i := 1; i <= 12; i++ {
			records = append(records, models.Record{
				ID:        fmt.Sprintf("id-%02d", i),
				Name:      fmt.Sprintf("user%02d", i),
				Email:     fmt.Sprintf("user%02d@example.com", i),
				Role:      models.RoleUser,
				CreatedAt: t0.Add(time.Duration(i) * time.Minute),
			})
		}
		view = models.NewViewState(5)
	})

	It("should render the first page newest first", func() {
		model := render.BuildModel(records, view)

		Expect(model.Rows).To(HaveLen(5))
		Expect(model.Rows[0].ID).To(Equal("id-12"))
		Expect(model.PageCount).To(Equal(3))
		Expect(model.Total).To(Equal(12))
		Expect(model.StoredTotal).To(Equal(12))
		Expect(model.From).To(Equal(1))
		Expect(model.To).To(Equal(5))
		Expect(model.HasPrev()).To(BeFalse())
		Expect(model.HasNext()).To(BeTrue())
		Expect(model.Empty).To(BeFalse())
	})

	It("should write the clamped page back into the view", func() {
		view.Page = 10

		model := render.BuildModel(records, view)

		Expect(model.Page).To(Equal(3))
		Expect(view.Page).To(Equal(3))
		Expect(model.Rows).To(HaveLen(2))
		Expect(model.HasNext()).To(BeFalse())
	})

	It("should mark selected rows and the header checkbox", func() {
		page := render.VisiblePage(records, *view)
		for _, r := range page {
			view.Selected.Add(r.ID)
		}

		model := render.BuildModel(records, view)

		Expect(model.AllSelected).To(BeTrue())
		Expect(model.SelectedCount).To(Equal(5))
		for _, row := range model.Rows {
			Expect(row.Selected).To(BeTrue())
		}
	})

	It("should count selections outside the visible page", func() {
		view.Selected.Add("id-01")

		model := render.BuildModel(records, view)

		Expect(model.SelectedCount).To(Equal(1))
		Expect(model.AllSelected).To(BeFalse())
	})

	It("should drop selected ids that have no record", func() {
		view.Selected.Add("id-12")
		view.Selected.Add("gone")

		model := render.BuildModel(records, view)

		Expect(model.SelectedCount).To(Equal(1))
		Expect(view.Selected.IDs()).To(Equal([]string{"id-12"}))
	})

	It("should report an empty state when nothing matches", func() {
		view.Query = "nobody"

		model := render.BuildModel(records, view)

		Expect(model.Empty).To(BeTrue())
		Expect(model.Rows).To(BeEmpty())
		Expect(model.Total).To(Equal(0))
		Expect(model.StoredTotal).To(Equal(12))
		Expect(model.AllSelected).To(BeFalse())
		Expect(model.Page).To(Equal(1))
	})

	It("should not change the view when computing the visible page", func() {
		view.Page = 10

		page := render.VisiblePage(records, *view)

		Expect(page).To(HaveLen(2))
		Expect(view.Page).To(Equal(10))
	})
})
