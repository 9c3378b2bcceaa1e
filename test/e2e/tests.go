package main

import (
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tupyy/record-manager/test/e2e/service"
)

var _ = Describe("record-manager", Ordered, func() {
	var svc *service.RecordsSvc

	BeforeAll(func() {
		baseURL, err := infraManager.StartServer()
		Expect(err).NotTo(HaveOccurred())
		svc = service.NewRecordsService(baseURL)
	})

	AfterAll(func() {
		Expect(infraManager.StopServer()).To(Succeed())
	})

	// Given a fresh server
	// When the view is requested
	// Then the demo records are shown newest first
	It("should serve the seeded view", func() {
		view, err := svc.View()

		Expect(err).NotTo(HaveOccurred())
		Expect(view.StoredTotal).To(BeNumerically(">=", 5))
		Expect(view.Sort[0].Field).To(Equal("createdAt"))
		Expect(view.Sort[0].Direction).To(Equal("desc"))
	})

	It("should add, search and clamp pages", func() {
		before, err := svc.View()
		Expect(err).NotTo(HaveOccurred())

		view, err := svc.Create("E2E Karima", "karima.e2e@example.com", "user")
		Expect(err).NotTo(HaveOccurred())
		Expect(view.StoredTotal).To(Equal(before.StoredTotal + 1))

		view, err = svc.Search("karima.e2e")
		Expect(err).NotTo(HaveOccurred())
		Expect(view.Records).To(HaveLen(1))

		view, err = svc.GoToPage(99)
		Expect(err).NotTo(HaveOccurred())
		Expect(view.Page).To(Equal(1))

		_, err = svc.Search("")
		Expect(err).NotTo(HaveOccurred())
	})

	It("should refuse invalid input", func() {
		_, err := svc.Create("", "not-an-email", "user")

		var apiErr *service.APIError
		Expect(errors.As(err, &apiErr)).To(BeTrue())
		Expect(apiErr.Status).To(Equal(400))
		Expect(apiErr.Body.Fields).To(HaveKey("email"))
	})

	It("should require confirmation before bulk delete", func() {
		view, err := svc.SelectPage(true)
		Expect(err).NotTo(HaveOccurred())
		Expect(view.AllSelected).To(BeTrue())

		_, err = svc.BulkDelete(false)
		var apiErr *service.APIError
		Expect(errors.As(err, &apiErr)).To(BeTrue())
		Expect(apiErr.Status).To(Equal(409))

		after, err := svc.BulkDelete(true)
		Expect(err).NotTo(HaveOccurred())
		Expect(after.SelectedCount).To(Equal(0))
		Expect(after.StoredTotal).To(Equal(view.StoredTotal - view.SelectedCount))
	})

	It("should keep records across restarts", func() {
		before, err := svc.View()
		Expect(err).NotTo(HaveOccurred())

		Expect(infraManager.RestartServer()).To(Succeed())

		after, err := svc.View()
		Expect(err).NotTo(HaveOccurred())
		Expect(after.StoredTotal).To(Equal(before.StoredTotal))
	})

	It("should export every record as CSV", func() {
		view, err := svc.View()
		Expect(err).NotTo(HaveOccurred())

		csv, err := svc.ExportCSV(false)
		Expect(err).NotTo(HaveOccurred())

		lines := strings.Split(csv, "\n")
		Expect(lines[0]).To(Equal(`"id","name","email","role","createdAt"`))
		Expect(lines).To(HaveLen(view.StoredTotal + 1))
	})

	It("should clear everything after confirmation", func() {
		view, err := svc.Clear(true)

		Expect(err).NotTo(HaveOccurred())
		Expect(view.Empty).To(BeTrue())
		Expect(view.StoredTotal).To(Equal(0))
	})
})
