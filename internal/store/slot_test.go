package store_test

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tupyy/record-manager/internal/store"
	srvErrors "github.com/tupyy/record-manager/pkg/errors"
)

var _ = Describe("SlotStore", func() {
	var (
		ctx context.Context
		s   *store.Store
		db  *sql.DB
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		db, err = store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())

		s = store.NewStore(db)
		Expect(s.Migrate(ctx)).To(Succeed())
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	Context("Get", func() {
		// Given an empty slot store
		// When we read a slot that was never written
		// Then it should return ResourceNotFoundError
		It("should return ResourceNotFoundError when the slot is absent", func() {
			// Act
			_, err := s.Slots().Get(ctx, "users")

			// Assert
			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})

		// Given a slot written with a payload
		// When we read the slot
		// Then it should return the exact bytes
		It("should return the stored payload", func() {
			// Arrange
			payload := []byte(`[{"id":"1","name":"Rahim"}]`)
			Expect(s.Slots().Put(ctx, "users", payload)).To(Succeed())

			// Act
			data, err := s.Slots().Get(ctx, "users")

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(data).To(Equal(payload))
		})
	})

	Context("Put", func() {
		// Given an existing slot
		// When we write it again
		// Then the payload should be replaced (upsert)
		It("should replace an existing payload", func() {
			// Arrange
			Expect(s.Slots().Put(ctx, "users", []byte("first"))).To(Succeed())

			// Act
			err := s.Slots().Put(ctx, "users", []byte("second"))

			// Assert
			Expect(err).NotTo(HaveOccurred())
			data, err := s.Slots().Get(ctx, "users")
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(Equal("second"))
		})

		// Given two different slots
		// When both are written
		// Then each keeps its own payload
		It("should keep slots independent", func() {
			Expect(s.Slots().Put(ctx, "a", []byte("1"))).To(Succeed())
			Expect(s.Slots().Put(ctx, "b", []byte("2"))).To(Succeed())

			data, err := s.Slots().Get(ctx, "a")
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(Equal("1"))

			data, err = s.Slots().Get(ctx, "b")
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(Equal("2"))
		})
	})

	Context("Delete", func() {
		It("should remove the slot", func() {
			Expect(s.Slots().Put(ctx, "users", []byte("x"))).To(Succeed())

			Expect(s.Slots().Delete(ctx, "users")).To(Succeed())

			_, err := s.Slots().Get(ctx, "users")
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})

		It("should not fail on an absent slot", func() {
			Expect(s.Slots().Delete(ctx, "missing")).To(Succeed())
		})
	})

	Context("Concurrent writes", func() {
		// Given multiple goroutines writing to the same slot
		// When all goroutines save simultaneously
		// Then all writes should succeed and the slot holds one of the written values
		It("should handle concurrent writes from multiple goroutines", func() {
			const numGoroutines = 20
			var wg sync.WaitGroup
			errs := make(chan error, numGoroutines)

			for i := 0; i < numGoroutines; i++ {
				wg.Add(1)
				go func(idx int) {
					defer wg.Done()
					if err := s.Slots().Put(ctx, "users", []byte(fmt.Sprintf("v%d", idx))); err != nil {
						errs <- fmt.Errorf("goroutine %d: %w", idx, err)
					}
				}(i)
			}

			wg.Wait()
			close(errs)

			var all []error
			for err := range errs {
				all = append(all, err)
			}
			Expect(all).To(BeEmpty(), "Expected no errors from concurrent writes, got: %v", all)

			data, err := s.Slots().Get(ctx, "users")
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(HavePrefix("v"))
		})
	})
})
