package services_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tupyy/record-manager/internal/models"
	"github.com/tupyy/record-manager/internal/services"
	"github.com/tupyy/record-manager/internal/store"
	srvErrors "github.com/tupyy/record-manager/pkg/errors"
)

var _ = Describe("RecordService", func() {
	var (
		ctx   context.Context
		db    *sql.DB
		st    *store.Store
		slots *countingSlots
		clock *manualClock
		svc   *services.RecordService
		t0    time.Time
	)

	newService := func() *services.RecordService {
		return services.NewRecordService(slots, "users",
			services.WithClock(clock.Now),
			services.WithIDGenerator(sequentialIDs()),
			services.WithPersistRetries(2),
		)
	}

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		db, err = store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())

		st = store.NewStore(db)
		Expect(st.Migrate(ctx)).To(Succeed())

		t0 = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
		clock = &manualClock{now: t0}
		slots = &countingSlots{inner: st.Slots()}
		svc = newService()
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	Context("LoadAll", func() {
		// Given a slot store without the record slot
		// When we load the records
		// Then it should return an empty set without error
		It("should return an empty set when the slot is absent", func() {
			Expect(svc.LoadAll(ctx)).To(BeEmpty())
		})

		// Given a slot holding a payload that is not JSON
		// When we load the records
		// Then it should behave exactly as if the slot were empty
		It("should treat a corrupt payload as empty", func() {
			Expect(st.Slots().Put(ctx, "users", []byte("{not json"))).To(Succeed())

			Expect(svc.LoadAll(ctx)).To(BeEmpty())
		})

		It("should re-mint missing and duplicated ids", func() {
			payload := `[{"id":"a","name":"A","email":"a@x.io","role":"user"},` +
				`{"id":"a","name":"B","email":"b@x.io","role":"user"},` +
				`{"name":"C","email":"c@x.io","role":"user"},null]`
			Expect(st.Slots().Put(ctx, "users", []byte(payload))).To(Succeed())

			records := svc.LoadAll(ctx)

			Expect(records).To(HaveLen(3))
			ids := map[string]bool{}
			for _, r := range records {
				Expect(r.ID).NotTo(BeEmpty())
				ids[r.ID] = true
			}
			Expect(ids).To(HaveLen(3))
			Expect(records[0].ID).To(Equal("a"))
		})
	})

	Context("Init", func() {
		// Given empty storage and seeding enabled
		// When the service starts
		// Then the demo records are installed and written once
		It("should seed demo records on empty storage", func() {
			Expect(svc.Init(ctx, true)).To(Succeed())

			Expect(svc.Len()).To(Equal(5))
			Expect(slots.Puts()).To(Equal(1))
			Expect(newService().LoadAll(ctx)).To(HaveLen(5))
		})

		It("should seed when the payload is corrupt", func() {
			Expect(st.Slots().Put(ctx, "users", []byte("garbage"))).To(Succeed())

			Expect(svc.Init(ctx, true)).To(Succeed())

			Expect(svc.Len()).To(Equal(5))
		})

		It("should start empty when seeding is disabled", func() {
			Expect(svc.Init(ctx, false)).To(Succeed())

			Expect(svc.Len()).To(Equal(0))
			Expect(slots.Puts()).To(Equal(0))
		})

		It("should not reseed a store that was cleared", func() {
			Expect(svc.Init(ctx, true)).To(Succeed())
			_, err := svc.Clear(ctx)
			Expect(err).NotTo(HaveOccurred())

			other := newService()
			Expect(other.Init(ctx, true)).To(Succeed())

			Expect(other.Len()).To(Equal(0))
		})

		It("should keep stored records and not seed", func() {
			_, err := svc.Create(ctx, "Rahim", "rahim@example.com", models.RoleAdmin)
			Expect(err).NotTo(HaveOccurred())

			other := newService()
			Expect(other.Init(ctx, true)).To(Succeed())

			Expect(other.Len()).To(Equal(1))
			Expect(other.Records()[0].Name).To(Equal("Rahim"))
		})
	})

	Context("Persist round trip", func() {
		// Given a record set persisted to the slot
		// When a fresh service loads the slot
		// Then the records are equal field by field
		It("should load what was persisted", func() {
			for _, n := range []string{"Rahim", "Karim", "Nusrat"} {
				_, err := svc.Create(ctx, n, n+"@example.com", models.RoleUser)
				Expect(err).NotTo(HaveOccurred())
				clock.Advance(1500 * time.Microsecond)
			}

			loaded := newService().LoadAll(ctx)

			original := svc.Records()
			Expect(loaded).To(HaveLen(len(original)))
			for i := range original {
				Expect(loaded[i].ID).To(Equal(original[i].ID))
				Expect(loaded[i].Name).To(Equal(original[i].Name))
				Expect(loaded[i].Email).To(Equal(original[i].Email))
				Expect(loaded[i].Role).To(Equal(original[i].Role))
				Expect(loaded[i].CreatedAt).To(BeTemporally("==", original[i].CreatedAt))
			}
		})

		It("should store createdAt as an ISO-8601 string", func() {
			_, err := svc.Create(ctx, "Rahim", "rahim@example.com", models.RoleAdmin)
			Expect(err).NotTo(HaveOccurred())

			data, err := st.Slots().Get(ctx, "users")
			Expect(err).NotTo(HaveOccurred())

			var raw []map[string]any
			Expect(json.Unmarshal(data, &raw)).To(Succeed())
			Expect(raw).To(HaveLen(1))
			Expect(raw[0]).To(HaveKeyWithValue("createdAt", "2024-03-01T10:00:00Z"))
			Expect(raw[0]).To(HaveKeyWithValue("id", "rec-1"))
		})
	})

	Context("Create", func() {
		It("should mint id and createdAt and prepend the record", func() {
			first, err := svc.Create(ctx, "Rahim", "rahim@example.com", models.RoleAdmin)
			Expect(err).NotTo(HaveOccurred())
			clock.Advance(time.Minute)
			second, err := svc.Create(ctx, "  Karim ", "karim@example.com", models.RoleUser)
			Expect(err).NotTo(HaveOccurred())

			Expect(first.ID).To(Equal("rec-1"))
			Expect(first.CreatedAt).To(BeTemporally("==", t0))
			Expect(second.Name).To(Equal("Karim"))
			Expect(svc.Records()[0].ID).To(Equal(second.ID))
			Expect(svc.Records()[1].ID).To(Equal(first.ID))
			Expect(slots.Puts()).To(Equal(2))
		})

		// Given an empty name
		// When we create a record
		// Then a ValidationError is returned, the store is unchanged and nothing is persisted
		It("should reject an empty name without persisting", func() {
			_, err := svc.Create(ctx, "", "rahim@example.com", models.RoleAdmin)

			Expect(srvErrors.IsValidationError(err)).To(BeTrue())
			Expect(svc.Len()).To(Equal(0))
			Expect(slots.Puts()).To(Equal(0))
		})

		It("should reject a malformed email", func() {
			for _, email := range []string{"rahim", "rahim@example", "@example.com", "ra him@example.com"} {
				_, err := svc.Create(ctx, "Rahim", email, models.RoleAdmin)
				Expect(srvErrors.IsValidationError(err)).To(BeTrue(), email)
			}
			Expect(svc.Len()).To(Equal(0))
		})

		It("should reject a missing role", func() {
			_, err := svc.Create(ctx, "Rahim", "rahim@example.com", "")

			Expect(srvErrors.IsValidationError(err)).To(BeTrue())
		})
	})

	Context("Update", func() {
		var rec models.Record

		BeforeEach(func() {
			var err error
			rec, err = svc.Create(ctx, "Rahim", "rahim@example.com", models.RoleAdmin)
			Expect(err).NotTo(HaveOccurred())
			clock.Advance(time.Hour)
		})

		It("should apply only the given fields", func() {
			name := "Rahim Uddin"

			updated, err := svc.Update(ctx, rec.ID, models.RecordFields{Name: &name})

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(Equal("Rahim Uddin"))
			Expect(updated.Email).To(Equal("rahim@example.com"))
			Expect(updated.ID).To(Equal(rec.ID))
			Expect(updated.CreatedAt).To(BeTemporally("==", rec.CreatedAt))
			Expect(svc.Records()[0].Name).To(Equal("Rahim Uddin"))
		})

		It("should reject invalid fields and keep the record", func() {
			email := "broken"

			_, err := svc.Update(ctx, rec.ID, models.RecordFields{Email: &email})

			Expect(srvErrors.IsValidationError(err)).To(BeTrue())
			Expect(svc.Records()[0].Email).To(Equal("rahim@example.com"))
			Expect(slots.Puts()).To(Equal(1))
		})

		It("should signal NotFound for an unknown id", func() {
			role := models.RoleGuest

			_, err := svc.Update(ctx, "nope", models.RecordFields{Role: &role})

			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})
	})

	Context("Remove", func() {
		It("should delete the record and persist", func() {
			rec, err := svc.Create(ctx, "Rahim", "rahim@example.com", models.RoleAdmin)
			Expect(err).NotTo(HaveOccurred())

			removed, err := svc.Remove(ctx, rec.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(removed).To(BeTrue())
			Expect(svc.Len()).To(Equal(0))
			Expect(slots.Puts()).To(Equal(2))
		})

		It("should be a no-op for an absent id", func() {
			removed, err := svc.Remove(ctx, "ghost")

			Expect(err).NotTo(HaveOccurred())
			Expect(removed).To(BeFalse())
			Expect(slots.Puts()).To(Equal(0))
		})
	})

	Context("RemoveMany", func() {
		// Given several records
		// When we remove a subset of ids, including an unknown one
		// Then none of the ids remain and the set is persisted once
		It("should delete all matching ids with a single persist", func() {
			var ids []string
			for _, n := range []string{"a", "b", "c", "d"} {
				r, err := svc.Create(ctx, n, n+"@example.com", models.RoleUser)
				Expect(err).NotTo(HaveOccurred())
				ids = append(ids, r.ID)
			}
			before := slots.Puts()

			removed, err := svc.RemoveMany(ctx, []string{ids[0], ids[2], "ghost"})

			Expect(err).NotTo(HaveOccurred())
			Expect(removed).To(ConsistOf(ids[0], ids[2]))
			Expect(slots.Puts()).To(Equal(before + 1))
			for _, r := range svc.Records() {
				Expect(r.ID).NotTo(BeElementOf(ids[0], ids[2]))
			}
			Expect(svc.Len()).To(Equal(2))
		})
	})

	Context("Duplicate", func() {
		// Given an existing record X
		// When we duplicate X
		// Then a new record with the same name/email/role, a new id and createdAt = now is added
		It("should clone the record with a fresh id and timestamp", func() {
			src, err := svc.Create(ctx, "Rahim", "rahim@example.com", models.RoleAdmin)
			Expect(err).NotTo(HaveOccurred())
			clock.Advance(5 * time.Minute)

			clone, err := svc.Duplicate(ctx, src.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(svc.Len()).To(Equal(2))
			Expect(clone.ID).NotTo(Equal(src.ID))
			Expect(clone.Name).To(Equal(src.Name))
			Expect(clone.Email).To(Equal(src.Email))
			Expect(clone.Role).To(Equal(src.Role))
			Expect(clone.CreatedAt).To(BeTemporally("==", t0.Add(5*time.Minute)))
			Expect(svc.Records()[0].ID).To(Equal(clone.ID))
		})

		It("should signal NotFound for an unknown id", func() {
			_, err := svc.Duplicate(ctx, "ghost")

			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
			Expect(svc.Len()).To(Equal(0))
		})
	})

	Context("Clear", func() {
		It("should empty the set and persist", func() {
			_, err := svc.Create(ctx, "Rahim", "rahim@example.com", models.RoleAdmin)
			Expect(err).NotTo(HaveOccurred())

			ids, err := svc.Clear(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(ids).To(Equal([]string{"rec-1"}))
			Expect(svc.Len()).To(Equal(0))
			Expect(newService().LoadAll(ctx)).To(BeEmpty())
		})
	})

	Context("Storage failures", func() {
		// Given a slot store that rejects writes
		// When we create a record
		// Then a StorageError is reported but the in-memory record stays
		It("should keep the in-memory change and report a StorageError", func() {
			slots.SetFailing(true)

			rec, err := svc.Create(ctx, "Rahim", "rahim@example.com", models.RoleAdmin)

			Expect(srvErrors.IsStorageError(err)).To(BeTrue())
			Expect(rec.ID).NotTo(BeEmpty())
			Expect(svc.Len()).To(Equal(1))
			Expect(svc.LastError()).To(HaveOccurred())
			Expect(slots.Puts()).To(Equal(2))
		})

		It("should clear the last error after a successful write", func() {
			slots.SetFailing(true)
			_, _ = svc.Create(ctx, "Rahim", "rahim@example.com", models.RoleAdmin)
			slots.SetFailing(false)

			_, err := svc.Create(ctx, "Karim", "karim@example.com", models.RoleUser)

			Expect(err).NotTo(HaveOccurred())
			Expect(svc.LastError()).NotTo(HaveOccurred())
			Expect(newService().LoadAll(ctx)).To(HaveLen(2))
		})
	})
})
