package services

import (
	"context"
	"encoding/json"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tupyy/record-manager/internal/models"
	"github.com/tupyy/record-manager/internal/selection"
	srvErrors "github.com/tupyy/record-manager/pkg/errors"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SlotStore is the key-value byte store holding the serialized record set.
type SlotStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
}

// RecordService owns the record set and keeps its slot in sync.
// It is not safe for concurrent use; Manager serializes access to it.
type RecordService struct {
	slots    SlotStore
	key      string
	records  []models.Record
	now      func() time.Time
	newID    func() string
	retries  uint
	interval time.Duration
	lastErr  error
}

type RecordServiceOption func(*RecordService)

// WithClock sets the time source used for CreatedAt.
func WithClock(now func() time.Time) RecordServiceOption {
	return func(s *RecordService) {
		s.now = now
	}
}

// WithIDGenerator sets the id source used for new records.
func WithIDGenerator(newID func() string) RecordServiceOption {
	return func(s *RecordService) {
		s.newID = newID
	}
}

// WithPersistRetries sets how many times a slot write is attempted.
func WithPersistRetries(n uint) RecordServiceOption {
	return func(s *RecordService) {
		s.retries = max(n, 1)
	}
}

func NewRecordService(slots SlotStore, key string, opts ...RecordServiceOption) *RecordService {
	s := &RecordService{
		slots:    slots,
		key:      key,
		records:  []models.Record{},
		now:      time.Now,
		newID:    uuid.NewString,
		retries:  3,
		interval: 20 * time.Millisecond,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Init loads the slot into memory. When the slot is absent or unreadable and
// seed is true, the demo records are installed and persisted. A slot holding
// an empty set is left empty.
func (s *RecordService) Init(ctx context.Context, seed bool) error {
	records, usable := s.load(ctx)
	s.records = records
	if usable || !seed {
		return nil
	}

	s.records = DemoRecords(s.timestamp(), s.newID)
	zap.S().Named("record_service").Infow("storage empty, seeded demo records", "count", len(s.records))
	return s.Persist(ctx, s.records)
}

// LoadAll reads the record set from the slot. A missing or unparseable
// payload yields an empty set; it never fails.
func (s *RecordService) LoadAll(ctx context.Context) []models.Record {
	records, _ := s.load(ctx)
	return records
}

// load reports whether the slot held a parseable record set.
func (s *RecordService) load(ctx context.Context) ([]models.Record, bool) {
	log := zap.S().Named("record_service")

	data, err := s.slots.Get(ctx, s.key)
	if err != nil {
		if srvErrors.IsResourceNotFoundError(err) {
			log.Debugw("record slot absent", "slot", s.key)
		} else {
			log.Errorw("failed to read record slot", "slot", s.key, "error", err)
		}
		return []models.Record{}, false
	}

	var records []models.Record
	if err := json.Unmarshal(data, &records); err != nil {
		log.Warnw("record slot is corrupt, starting empty", "slot", s.key, "error", err)
		return []models.Record{}, false
	}

	return s.sanitize(records), true
}

// sanitize drops null entries and re-mints missing or duplicated ids so that
// ids stay unique.
func (s *RecordService) sanitize(records []models.Record) []models.Record {
	seen := selection.NewSet()
	result := make([]models.Record, 0, len(records))
	for _, r := range records {
		if r == (models.Record{}) {
			continue
		}
		if r.ID == "" || seen.Has(r.ID) {
			r.ID = s.newID()
		}
		seen.Add(r.ID)
		result = append(result, r)
	}
	return result
}

// Persist writes the full record set to the slot. Transient failures are
// retried; a final failure is returned as a StorageError and remembered in
// LastError. The in-memory set is never rolled back.
func (s *RecordService) Persist(ctx context.Context, records []models.Record) error {
	if records == nil {
		records = []models.Record{}
	}

	data, err := json.Marshal(records)
	if err != nil {
		s.lastErr = srvErrors.NewStorageError("encode", err)
		return s.lastErr
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.interval
	b.MaxInterval = 10 * s.interval

	_, err = backoff.Retry(ctx, func() (struct{}, error) {
		return struct{}{}, s.slots.Put(ctx, s.key, data)
	}, backoff.WithBackOff(b), backoff.WithMaxTries(s.retries))
	if err != nil {
		s.lastErr = srvErrors.NewStorageError("write", err)
		zap.S().Named("record_service").Errorw("failed to persist records", "slot", s.key, "count", len(records), "error", err)
		return s.lastErr
	}

	s.lastErr = nil
	return nil
}

// LastError returns the outcome of the latest persist, nil on success.
func (s *RecordService) LastError() error {
	return s.lastErr
}

// Records returns a copy of the current record set.
func (s *RecordService) Records() []models.Record {
	return slices.Clone(s.records)
}

func (s *RecordService) Len() int {
	return len(s.records)
}

func (s *RecordService) Get(id string) (models.Record, error) {
	i := s.index(id)
	if i < 0 {
		return models.Record{}, srvErrors.NewRecordNotFoundError(id)
	}
	return s.records[i], nil
}

// Create validates the input, mints a record and prepends it to the set.
func (s *RecordService) Create(ctx context.Context, name, email string, role models.Role) (models.Record, error) {
	r := models.Record{
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
		Role:  models.Role(strings.TrimSpace(string(role))),
	}
	if err := Validate(r); err != nil {
		return models.Record{}, err
	}

	r.ID = s.newID()
	r.CreatedAt = s.timestamp()

	s.records = prepend(s.records, r)
	return r, s.Persist(ctx, s.records)
}

// Update applies fields to the record with the given id. ID and CreatedAt
// are never changed.
func (s *RecordService) Update(ctx context.Context, id string, fields models.RecordFields) (models.Record, error) {
	i := s.index(id)
	if i < 0 {
		return models.Record{}, srvErrors.NewRecordNotFoundError(id)
	}

	updated := fields.Apply(s.records[i])
	updated.Name = strings.TrimSpace(updated.Name)
	updated.Email = strings.TrimSpace(updated.Email)
	updated.Role = models.Role(strings.TrimSpace(string(updated.Role)))
	if err := Validate(updated); err != nil {
		return models.Record{}, err
	}

	next := slices.Clone(s.records)
	next[i] = updated
	s.records = next
	return updated, s.Persist(ctx, s.records)
}

// Remove deletes the record with the given id. An absent id is a no-op.
func (s *RecordService) Remove(ctx context.Context, id string) (bool, error) {
	i := s.index(id)
	if i < 0 {
		return false, nil
	}

	s.records = slices.Delete(slices.Clone(s.records), i, i+1)
	return true, s.Persist(ctx, s.records)
}

// RemoveMany deletes every record whose id is in ids and persists once.
// It returns the ids that were actually removed.
func (s *RecordService) RemoveMany(ctx context.Context, ids []string) ([]string, error) {
	doomed := selection.NewSet(ids...)

	var removed []string
	next := make([]models.Record, 0, len(s.records))
	for _, r := range s.records {
		if doomed.Has(r.ID) {
			removed = append(removed, r.ID)
			continue
		}
		next = append(next, r)
	}
	if len(removed) == 0 {
		return nil, nil
	}

	s.records = next
	return removed, s.Persist(ctx, s.records)
}

// Duplicate clones name, email and role of the record into a new record with
// a fresh id and creation time, prepended to the set.
func (s *RecordService) Duplicate(ctx context.Context, id string) (models.Record, error) {
	src, err := s.Get(id)
	if err != nil {
		return models.Record{}, err
	}

	clone := models.Record{
		ID:        s.newID(),
		Name:      src.Name,
		Email:     src.Email,
		Role:      src.Role,
		CreatedAt: s.timestamp(),
	}

	s.records = prepend(s.records, clone)
	return clone, s.Persist(ctx, s.records)
}

// Clear empties the record set and returns the removed ids.
func (s *RecordService) Clear(ctx context.Context) ([]string, error) {
	ids := make([]string, 0, len(s.records))
	for _, r := range s.records {
		ids = append(ids, r.ID)
	}

	s.records = []models.Record{}
	return ids, s.Persist(ctx, s.records)
}

func (s *RecordService) index(id string) int {
	return slices.IndexFunc(s.records, func(r models.Record) bool { return r.ID == id })
}

// timestamp is the current time in UTC, truncated to milliseconds so that it
// survives the ISO-8601 round trip unchanged.
func (s *RecordService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

// Validate checks a record's user supplied fields.
func Validate(r models.Record) error {
	verr := &srvErrors.ValidationError{}
	if strings.TrimSpace(r.Name) == "" {
		verr.Add("name", "must not be empty")
	}
	if !emailPattern.MatchString(strings.TrimSpace(r.Email)) {
		verr.Add("email", "must look like local@domain.tld")
	}
	if strings.TrimSpace(string(r.Role)) == "" {
		verr.Add("role", "must not be empty")
	}
	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

func prepend(records []models.Record, r models.Record) []models.Record {
	next := make([]models.Record, 0, len(records)+1)
	next = append(next, r)
	return append(next, records...)
}
