package draft

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets the logger used for store events.
func WithLogger(logger *zap.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source used for UpdatedAt.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides the generator used for drafts saved without an
// id.
func WithIDGenerator(fn func() string) StoreOption {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// Store keeps drafts keyed by template id. It is safe for concurrent use;
// every read and write works on snapshots.
type Store struct {
	mu     sync.RWMutex
	drafts map[string]Draft
	logger *zap.Logger
	now    func() time.Time
	newID  func() string
}

// NewStore returns an empty store.
func NewStore(options ...StoreOption) *Store {
	s := &Store{
		drafts: make(map[string]Draft),
		logger: zap.NewNop(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, option := range options {
		if option != nil {
			option(s)
		}
	}
	return s
}

// Put stores a snapshot of d, assigning an id when it has none, and returns
// the stored snapshot.
func (s *Store) Put(d Draft) Draft {
	stored := d.Snapshot()
	stored.TemplateID = strings.TrimSpace(stored.TemplateID)

	s.mu.Lock()
	if stored.TemplateID == "" {
		stored.TemplateID = s.newID()
	}
	stored.UpdatedAt = s.now()
	_, replaced := s.drafts[stored.TemplateID]
	s.drafts[stored.TemplateID] = stored
	s.mu.Unlock()

	s.logger.Debug("draft stored",
		zap.String("template_id", stored.TemplateID),
		zap.Int("fields", len(stored.Fields)),
		zap.Int("sections", len(stored.Sections)),
		zap.Bool("replaced", replaced),
	)
	return stored.Snapshot()
}

// Get returns a snapshot of the draft stored under id.
func (s *Store) Get(id string) (Draft, error) {
	s.mu.RLock()
	stored, ok := s.drafts[id]
	s.mu.RUnlock()
	if !ok {
		return Draft{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return stored.Snapshot(), nil
}

// Update applies fn to a snapshot of the draft under id and stores the
// result if fn succeeds. The store is locked for the duration of fn.
func (s *Store) Update(id string, fn func(*Draft) error) (Draft, error) {
	s.mu.Lock()
	stored, ok := s.drafts[id]
	if !ok {
		s.mu.Unlock()
		return Draft{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	working := stored.Snapshot()
	if err := fn(&working); err != nil {
		s.mu.Unlock()
		return Draft{}, err
	}
	working.TemplateID = id
	working.UpdatedAt = s.now()
	s.drafts[id] = working
	s.mu.Unlock()

	s.logger.Debug("draft updated", zap.String("template_id", id), zap.Int("fields", len(working.Fields)))
	return working.Snapshot(), nil
}

// Delete removes the draft under id.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	_, ok := s.drafts[id]
	delete(s.drafts, id)
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	s.logger.Debug("draft deleted", zap.String("template_id", id))
	return nil
}

// List returns snapshots of every draft ordered by template id.
func (s *Store) List() []Draft {
	s.mu.RLock()
	out := make([]Draft, 0, len(s.drafts))
	for _, stored := range s.drafts {
		out = append(out, stored.Snapshot())
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].TemplateID < out[j].TemplateID
	})
	return out
}

// Len reports the number of stored drafts.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.drafts)
}
