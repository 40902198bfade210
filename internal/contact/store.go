package contact

import (
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// Store owns the contact list and the editing pointer.
// It is not safe for concurrent use; confine it to a single goroutine
// (the Bubble Tea update loop or the plain-mode read loop).
type Store struct {
	list      []Contact
	editingID string
	newID     IDGenerator
	logger    *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// NewStore creates an empty Store in the idle state.
func NewStore(opts ...Option) *Store {
	s := &Store{
		newID:  RandomUUID,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithIDGenerator overrides the default random UUID generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithLogger sets the logger used for transition tracing.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// State returns a snapshot of the store. The returned list is a copy.
func (s *Store) State() State {
	return State{
		List:      slices.Clone(s.list),
		EditingID: s.editingID,
	}
}

// Add appends a new contact with a freshly minted ID and returns it.
// The editing state is left as is.
func (s *Store) Add(nome, email, telefone string) Contact {
	c := Contact{
		ID:       s.mintID(),
		Nome:     nome,
		Email:    email,
		Telefone: telefone,
	}
	s.list = append(s.list, c)
	s.logger.Debug("contact added", zap.String("id", c.ID), zap.Int("count", len(s.list)))
	return c
}

// Remove deletes the contact with the given ID. Removing the contact that is
// being edited also returns the store to idle. Unknown IDs are ignored.
func (s *Store) Remove(id string) {
	idx := s.index(id)
	if idx < 0 {
		s.logger.Debug("remove: contact not found", zap.String("id", id))
		return
	}
	s.list = slices.Delete(s.list, idx, idx+1)
	if s.editingID == id {
		s.editingID = ""
	}
	s.logger.Debug("contact removed", zap.String("id", id), zap.Int("count", len(s.list)))
}

// StartEditing marks id as the contact being edited.
func (s *Store) StartEditing(id string) {
	s.editingID = id
	s.logger.Debug("editing started", zap.String("id", id))
}

// CancelEditing returns the store to idle.
func (s *Store) CancelEditing() {
	s.editingID = ""
	s.logger.Debug("editing cancelled")
}

// Update replaces the fields of the contact with the given ID, keeping its
// ID and position, and returns the store to idle. If no contact has that ID
// the store is left untouched, editing state included.
func (s *Store) Update(id, nome, email, telefone string) {
	idx := s.index(id)
	if idx < 0 {
		s.logger.Debug("update: contact not found", zap.String("id", id))
		return
	}
	s.list[idx] = Contact{ID: id, Nome: nome, Email: email, Telefone: telefone}
	s.editingID = ""
	s.logger.Debug("contact updated", zap.String("id", id))
}

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.list, func(c Contact) bool { return c.ID == id })
}

// mintID asks the generator for an ID and suffixes it until it is unused.
func (s *Store) mintID() string {
	base := s.newID()
	id := base
	for n := 2; id == "" || s.index(id) >= 0; n++ {
		id = fmt.Sprintf("%s-%d", base, n)
	}
	return id
}
