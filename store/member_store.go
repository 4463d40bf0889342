package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/josephgoksu/FamilyWing/internal/kv"
	"github.com/josephgoksu/FamilyWing/models"
)

// DefaultKey is the slot key the collection is saved under.
const DefaultKey = "family_members_v1"

// KVMemberStore implements MemberStore on top of a kv.Slot.
// It holds the collection in memory and rewrites the whole slot after every
// successful mutation. It is not safe for concurrent use.
type KVMemberStore struct {
	slot    kv.Slot
	key     string
	members []models.Member
	newID   func() string

	observers    map[int]func(Event)
	nextObserver int

	lastSaveErr error
}

var _ MemberStore = (*KVMemberStore)(nil)

// Option configures a KVMemberStore.
type Option func(*KVMemberStore)

// WithKey overrides the slot key.
func WithKey(key string) Option {
	return func(s *KVMemberStore) {
		if key != "" {
			s.key = key
		}
	}
}

// WithIDGenerator overrides ID generation.
func WithIDGenerator(fn func() string) Option {
	return func(s *KVMemberStore) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// NewKVMemberStore creates a store over slot and loads the saved collection.
// A missing or unreadable blob yields an empty collection.
func NewKVMemberStore(slot kv.Slot, opts ...Option) *KVMemberStore {
	s := &KVMemberStore{
		slot:      slot,
		key:       DefaultKey,
		members:   []models.Member{},
		newID:     generateID,
		observers: make(map[int]func(Event)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.members = s.load()
	return s
}

// generateID returns a time-ordered UUID.
func generateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func (s *KVMemberStore) load() []models.Member {
	data, err := s.slot.Get(s.key)
	if err != nil {
		if !errors.Is(err, kv.ErrKeyNotFound) {
			slog.Warn("could not read saved members, starting empty", "key", s.key, "error", err)
		}
		return []models.Member{}
	}

	members, err := ParseMembers(data)
	if err != nil {
		slog.Warn("saved members are corrupt, starting empty", "key", s.key, "error", err)
		return []models.Member{}
	}
	return members
}

// save writes the full collection to the slot. Failures are logged and kept
// for LastSaveError; the in-memory mutation stands either way.
func (s *KVMemberStore) save() {
	data, err := json.Marshal(s.members)
	if err == nil {
		err = s.slot.Set(s.key, data)
	}
	if err != nil {
		s.lastSaveErr = fmt.Errorf("%w: %v", ErrStorage, err)
		slog.Warn("failed to save members", "key", s.key, "count", len(s.members), "error", err)
		return
	}
	s.lastSaveErr = nil
}

// LastSaveError returns the error from the most recent save, or nil if it succeeded.
func (s *KVMemberStore) LastSaveError() error {
	return s.lastSaveErr
}

func (s *KVMemberStore) notify(e Event) {
	ids := make([]int, 0, len(s.observers))
	for id := range s.observers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		s.observers[id](e)
	}
}

func (s *KVMemberStore) indexOf(id string) int {
	return slices.IndexFunc(s.members, func(m models.Member) bool { return m.ID == id })
}

func validateDraft(d models.Draft) error {
	if err := models.ValidateStruct(d); err != nil {
		return fmt.Errorf("%w: name is required (%v)", ErrValidation, err)
	}
	return nil
}

// Add appends a new member and returns its ID.
func (s *KVMemberStore) Add(draft models.Draft) (string, error) {
	if err := validateDraft(draft); err != nil {
		return "", err
	}

	id := s.newID()
	for id == "" || s.indexOf(id) >= 0 {
		id = generateID()
	}

	s.members = append(s.members, models.Member{ID: id}.Apply(draft))
	s.save()
	s.notify(Event{Kind: EventAdded, ID: id})
	return id, nil
}

// Update replaces every field of the member except its ID.
func (s *KVMemberStore) Update(id string, draft models.Draft) error {
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err := validateDraft(draft); err != nil {
		return err
	}

	s.members[i] = s.members[i].Apply(draft)
	s.save()
	s.notify(Event{Kind: EventUpdated, ID: id})
	return nil
}

// Delete removes the member and unlinks it from every child.
func (s *KVMemberStore) Delete(id string) error {
	if s.indexOf(id) < 0 {
		return nil
	}

	kept := make([]models.Member, 0, len(s.members)-1)
	for _, m := range s.members {
		if m.ID == id {
			continue
		}
		if m.FatherID == id {
			m.FatherID = ""
		}
		if m.MotherID == id {
			m.MotherID = ""
		}
		kept = append(kept, m)
	}
	s.members = kept

	s.save()
	s.notify(Event{Kind: EventDeleted, ID: id})
	return nil
}

// ReplaceAll swaps the collection for a copy of records.
func (s *KVMemberStore) ReplaceAll(records []models.Member) error {
	s.members = append(make([]models.Member, 0, len(records)), records...)
	s.save()
	s.notify(Event{Kind: EventReplaced})
	return nil
}

// Import parses text with ParseMembers and replaces the collection.
func (s *KVMemberStore) Import(text []byte) error {
	members, err := ParseMembers(text)
	if err != nil {
		return err
	}
	return s.ReplaceAll(members)
}

// Snapshot returns a copy of the collection.
func (s *KVMemberStore) Snapshot() []models.Member {
	return slices.Clone(s.members)
}

// Get returns a copy of the member with id.
func (s *KVMemberStore) Get(id string) (models.Member, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Member{}, false
	}
	return s.members[i], true
}

// Subscribe registers fn for mutation events.
func (s *KVMemberStore) Subscribe(fn func(Event)) func() {
	id := s.nextObserver
	s.nextObserver++
	s.observers[id] = fn
	return func() { delete(s.observers, id) }
}

// Reload replaces the in-memory collection with what the slot holds.
func (s *KVMemberStore) Reload() error {
	s.members = s.load()
	s.notify(Event{Kind: EventReplaced})
	return nil
}

// Close closes the slot.
func (s *KVMemberStore) Close() error {
	return s.slot.Close()
}
