package store

import "github.com/josephgoksu/FamilyWing/models"

// MemberStore defines the contract for the family member collection.
// It is the only mutator of the collection; every successful mutation is
// persisted before observers are notified.
type MemberStore interface {
	// Add appends a new member built from the draft and returns its generated ID.
	// It fails with ErrValidation when the name is blank.
	Add(draft models.Draft) (string, error)

	// Update replaces every field of the member except its ID.
	// It fails with ErrNotFound when no member has that ID.
	Update(id string, draft models.Draft) error

	// Delete removes a member and clears any father/mother reference to it.
	// Deleting an unknown ID is a no-op.
	Delete(id string) error

	// ReplaceAll swaps the whole collection for records, as-is.
	ReplaceAll(records []models.Member) error

	// Import parses JSON text and replaces the collection with it.
	// On failure the existing collection is left untouched.
	Import(text []byte) error

	// Snapshot returns a copy of the collection in insertion order.
	Snapshot() []models.Member

	// Get returns a copy of one member.
	Get(id string) (models.Member, bool)

	// Subscribe registers fn to be called after every mutation.
	// The returned function removes the subscription.
	Subscribe(fn func(Event)) (unsubscribe func())

	// Reload re-reads the collection from durable storage.
	Reload() error

	// Close releases the underlying storage.
	Close() error
}

// EventKind names the mutation that produced an Event.
type EventKind string

const (
	EventAdded    EventKind = "added"
	EventUpdated  EventKind = "updated"
	EventDeleted  EventKind = "deleted"
	EventReplaced EventKind = "replaced"
)

// Event is delivered to subscribers after a mutation settles.
// ID is empty for EventReplaced.
type Event struct {
	Kind EventKind
	ID   string
}
