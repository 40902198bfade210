// Package contact holds the in-memory contact list and the editing state
// that the views render from.
package contact

// Contact is a single address-book entry. ID is minted by the Store on Add
// and never changes afterwards.
type Contact struct {
	ID       string
	Nome     string
	Email    string
	Telefone string
}

// State is a snapshot of the store: contacts in insertion order plus the ID
// of the contact being edited ("" when idle).
type State struct {
	List      []Contact
	EditingID string
}

// Editing reports whether a contact is currently being edited.
func (s State) Editing() bool {
	return s.EditingID != ""
}

// Find returns the contact with the given ID and its index, or false if absent.
func (s State) Find(id string) (Contact, int, bool) {
	for i, c := range s.List {
		if c.ID == id {
			return c, i, true
		}
	}
	return Contact{}, -1, false
}
