// Package form implements the Bubble Tea contact form: an add form on top,
// the contact list below, with inline editing and remove confirmation.
// All list data is read from the contact store on every render.
package form

import "github.com/smileynet/contacts/internal/contact"

// Mode represents the current interaction mode. It is derived from the
// store's editing state plus local focus, never stored on its own.
type Mode int

const (
	ModeForm    Mode = iota // Typing into the add form.
	ModeList                // Navigating the contact list.
	ModeEdit                // A contact row is being edited inline.
	ModeConfirm             // Waiting for remove confirmation.
)

// Focus represents which section has keyboard focus outside edit mode.
type Focus int

const (
	FocusForm Focus = iota // Add form has focus.
	FocusList              // Contact list has focus.
)

// Field indexes the three inputs of the add and edit forms.
const (
	fieldNome = iota
	fieldEmail
	fieldTelefone
	fieldCount
)

// --- Consumer-side interfaces ---

// ContactStore is the store the form reads from and mutates.
type ContactStore interface {
	State() contact.State
	Add(nome, email, telefone string) contact.Contact
	Remove(id string)
	StartEditing(id string)
	CancelEditing()
	Update(id, nome, email, telefone string)
}
