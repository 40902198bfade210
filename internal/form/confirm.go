package form

import (
	"fmt"
	"strings"

	"github.com/smileynet/contacts/internal/contact"
)

// confirmState holds the contact awaiting remove confirmation.
type confirmState struct {
	target contact.Contact
}

// View renders the confirmation prompt.
func (cs confirmState) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Remove %s?\n", cs.target.Nome)
	fmt.Fprintf(&b, "\n  %s  %s", cs.target.Email, cs.target.Telefone)
	b.WriteString("\n\n  [y] Remove   [n] Keep")
	return b.String()
}
