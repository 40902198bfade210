package form

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/contacts/internal/contact"
)

// stripANSI removes ANSI escape sequences from a string.
func stripANSI(s string) string {
	var out []byte
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && (s[j] < 'A' || s[j] > 'Z') && (s[j] < 'a' || s[j] > 'z') {
				j++
			}
			if j < len(s) {
				j++
			}
			i = j
		} else {
			out = append(out, s[i])
			i++
		}
	}
	return string(out)
}

// containsPlainText checks if s contains sub after stripping ANSI escapes.
func containsPlainText(s, sub string) bool {
	return strings.Contains(stripANSI(s), sub)
}

func collectKeys(bindings []key.Binding) []string {
	var keys []string
	for _, b := range bindings {
		keys = append(keys, b.Keys()...)
	}
	return keys
}

func containsKey(keys []string, want string) bool {
	for _, k := range keys {
		if k == want {
			return true
		}
	}
	return false
}

func newTestStore() *contact.Store {
	return contact.NewStore(contact.WithIDGenerator(contact.Sequential()))
}

// newSizedModel returns a model bound to store that has received a window size.
func newSizedModel(store ContactStore, opts ...Option) Model {
	m := NewModel(store, opts...)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model)
}

// send feeds msg to m and returns the updated model and command.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

// press sends a named special key.
func press(t *testing.T, m Model, kt tea.KeyType) Model {
	t.Helper()
	m, _ = send(t, m, tea.KeyMsg{Type: kt})
	return m
}

// typeText sends s as a single runes key message.
func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

// fillForm types the three add-form fields and submits.
func fillForm(t *testing.T, m Model, nome, email, telefone string) Model {
	t.Helper()
	m = typeText(t, m, nome)
	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, email)
	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, telefone)
	return press(t, m, tea.KeyEnter)
}
