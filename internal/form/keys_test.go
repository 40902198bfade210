package form

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestListKeys_ContainsExpected(t *testing.T) {
	// Given: the list key map
	allKeys := collectKeys(ListKeyMap().ShortHelp())

	// Then: navigation and action keys are present
	for _, want := range []string{"up", "down", "k", "j", "a", "e", "d", "q"} {
		if !containsKey(allKeys, want) {
			t.Errorf("ListKeyMap missing key %q, got %v", want, allKeys)
		}
	}
}

func TestFormKeys_NoPlainQuit(t *testing.T) {
	// Given: the form key map
	allKeys := collectKeys(FormKeyMap().ShortHelp())

	// Then: q is not bound, since it must be typeable
	if containsKey(allKeys, "q") {
		t.Error("FormKeyMap should not bind q")
	}
	if !containsKey(allKeys, "enter") {
		t.Error("FormKeyMap should bind enter")
	}
}

func TestFormKeys_QuitMatchesGlobalQuit(t *testing.T) {
	// The form's Quit binding only feeds the help bar; quitKey does the work.
	got := FormKeyMap().Quit.Keys()
	want := quitKey.Keys()
	if len(got) != len(want) {
		t.Fatalf("form quit keys = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("form quit keys = %v, want %v", got, want)
		}
	}
}

func TestModel_CtrlCQuitsFromForm(t *testing.T) {
	m := newSizedModel(newTestStore())

	_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("cmd() = %T, want tea.QuitMsg", cmd())
	}
}

func TestEditKeys_ContainsSaveAndCancel(t *testing.T) {
	km := EditKeyMap()
	if h := km.Save.Help(); h.Desc != "save" {
		t.Errorf("Save desc = %q, want %q", h.Desc, "save")
	}
	if h := km.Cancel.Help(); h.Key != "esc" {
		t.Errorf("Cancel key help = %q, want %q", h.Key, "esc")
	}
}

func TestConfirmKeys_YesNo(t *testing.T) {
	allKeys := collectKeys(ConfirmKeyMap().ShortHelp())
	for _, want := range []string{"y", "n", "esc"} {
		if !containsKey(allKeys, want) {
			t.Errorf("ConfirmKeyMap missing key %q, got %v", want, allKeys)
		}
	}
}

func TestFullHelp_CoversShortHelp(t *testing.T) {
	tests := []struct {
		name  string
		short []string
		full  [][]string
	}{
		{"form", collectKeys(FormKeyMap().ShortHelp()), groupKeys(FormKeyMap().FullHelp())},
		{"list", collectKeys(ListKeyMap().ShortHelp()), groupKeys(ListKeyMap().FullHelp())},
		{"edit", collectKeys(EditKeyMap().ShortHelp()), groupKeys(EditKeyMap().FullHelp())},
		{"confirm", collectKeys(ConfirmKeyMap().ShortHelp()), groupKeys(ConfirmKeyMap().FullHelp())},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var full []string
			for _, g := range tt.full {
				full = append(full, g...)
			}
			for _, k := range tt.short {
				if !containsKey(full, k) {
					t.Errorf("full help missing %q", k)
				}
			}
		})
	}
}

func TestHelpBindings_PerMode(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeForm, "enter"},
		{ModeList, "d"},
		{ModeEdit, "esc"},
		{ModeConfirm, "y"},
	}
	for _, tt := range tests {
		if !containsKey(collectKeys(HelpBindings(tt.mode).ShortHelp()), tt.want) {
			t.Errorf("HelpBindings(%d) missing %q", tt.mode, tt.want)
		}
	}
}

func groupKeys(groups [][]key.Binding) [][]string {
	out := make([][]string, len(groups))
	for i, g := range groups {
		out[i] = collectKeys(g)
	}
	return out
}
