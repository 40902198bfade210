package seed

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/smileynet/contacts/internal/contact"
)

func writeSeed(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoad_ValidFile(t *testing.T) {
	// Given: a seed file with two contacts
	p := writeSeed(t, `
- nome: Ana
  email: ana@x.com
  telefone: "111"
- nome: Bruno
  email: bruno@x.com
  telefone: "222"
`)

	// When: it is loaded
	entries, err := Load(p)

	// Then: both entries are returned in order
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0] != (Entry{Nome: "Ana", Email: "ana@x.com", Telefone: "111"}) {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if entries[1].Nome != "Bruno" {
		t.Errorf("entries[1].Nome = %q, want %q", entries[1].Nome, "Bruno")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load() error = %v, want ErrNotFound", err)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	entries, err := Load(writeSeed(t, ""))
	if err != nil {
		t.Fatalf("Load(empty) error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("entries = %d, want 0", len(entries))
	}
}

func TestLoad_MissingFieldNamesEntry(t *testing.T) {
	// Given: the second entry has no phone
	p := writeSeed(t, `
- nome: Ana
  email: ana@x.com
  telefone: "111"
- nome: Bruno
  email: bruno@x.com
`)

	// When: it is loaded
	_, err := Load(p)

	// Then: the error names the entry and wraps ErrMissingField
	if !errors.Is(err, contact.ErrMissingField) {
		t.Fatalf("Load() error = %v, want ErrMissingField", err)
	}
	if !strings.Contains(err.Error(), "entry 2") {
		t.Errorf("error = %q, want it to name entry 2", err)
	}
	if !strings.Contains(err.Error(), "telefone") {
		t.Errorf("error = %q, want it to name telefone", err)
	}
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse(strings.NewReader("- nome: Ana\n  mail: a@x.com\n  telefone: '1'\n"))
	if err == nil {
		t.Fatal("Parse() should reject unknown field 'mail'")
	}
}

func TestParse_NotAList(t *testing.T) {
	_, err := Parse(strings.NewReader("nome: Ana\n"))
	if err == nil {
		t.Fatal("Parse() should reject a mapping at the top level")
	}
}

func TestApply_AddsInOrder(t *testing.T) {
	store := contact.NewStore(contact.WithIDGenerator(contact.Sequential()))
	entries := []Entry{
		{Nome: "Ana", Email: "ana@x.com", Telefone: "111"},
		{Nome: "Bruno", Email: "bruno@x.com", Telefone: "222"},
	}

	added := Apply(store, entries)

	if len(added) != 2 {
		t.Fatalf("added = %d, want 2", len(added))
	}
	list := store.State().List
	if list[0].Nome != "Ana" || list[1].Nome != "Bruno" {
		t.Errorf("list order = [%q %q], want [Ana Bruno]", list[0].Nome, list[1].Nome)
	}
	if added[1].ID != list[1].ID {
		t.Errorf("returned ID %q, stored ID %q", added[1].ID, list[1].ID)
	}
}
