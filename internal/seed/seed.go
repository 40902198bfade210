// Package seed loads a read-only YAML file of initial contacts.
// Nothing is ever written back.
package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/smileynet/contacts/internal/contact"
)

// ErrNotFound indicates the seed file does not exist.
var ErrNotFound = errors.New("seed: file not found")

// Entry is one contact in a seed file.
type Entry struct {
	Nome     string `yaml:"nome"`
	Email    string `yaml:"email"`
	Telefone string `yaml:"telefone"`
}

// Adder is the subset of *contact.Store that Apply needs.
type Adder interface {
	Add(nome, email, telefone string) contact.Contact
}

// Load reads and validates the seed file at path.
// Unknown fields and entries with missing values are rejected.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("seed: reading %s: %w", path, err)
	}

	entries, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("seed: %s: %w", path, err)
	}
	return entries, nil
}

// Parse decodes and validates seed entries from r. An empty document
// yields no entries.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&entries); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("parsing: %w", err)
	}

	for i, e := range entries {
		if err := contact.ValidateFields(e.Nome, e.Email, e.Telefone); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
	}
	return entries, nil
}

// Apply adds entries to the store in file order and returns the new contacts.
func Apply(store Adder, entries []Entry) []contact.Contact {
	added := make([]contact.Contact, 0, len(entries))
	for _, e := range entries {
		added = append(added, store.Add(e.Nome, e.Email, e.Telefone))
	}
	return added
}
