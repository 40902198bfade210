// Package plain drives the contact store from line-oriented text commands.
// It is used when stdout is not a terminal or when --plain is set.
package plain

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/smileynet/contacts/internal/contact"
)

var (
	// ErrUnknownCommand indicates an unrecognized command word.
	ErrUnknownCommand = errors.New("plain: unknown command")
	// ErrUsage indicates a command was given the wrong arguments.
	ErrUsage = errors.New("plain: usage")
)

// ContactStore is the store a Session reads from and mutates.
type ContactStore interface {
	State() contact.State
	Add(nome, email, telefone string) contact.Contact
	Remove(id string)
	StartEditing(id string)
	CancelEditing()
	Update(id, nome, email, telefone string)
}

const usage = `commands:
  add <nome> | <email> | <telefone>
  list
  edit <id>
  save <id> <nome> | <email> | <telefone>
  cancel
  remove <id>
  help
  quit`

// Session executes commands against a store and writes results to w.
// Run confines all store access to its own goroutine.
type Session struct {
	store ContactStore
	w     io.Writer
}

// NewSession creates a Session writing to w.
func NewSession(store ContactStore, w io.Writer) *Session {
	return &Session{store: store, w: w}
}

// Run reads commands from r until EOF, quit, or ctx is cancelled.
// Command errors are printed and do not stop the loop.
// On cancellation Run returns at once, but the goroutine reading r stays
// blocked until its pending Read returns; close r to release it.
func (s *Session) Run(ctx context.Context, r io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- sc.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("plain: reading input: %w", err)
					}
				default:
				}
				return nil
			}
			quit, err := s.Exec(line)
			if err != nil {
				_, _ = fmt.Fprintf(s.w, "error: %s\n", err)
			}
			if quit {
				return nil
			}
		}
	}
}

// Exec runs a single command line. It reports whether the session should end.
func (s *Session) Exec(line string) (bool, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false, nil
	}
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "add":
		return false, s.add(rest)
	case "list", "ls":
		s.printList()
		return false, nil
	case "edit":
		return false, s.edit(rest)
	case "save":
		return false, s.save(rest)
	case "cancel":
		s.store.CancelEditing()
		_, _ = fmt.Fprintln(s.w, "edit cancelled")
		return false, nil
	case "remove", "rm":
		return false, s.remove(rest)
	case "help":
		_, _ = fmt.Fprintln(s.w, usage)
		return false, nil
	case "quit", "exit":
		return true, nil
	default:
		return false, fmt.Errorf("%w %q (try: help)", ErrUnknownCommand, cmd)
	}
}

func (s *Session) add(args string) error {
	nome, email, telefone, err := splitFields(args)
	if err != nil {
		return fmt.Errorf("%w: add <nome> | <email> | <telefone>", ErrUsage)
	}
	if err := contact.ValidateFields(nome, email, telefone); err != nil {
		return err
	}
	c := s.store.Add(nome, email, telefone)
	_, _ = fmt.Fprintf(s.w, "added %s\n", c.ID)
	s.printList()
	return nil
}

func (s *Session) edit(id string) error {
	if id == "" || strings.Contains(id, " ") {
		return fmt.Errorf("%w: edit <id>", ErrUsage)
	}
	c, _, ok := s.store.State().Find(id)
	if !ok {
		return fmt.Errorf("no contact with id %q", id)
	}
	s.store.StartEditing(id)
	_, _ = fmt.Fprintf(s.w, "editing %s: %s | %s | %s\n", id, c.Nome, c.Email, c.Telefone)
	return nil
}

func (s *Session) save(args string) error {
	id, fields, _ := strings.Cut(args, " ")
	nome, email, telefone, err := splitFields(fields)
	if id == "" || err != nil {
		return fmt.Errorf("%w: save <id> <nome> | <email> | <telefone>", ErrUsage)
	}
	if err := contact.ValidateFields(nome, email, telefone); err != nil {
		return err
	}
	_, _, found := s.store.State().Find(id)
	s.store.Update(id, nome, email, telefone)
	if !found {
		return fmt.Errorf("no contact with id %q", id)
	}
	_, _ = fmt.Fprintf(s.w, "saved %s\n", id)
	s.printList()
	return nil
}

func (s *Session) remove(id string) error {
	if id == "" || strings.Contains(id, " ") {
		return fmt.Errorf("%w: remove <id>", ErrUsage)
	}
	_, _, found := s.store.State().Find(id)
	s.store.Remove(id)
	if !found {
		return fmt.Errorf("no contact with id %q", id)
	}
	_, _ = fmt.Fprintf(s.w, "removed %s\n", id)
	s.printList()
	return nil
}

// printList writes the contacts as aligned columns. The row being edited is
// marked with "*".
func (s *Session) printList() {
	st := s.store.State()
	if len(st.List) == 0 {
		_, _ = fmt.Fprintln(s.w, "(no contacts)")
		return
	}
	tw := tabwriter.NewWriter(s.w, 0, 4, 2, ' ', 0)
	for _, c := range st.List {
		mark := " "
		if c.ID == st.EditingID {
			mark = "*"
		}
		_, _ = fmt.Fprintf(tw, "%s %s\t%s\t%s\t%s\n", mark, c.ID, c.Nome, c.Email, c.Telefone)
	}
	_ = tw.Flush()
}

// splitFields parses "nome | email | telefone". Surrounding whitespace is
// trimmed; empty fields are left for ValidateFields to report.
func splitFields(s string) (nome, email, telefone string, err error) {
	parts := strings.Split(s, "|")
	if len(parts) != 3 {
		return "", "", "", ErrUsage
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), strings.TrimSpace(parts[2]), nil
}
