package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	contacts "github.com/smileynet/contacts"
	"github.com/smileynet/contacts/internal/config"
	"github.com/smileynet/contacts/internal/contact"
	"github.com/smileynet/contacts/internal/form"
	"github.com/smileynet/contacts/internal/logging"
	"github.com/smileynet/contacts/internal/plain"
	"github.com/smileynet/contacts/internal/seed"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for contacts.
type CLI struct {
	Version     kong.VersionFlag `help:"Show version." short:"V"`
	Open        OpenCmd          `cmd:"" default:"1" help:"Open the contact list (default)."`
	CheckSeed   CheckSeedCmd     `cmd:"" name:"check-seed" help:"Validate a seed file without opening the list."`
	Init        InitCmd          `cmd:"" help:"Write a starter .contacts/config.yaml."`
	ExampleSeed ExampleSeedCmd   `cmd:"" name:"example-seed" help:"Print an example seed file."`
}

// OpenCmd opens the contact list, interactively on a terminal and in
// line mode otherwise.
type OpenCmd struct {
	Seed  string `help:"YAML file of contacts to preload (overrides seed.path)."`
	Plain bool   `help:"Read line commands from stdin even if stdout is a TTY." default:"false"`
}

// Run executes the open command.
func (o *OpenCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	if o.Seed != "" {
		cfg.Seed.Path = o.Seed
	}

	logger, err := logging.New(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	store, err := newStore(cfg, logger)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}

	if o.Plain || !isTerminal(os.Stdout) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		logger.Info("session started", zap.String("view", "plain"))
		return runPlain(ctx, plain.NewSession(store, os.Stdout), os.Stdin)
	}

	m := form.NewModel(store, form.WithConfirmRemove(cfg.UI.ConfirmRemove))
	var popts []tea.ProgramOption
	if cfg.UI.AltScreen {
		popts = append(popts, tea.WithAltScreen())
	}
	logger.Info("session started", zap.String("view", "tui"))
	return runTUI(tea.NewProgram(m, popts...))
}

// CheckSeedCmd validates a seed file and reports how many contacts it holds.
type CheckSeedCmd struct {
	Path string `arg:"" help:"Seed file to validate."`
}

// Run executes the check-seed command.
func (c *CheckSeedCmd) Run() error {
	return c.run(os.Stdout)
}

func (c *CheckSeedCmd) run(w io.Writer) error {
	entries, err := seed.Load(c.Path)
	if err != nil {
		return fmt.Errorf("check-seed: %w", err)
	}
	_, _ = fmt.Fprintf(w, "%s: %d contacts\n", c.Path, len(entries))
	return nil
}

// InitCmd writes the starter config into the project directory.
type InitCmd struct {
	Dir   string `help:"Project state directory." default:".contacts"`
	Force bool   `help:"Overwrite an existing config file." default:"false"`
}

// Run executes the init command.
func (c *InitCmd) Run() error {
	return c.run(os.Stdout)
}

func (c *InitCmd) run(w io.Writer) error {
	data, err := fs.ReadFile(templateFS(c.Dir), contacts.ConfigTemplate)
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	path := filepath.Join(c.Dir, "config.yaml")
	if _, err := os.Stat(path); err == nil && !c.Force {
		return fmt.Errorf("init: %s already exists (use --force to overwrite)", path)
	}
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return fmt.Errorf("init: creating %s: %w", c.Dir, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("init: writing %s: %w", path, err)
	}
	_, _ = fmt.Fprintf(w, "wrote %s\n", path)
	return nil
}

// ExampleSeedCmd prints an example seed file to stdout.
type ExampleSeedCmd struct{}

// Run executes the example-seed command.
func (c *ExampleSeedCmd) Run() error {
	return c.run(os.Stdout, ".contacts")
}

func (c *ExampleSeedCmd) run(w io.Writer, dir string) error {
	data, err := fs.ReadFile(templateFS(dir), contacts.SeedTemplate)
	if err != nil {
		return fmt.Errorf("example-seed: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// templateFS serves starter files from dir/templates, falling back to the
// embedded copies.
func templateFS(dir string) fs.FS {
	return contacts.OverlayFS(filepath.Join(dir, "templates"), contacts.Templates)
}

// loadConfig reads user then project config, applies environment
// overrides, and validates the result.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/contacts/config.yaml"),
		".contacts/config.yaml",
	)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newStore builds the store for cfg and preloads the seed file, if any.
func newStore(cfg *config.Config, logger *zap.Logger) (*contact.Store, error) {
	gen, ok := contact.GeneratorFor(cfg.Store.IDStrategy)
	if !ok {
		return nil, fmt.Errorf("unknown id strategy %q", cfg.Store.IDStrategy)
	}
	store := contact.NewStore(contact.WithIDGenerator(gen), contact.WithLogger(logger))

	if cfg.Seed.Path == "" {
		return store, nil
	}
	entries, err := seed.Load(cfg.Seed.Path)
	if err != nil {
		return nil, err
	}
	added := seed.Apply(store, entries)
	logger.Info("seed applied", zap.String("path", cfg.Seed.Path), zap.Int("contacts", len(added)))
	return store, nil
}

// teaRunner abstracts Bubble Tea program execution for testing.
type teaRunner interface {
	Run() (tea.Model, error)
}

func runTUI(prog teaRunner) error {
	if _, err := prog.Run(); err != nil {
		return &runtimeError{err: fmt.Errorf("open: %w", err)}
	}
	return nil
}

// runPlain drives a line-mode session. Interrupting it is a normal exit.
func runPlain(ctx context.Context, s *plain.Session, in io.Reader) error {
	err := s.Run(ctx, in)
	if err == nil || errors.Is(err, context.Canceled) {
		return nil
	}
	return &runtimeError{err: fmt.Errorf("open: %w", err)}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// runtimeError marks failures that happen after setup succeeded.
type runtimeError struct {
	err error
}

func (e *runtimeError) Error() string { return e.err.Error() }
func (e *runtimeError) Unwrap() error { return e.err }

// Exit codes.
const (
	exitSuccess = 0
	exitRuntime = 1
	exitSetup   = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var re *runtimeError
	if errors.As(err, &re) {
		return exitRuntime
	}
	return exitSetup
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("contacts"),
		kong.Description("Keep a list of contacts: add, edit and remove names, e-mails and phone numbers."),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
