package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rafabd1/Registro/internal/commands"
	"github.com/rafabd1/Registro/internal/config"
	"github.com/rafabd1/Registro/internal/logging"
	"github.com/rafabd1/Registro/internal/store"
	"github.com/rafabd1/Registro/internal/student"
	"github.com/rafabd1/Registro/pkg/ui"
)

// App wires the repository, store, operation log, and command registry, and
// drives the interactive menu loop. All dependencies are injected through
// New; nothing is process-global.
type App struct {
	cfg      *config.Config
	repo     *student.Repository
	store    *store.FileStore
	oplog    *logging.OpLog
	registry *commands.Registry
	prompt   *commands.Prompter
	out      io.Writer
}

// menuEntries maps the numbered menu to command names, in display order.
var menuEntries = []struct {
	Choice string
	Name   string
	Label  string
}{
	{"1", "add", "Add Student"},
	{"2", "list", "View All Students"},
	{"3", "view", "View Student by ID"},
	{"4", "update", "Update Student"},
	{"5", "delete", "Delete Student"},
	{"6", "export", "Export to Spreadsheet"},
	{"7", "import", "Import from Spreadsheet"},
	{"8", "exit", "Exit"},
}

// New builds the application: opens the operation log, loads the collection
// in the configured format, and registers the commands. Load failures follow
// cfg.OnLoadError: either the app starts with an empty collection or New
// returns the error.
func New(cfg *config.Config, in io.Reader, out io.Writer) (*App, error) {
	fileStore, err := store.NewFileStore(cfg.Storage.DataPath, cfg.Storage.Format)
	if err != nil {
		return nil, err
	}
	oplog, err := logging.Open(cfg.Log.Path)
	if err != nil {
		return nil, err
	}

	repo := student.NewRepository()
	records, loadErr := fileStore.Load()
	if loadErr == nil {
		loadErr = repo.Replace(records)
	}
	if loadErr != nil {
		oplog.Errorf("loading %s: %v", fileStore.Path(), loadErr)
		if cfg.OnLoadError == config.LoadErrorExit {
			oplog.Close()
			return nil, loadErr
		}
		fmt.Fprintln(out, ui.Error("Could not load %s: %v", fileStore.Path(), loadErr))
		fmt.Fprintln(out, ui.Help("Starting with an empty collection."))
		repo = student.NewRepository()
	}

	a := &App{
		cfg:      cfg,
		repo:     repo,
		store:    fileStore,
		oplog:    oplog,
		registry: commands.NewRegistry(),
		prompt:   commands.NewPrompter(in, out),
		out:      out,
	}
	if err := a.registerCommands(); err != nil {
		oplog.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) registerCommands() error {
	env := &commands.Env{
		Repo:   a.repo,
		Store:  a.store,
		Log:    a.oplog,
		Prompt: a.prompt,
	}
	cmds := []commands.Command{
		&commands.AddCmd{Env: env},
		&commands.ListCmd{Env: env},
		&commands.ViewCmd{Env: env},
		&commands.UpdateCmd{Env: env},
		&commands.DeleteCmd{Env: env},
		&commands.ExportCmd{Env: env},
		&commands.ImportCmd{Env: env},
		&commands.HelpCmd{Registry: a.registry},
		&commands.ExitCmd{},
	}
	for _, cmd := range cmds {
		if err := a.registry.Register(cmd); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the operation log.
func (a *App) Close() error {
	return a.oplog.Close()
}

// Run drives the interactive menu until exit, EOF, or context cancellation.
func (a *App) Run(ctx context.Context) error {
	a.oplog.Infof("session started (format=%s, data=%s)", a.store.Format(), a.store.Path())
	defer a.oplog.Infof("session ended")

	for {
		if ctx.Err() != nil {
			return nil
		}
		a.printMenu()
		line, err := a.prompt.ReadLine()
		if err != nil {
			// EOF on stdin ends the session like an explicit exit.
			return nil
		}
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		name, args := a.resolve(fields[0]), fields[1:]
		if err := a.dispatch(ctx, name, args); err != nil {
			if errors.Is(err, commands.ErrExit) {
				fmt.Fprintln(a.out, "Goodbye!")
				return nil
			}
			fmt.Fprintln(a.out, ui.Error("Error: %v", err))
		}
	}
}

// RunCommand executes a single command non-interactively, for the
// direct-subcommand form of the CLI.
func (a *App) RunCommand(ctx context.Context, name string, args []string) error {
	a.oplog.Infof("one-shot: %s", name)
	err := a.dispatch(ctx, a.resolve(name), args)
	if errors.Is(err, commands.ErrExit) {
		return nil
	}
	return err
}

// resolve maps a numbered menu choice onto its command name. Anything else
// is taken as a command name directly.
func (a *App) resolve(choice string) string {
	for _, entry := range menuEntries {
		if entry.Choice == choice {
			return entry.Name
		}
	}
	return choice
}

// dispatch runs one command. Output goes straight to the app writer so
// command output and interactive prompts stay in order.
func (a *App) dispatch(ctx context.Context, name string, args []string) error {
	cmd, exists := a.registry.Get(name)
	if !exists {
		a.oplog.Errorf("unknown command %q", name)
		return fmt.Errorf("unknown command %q, type 'help' for the list", name)
	}
	return cmd.Execute(ctx, args, a.out)
}

func (a *App) printMenu() {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, ui.Title("=== Student Information System ==="))
	for i, entry := range menuEntries {
		fmt.Fprintln(a.out, ui.MenuItem(i+1, entry.Label))
	}
	fmt.Fprint(a.out, "Enter choice (1-8) or command name: ")
}
