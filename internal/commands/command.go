package commands

import (
	"context"
	"errors"
	"io"

	"github.com/rafabd1/Registro/internal/logging"
	"github.com/rafabd1/Registro/internal/store"
	"github.com/rafabd1/Registro/internal/student"
)

// Command defines the interface for executable menu actions.
type Command interface {
	Name() string        // Returns the command name (e.g., "add")
	Description() string // Returns a brief description
	// Executes the command, writing output to the provided writer.
	Execute(ctx context.Context, args []string, output io.Writer) error
}

// ErrExit is returned by the exit command to signal the menu loop to stop.
var ErrExit = errors.New("exit requested")

// Env carries the dependencies shared by the record commands. They are
// injected at registration; there is no ambient state.
type Env struct {
	Repo   *student.Repository
	Store  *store.FileStore
	Log    *logging.OpLog
	Prompt *Prompter
}

// persist writes the current collection back to the data file. Mutating
// commands call it after every change.
func (e *Env) persist() error {
	return e.Store.Save(e.Repo.List())
}
