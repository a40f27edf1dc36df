package commands

import (
	"context"
	"io"
)

// ExitCmd implements the "exit" command. It does no cleanup of its own; the
// menu loop owns the shutdown path and reacts to ErrExit.
type ExitCmd struct{}

func (c *ExitCmd) Name() string        { return "exit" }
func (c *ExitCmd) Description() string { return "Exit the application." }

func (c *ExitCmd) Execute(ctx context.Context, args []string, output io.Writer) error {
	return ErrExit
}
