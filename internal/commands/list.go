package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/rafabd1/Registro/pkg/ui"
)

// ListCmd implements the "list" action.
type ListCmd struct {
	Env *Env
}

func (c *ListCmd) Name() string        { return "list" }
func (c *ListCmd) Description() string { return "List all student records." }

func (c *ListCmd) Execute(ctx context.Context, args []string, output io.Writer) error {
	records := c.Env.Repo.List()
	fmt.Fprintln(output, ui.Title("--- All Students ---"))
	if len(records) == 0 {
		fmt.Fprintln(output, "No students found.")
		c.Env.Log.Infof("listed 0 students")
		return nil
	}
	fmt.Fprint(output, ui.Table(records))
	c.Env.Log.Infof("listed %d students", len(records))
	return nil
}
