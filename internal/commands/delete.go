package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/rafabd1/Registro/pkg/ui"
)

// DeleteCmd implements the "delete" action, with a y/n confirmation before
// anything is removed.
type DeleteCmd struct {
	Env *Env
}

func (c *DeleteCmd) Name() string        { return "delete" }
func (c *DeleteCmd) Description() string { return "Delete a student record by id." }

func (c *DeleteCmd) Execute(ctx context.Context, args []string, output io.Writer) error {
	e := c.Env
	id, err := argOrAsk(e.Prompt, args, "Enter Student ID to delete")
	if err != nil {
		return err
	}
	confirmed, err := e.Prompt.Confirm("Are you sure?")
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(output, "Cancelled.")
		e.Log.Infof("delete %s cancelled", id)
		return nil
	}
	if err := e.Repo.Delete(id); err != nil {
		e.Log.Errorf("delete %s: %v", id, err)
		return err
	}
	if err := e.persist(); err != nil {
		e.Log.Errorf("delete %s: save failed: %v", id, err)
		return err
	}
	fmt.Fprintln(output, ui.Success("Student deleted successfully."))
	e.Log.Infof("deleted student %s", id)
	return nil
}
