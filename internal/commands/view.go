package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/rafabd1/Registro/pkg/ui"
)

// ViewCmd implements the "view" action: show one record by id. The id comes
// from the argument list or, interactively, from a prompt.
type ViewCmd struct {
	Env *Env
}

func (c *ViewCmd) Name() string        { return "view" }
func (c *ViewCmd) Description() string { return "Show one student record by id." }

func (c *ViewCmd) Execute(ctx context.Context, args []string, output io.Writer) error {
	e := c.Env
	id, err := argOrAsk(e.Prompt, args, "Enter Student ID")
	if err != nil {
		return err
	}
	rec, err := e.Repo.Find(id)
	if err != nil {
		e.Log.Errorf("view %s: %v", id, err)
		return err
	}
	fmt.Fprintln(output, ui.Title("--- Student Details ---"))
	fmt.Fprint(output, ui.Details(rec))
	e.Log.Infof("viewed student %s", id)
	return nil
}

// argOrAsk takes the first positional argument when given, otherwise prompts.
func argOrAsk(p *Prompter, args []string, label string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return p.Ask(label)
}
