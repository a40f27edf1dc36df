package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/rafabd1/Registro/internal/student"
	"github.com/rafabd1/Registro/pkg/ui"
)

// AddCmd implements the "add" action: prompt for the fields, create the
// record, persist the collection.
type AddCmd struct {
	Env *Env
}

func (c *AddCmd) Name() string        { return "add" }
func (c *AddCmd) Description() string { return "Add a new student record." }

func (c *AddCmd) Execute(ctx context.Context, args []string, output io.Writer) error {
	e := c.Env
	fmt.Fprintln(output, ui.Title("--- Add New Student ---"))

	name, err := e.Prompt.Ask("Name")
	if err != nil {
		return err
	}
	if name == "" {
		e.Log.Errorf("add rejected: missing name")
		return fmt.Errorf("name is required")
	}
	email, err := e.Prompt.Ask("Email")
	if err != nil {
		return err
	}
	course, err := e.Prompt.Ask("Course")
	if err != nil {
		return err
	}
	yearLevel, err := e.Prompt.Ask("Year Level")
	if err != nil {
		return err
	}
	gpaRaw, err := e.Prompt.Ask("GPA (optional, press Enter to skip)")
	if err != nil {
		return err
	}
	gpa := 0.0
	if gpaRaw != "" {
		gpa, err = strconv.ParseFloat(gpaRaw, 64)
		if err != nil {
			e.Log.Errorf("add rejected: bad gpa %q", gpaRaw)
			return fmt.Errorf("invalid GPA %q: expected a number", gpaRaw)
		}
	}

	rec := student.New(name, email, course, yearLevel, gpa)
	if err := e.Repo.Add(rec); err != nil {
		e.Log.Errorf("add failed: %v", err)
		return err
	}
	if err := e.persist(); err != nil {
		e.Log.Errorf("add %s: save failed: %v", rec.ID, err)
		return err
	}
	fmt.Fprintln(output, ui.Success("Student added successfully! ID: %s", rec.ID))
	e.Log.Infof("added student %s", rec.ID)
	return nil
}
