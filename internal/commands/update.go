package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/rafabd1/Registro/internal/student"
	"github.com/rafabd1/Registro/pkg/ui"
)

// UpdateCmd implements the "update" action: prompt per field with the current
// value shown, blank keeps it.
type UpdateCmd struct {
	Env *Env
}

func (c *UpdateCmd) Name() string        { return "update" }
func (c *UpdateCmd) Description() string { return "Update fields of an existing student." }

func (c *UpdateCmd) Execute(ctx context.Context, args []string, output io.Writer) error {
	e := c.Env
	id, err := argOrAsk(e.Prompt, args, "Enter Student ID to update")
	if err != nil {
		return err
	}
	current, err := e.Repo.Find(id)
	if err != nil {
		e.Log.Errorf("update %s: %v", id, err)
		return err
	}

	fmt.Fprintln(output, ui.Help("Leave blank to keep current value."))
	name, err := e.Prompt.AskDefault("Name", current.Name)
	if err != nil {
		return err
	}
	email, err := e.Prompt.AskDefault("Email", current.Email)
	if err != nil {
		return err
	}
	course, err := e.Prompt.AskDefault("Course", current.Course)
	if err != nil {
		return err
	}
	yearLevel, err := e.Prompt.AskDefault("Year Level", current.YearLevel)
	if err != nil {
		return err
	}
	gpaRaw, err := e.Prompt.AskDefault("GPA", strconv.FormatFloat(current.GPA, 'f', -1, 64))
	if err != nil {
		return err
	}
	gpa, err := strconv.ParseFloat(gpaRaw, 64)
	if err != nil {
		e.Log.Errorf("update %s rejected: bad gpa %q", id, gpaRaw)
		return fmt.Errorf("invalid GPA %q: expected a number", gpaRaw)
	}

	changes := student.Changes{
		Name:      &name,
		Email:     &email,
		Course:    &course,
		YearLevel: &yearLevel,
		GPA:       &gpa,
	}
	if _, err := e.Repo.Update(id, changes); err != nil {
		e.Log.Errorf("update %s: %v", id, err)
		return err
	}
	if err := e.persist(); err != nil {
		e.Log.Errorf("update %s: save failed: %v", id, err)
		return err
	}
	fmt.Fprintln(output, ui.Success("Student updated successfully."))
	e.Log.Infof("updated student %s", id)
	return nil
}
