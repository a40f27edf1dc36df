package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/rafabd1/Registro/internal/student"
	"github.com/rafabd1/Registro/pkg/ui"
)

// ImportCmd bulk-adds students from an .xlsx workbook in the export layout.
// The header row is skipped; rows without a name are skipped and counted, as
// are ids already present in the collection.
type ImportCmd struct {
	Env *Env
}

func (c *ImportCmd) Name() string        { return "import" }
func (c *ImportCmd) Description() string { return "Import students from an .xlsx spreadsheet." }

func (c *ImportCmd) Execute(ctx context.Context, args []string, output io.Writer) error {
	e := c.Env
	path, err := argOrAsk(e.Prompt, args, "Path to .xlsx file")
	if err != nil {
		return err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		e.Log.Errorf("import from %s failed: %v", path, err)
		return fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			e.Log.Errorf("import: closing workbook: %v", err)
		}
	}()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return fmt.Errorf("workbook %s has no sheets", path)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("reading sheet %s: %w", sheet, err)
	}

	imported, skipped := 0, 0
	for i, row := range rows {
		if i == 0 {
			continue // header row
		}
		rec := rowToStudent(row)
		if rec.Name == "" {
			skipped++
			continue
		}
		if err := e.Repo.Add(rec); err != nil {
			e.Log.Errorf("import row %d: %v", i+1, err)
			skipped++
			continue
		}
		imported++
	}
	if imported > 0 {
		if err := e.persist(); err != nil {
			e.Log.Errorf("import: save failed: %v", err)
			return err
		}
	}
	fmt.Fprintln(output, ui.Success("Imported %d students from %s (%d rows skipped)", imported, path, skipped))
	e.Log.Infof("imported %d students from %s (%d skipped)", imported, path, skipped)
	return nil
}

// rowToStudent maps one sheet row onto a record. Missing trailing cells are
// treated as empty; a blank id gets a fresh one, blank timestamps get now.
func rowToStudent(row []string) student.Student {
	cell := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	gpa, _ := strconv.ParseFloat(cell(5), 64)
	rec := student.Student{
		ID:        cell(0),
		Name:      cell(1),
		Email:     cell(2),
		Course:    cell(3),
		YearLevel: cell(4),
		GPA:       gpa,
		CreatedAt: cell(6),
		UpdatedAt: cell(7),
	}
	if rec.ID == "" {
		rec.ID = student.NewID()
	}
	if rec.CreatedAt == "" {
		rec.CreatedAt = student.Now()
	}
	if rec.UpdatedAt == "" {
		rec.UpdatedAt = rec.CreatedAt
	}
	return rec
}
