package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/rafabd1/Registro/pkg/ui"
)

// xlsxHeader is the column layout shared by export and import.
var xlsxHeader = []interface{}{
	"student_id", "name", "email", "course", "year_level", "gpa", "created_at", "updated_at",
}

// ExportCmd writes the whole collection to an .xlsx workbook.
type ExportCmd struct {
	Env *Env
}

func (c *ExportCmd) Name() string        { return "export" }
func (c *ExportCmd) Description() string { return "Export all students to an .xlsx spreadsheet." }

func (c *ExportCmd) Execute(ctx context.Context, args []string, output io.Writer) error {
	e := c.Env
	path := filepath.Join(filepath.Dir(e.Store.Path()), "students.xlsx")
	if len(args) > 0 {
		path = args[0]
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			e.Log.Errorf("export: closing workbook: %v", err)
		}
	}()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &xlsxHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	records := e.Repo.List()
	for i, s := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{s.ID, s.Name, s.Email, s.Course, s.YearLevel, s.GPA, s.CreatedAt, s.UpdatedAt}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		e.Log.Errorf("export to %s failed: %v", path, err)
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	fmt.Fprintln(output, ui.Success("Exported %d students to %s", len(records), path))
	e.Log.Infof("exported %d students to %s", len(records), path)
	return nil
}
