package student

import (
	"time"

	"github.com/google/uuid"
)

// TimeFormat is the timestamp layout used in persisted records.
const TimeFormat = "2006-01-02 15:04:05"

// Student is a single student record. ID is assigned at creation and never
// changes afterwards.
type Student struct {
	ID        string  `json:"student_id" xml:"student_id"`
	Name      string  `json:"name" xml:"name"`
	Email     string  `json:"email" xml:"email"`
	Course    string  `json:"course" xml:"course"`
	YearLevel string  `json:"year_level" xml:"year_level"`
	GPA       float64 `json:"gpa" xml:"gpa"`
	CreatedAt string  `json:"created_at" xml:"created_at"`
	UpdatedAt string  `json:"updated_at" xml:"updated_at"`
}

// New creates a record with a fresh short id and both timestamps set to now.
func New(name, email, course, yearLevel string, gpa float64) Student {
	ts := Now()
	return Student{
		ID:        NewID(),
		Name:      name,
		Email:     email,
		Course:    course,
		YearLevel: yearLevel,
		GPA:       gpa,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

// NewID returns the 8-character id used for new records.
func NewID() string {
	return uuid.NewString()[:8]
}

// Now returns the current time in the persisted timestamp layout.
func Now() string {
	return time.Now().Format(TimeFormat)
}

// Validate checks the fields a record cannot live without. Loaded data that
// fails validation is rejected rather than silently carried.
func (s Student) Validate() error {
	if s.ID == "" {
		return invalidf("missing student_id")
	}
	if s.Name == "" {
		return invalidf("student %s: missing name", s.ID)
	}
	return nil
}

// Changes is a partial update: nil fields keep their current value.
type Changes struct {
	Name      *string
	Email     *string
	Course    *string
	YearLevel *string
	GPA       *float64
}

// Apply patches s with the non-nil fields of c and bumps UpdatedAt.
func (c Changes) Apply(s *Student) {
	if c.Name != nil {
		s.Name = *c.Name
	}
	if c.Email != nil {
		s.Email = *c.Email
	}
	if c.Course != nil {
		s.Course = *c.Course
	}
	if c.YearLevel != nil {
		s.YearLevel = *c.YearLevel
	}
	if c.GPA != nil {
		s.GPA = *c.GPA
	}
	s.UpdatedAt = Now()
}
